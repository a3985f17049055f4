package entities

type Address struct {
	Street     string `json:"street" validate:"required"`
	Number     string `json:"number" validate:"required"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required,len=2"`
	ZipCode    string `json:"zip_code" validate:"required,numeric,len=8"`
}

// Beneficiary holds the personal data of the INSS benefit holder.
type Beneficiary struct {
	CPF        string  `json:"cpf" validate:"required,cpf"`
	Name       string  `json:"name" validate:"required"`
	BirthDate  string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	MotherName string  `json:"mother_name" validate:"required"`
	Phone      string  `json:"phone" validate:"required,numeric,min=10,max=11"`
	Email      string  `json:"email,omitempty" validate:"omitempty,email"`
	Address    Address `json:"address"`
}

// Benefit is one INSS benefit and the loans currently deducted from it.
type Benefit struct {
	EnrollmentID       string     `json:"enrollment_id"`
	SpeciesCode        string     `json:"species_code"`
	SpeciesDescription string     `json:"species_description"`
	Contracts          []Contract `json:"contracts"`
}

// BenefitLookup is the benefit-data provider answer for one CPF.
type BenefitLookup struct {
	Beneficiary Beneficiary `json:"beneficiary"`
	Benefits    []Benefit   `json:"benefits"`
}

// ContractByID returns the contract with the given id across all benefits.
func (b BenefitLookup) ContractByID(id string) (Contract, bool) {
	for _, benefit := range b.Benefits {
		for _, c := range benefit.Contracts {
			if c.ID == id {
				if c.EnrollmentID == "" {
					c.EnrollmentID = benefit.EnrollmentID
				}
				return c, true
			}
		}
	}
	return Contract{}, false
}

// EnrollmentOf returns the benefit number a contract is deducted from.
func (b BenefitLookup) EnrollmentOf(contractID string) (string, bool) {
	c, ok := b.ContractByID(contractID)
	if !ok {
		return "", false
	}
	return c.EnrollmentID, true
}
