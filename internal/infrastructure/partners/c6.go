package partners

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/tidwall/gjson"
)

const C6Name = "c6"

// C6Bank talks to the C6 Consig refinancing API. Amounts travel as decimal strings.
type C6Bank struct {
	http partnerHTTP
}

var _ interfaces.IPartnerBank = (*C6Bank)(nil)

func NewC6Bank(s Settings) *C6Bank {
	return &C6Bank{http: newPartnerHTTP(C6Name, "x-api-key", s)}
}

func (b *C6Bank) Name() string { return C6Name }

type c6SimulationRequest struct {
	DocumentNumber      string   `json:"document_number"`
	BenefitNumber       string   `json:"benefit_number"`
	Contracts           []string `json:"contracts"`
	InstallmentQuantity int      `json:"installment_quantity,omitempty"`
	InstallmentAmount   string   `json:"installment_amount,omitempty"`
}

func (b *C6Bank) Simulate(ctx context.Context, req entities.SimulationRequest) ([]entities.CreditCondition, error) {
	const op = "simulate"
	body := c6SimulationRequest{
		DocumentNumber: req.CPF,
		BenefitNumber:  req.EnrollmentID,
		Contracts:      req.ContractIDs,
	}
	if req.Mode == entities.SimulationByTerm {
		body.InstallmentQuantity = req.InstallmentQuantity
	} else {
		body.InstallmentAmount = amount(req.TargetInstallment)
	}

	resp, err := b.http.do(ctx, op, http.MethodPost, "/v1/refinancing/simulations", body)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusBadRequest || resp.status == http.StatusUnprocessableEntity {
		return nil, &entities.SimulationError{
			Bank:    C6Name,
			Code:    gjson.GetBytes(resp.body, "error.code").String(),
			Message: partnerMessage(resp.body),
		}
	}
	if !resp.ok() {
		return nil, b.http.unexpected(op, resp)
	}

	var out []entities.CreditCondition
	gjson.GetBytes(resp.body, "offers").ForEach(func(_, o gjson.Result) bool {
		cond := entities.CreditCondition{
			CovenantCode:        o.Get("covenant.code").String(),
			CovenantDescription: o.Get("covenant.description").String(),
			ProductCode:         o.Get("product.code").String(),
			ProductDescription:  o.Get("product.description").String(),
			FinancedAmount:      money(o.Get("financed_amount")),
			ClientAmount:        money(o.Get("client_amount")),
			InstallmentAmount:   money(o.Get("installment_amount")),
			InstallmentQuantity: int(o.Get("installment_quantity").Int()),
			InterestRate:        money(o.Get("interest_rate")),
			TotalAmount:         money(o.Get("total_amount")),
		}
		o.Get("insurances").ForEach(func(_, f gjson.Result) bool {
			cond.Fees = append(cond.Fees, entities.FeeItem{
				Code:        f.Get("code").String(),
				Description: f.Get("description").String(),
				Amount:      money(f.Get("amount")),
				Exempt:      f.Get("waived").Bool(),
			})
			return true
		})
		out = append(out, cond)
		return true
	})
	return out, nil
}

type c6ProposalRequest struct {
	BenefitNumber string        `json:"benefit_number"`
	Contracts     []string      `json:"contracts"`
	Customer      c6Customer    `json:"customer"`
	Disbursement  c6BankAccount `json:"disbursement_account"`
	Offer         c6Offer       `json:"offer"`
}

type c6Customer struct {
	DocumentNumber string    `json:"document_number"`
	Name           string    `json:"name"`
	BirthDate      string    `json:"birth_date"`
	MotherName     string    `json:"mother_name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	Address        c6Address `json:"address"`
}

type c6Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

type c6BankAccount struct {
	BankCode    string `json:"bank_code"`
	Branch      string `json:"branch"`
	Number      string `json:"number"`
	Digit       string `json:"digit"`
	AccountType string `json:"type"`
}

type c6Offer struct {
	CovenantCode        string        `json:"covenant_code"`
	ProductCode         string        `json:"product_code"`
	FinancedAmount      string        `json:"financed_amount"`
	InstallmentAmount   string        `json:"installment_amount"`
	InstallmentQuantity int           `json:"installment_quantity"`
	InterestRate        string        `json:"interest_rate"`
	Insurances          []c6Insurance `json:"insurances"`
}

type c6Insurance struct {
	Code   string `json:"code"`
	Waived bool   `json:"waived"`
}

func (b *C6Bank) DigitizeProposal(ctx context.Context, req entities.DigitizationRequest) (string, error) {
	const op = "digitize"
	ben := req.Beneficiary
	body := c6ProposalRequest{
		BenefitNumber: req.EnrollmentID,
		Contracts:     req.ContractIDs,
		Customer: c6Customer{
			DocumentNumber: ben.CPF,
			Name:           ben.Name,
			BirthDate:      ben.BirthDate,
			MotherName:     ben.MotherName,
			Phone:          ben.Phone,
			Email:          ben.Email,
			Address: c6Address{
				Street:       ben.Address.Street,
				Number:       ben.Address.Number,
				Complement:   ben.Address.Complement,
				Neighborhood: ben.Address.District,
				City:         ben.Address.City,
				State:        strings.ToUpper(ben.Address.State),
				ZipCode:      ben.Address.ZipCode,
			},
		},
		Disbursement: c6BankAccount{
			BankCode:    req.BankAccount.BankCode,
			Branch:      req.BankAccount.Agency,
			Number:      req.BankAccount.Account,
			Digit:       req.BankAccount.AccountDigit,
			AccountType: strings.ToUpper(req.BankAccount.AccountType),
		},
		Offer: c6Offer{
			CovenantCode:        req.Condition.CovenantCode,
			ProductCode:         req.Condition.ProductCode,
			FinancedAmount:      amount(req.Condition.FinancedAmount),
			InstallmentAmount:   amount(req.Condition.InstallmentAmount),
			InstallmentQuantity: req.Condition.InstallmentQuantity,
			InterestRate:        amount(req.Condition.InterestRate),
		},
	}
	for _, f := range req.Condition.Fees {
		body.Offer.Insurances = append(body.Offer.Insurances, c6Insurance{Code: f.Code, Waived: f.Exempt})
	}

	resp, err := b.http.do(ctx, op, http.MethodPost, "/v1/refinancing/proposals", body)
	if err != nil {
		return "", err
	}
	switch {
	case resp.ok():
	case resp.status == http.StatusBadRequest || resp.status == http.StatusUnprocessableEntity:
		return "", &entities.DigitizationError{
			Bank:      C6Name,
			Message:   partnerMessage(resp.body),
			Fields:    fieldErrors(resp.body, "details", "errors"),
			Retriable: gjson.GetBytes(resp.body, "can_resubmit").Bool(),
		}
	default:
		return "", b.http.unexpected(op, resp)
	}

	number := gjson.GetBytes(resp.body, "proposal_number").String()
	if number == "" {
		return "", b.http.unexpected(op, resp)
	}
	return number, nil
}

func (b *C6Bank) FetchFormalizationLink(ctx context.Context, proposalNumber string) (entities.FormalizationLink, error) {
	const op = "formalization-link"
	resp, err := b.http.do(ctx, op, http.MethodGet, "/v1/refinancing/proposals/"+url.PathEscape(proposalNumber)+"/formalization", nil)
	if err != nil {
		return entities.FormalizationLink{}, err
	}
	if resp.status == http.StatusNotFound || resp.status == http.StatusNoContent {
		return entities.FormalizationLink{}, nil
	}
	if !resp.ok() {
		return entities.FormalizationLink{}, b.http.unexpected(op, resp)
	}
	return entities.FormalizationLink{
		URL:    gjson.GetBytes(resp.body, "url").String(),
		Active: strings.EqualFold(gjson.GetBytes(resp.body, "status").String(), "active"),
	}, nil
}

var c6Statuses = map[string]entities.DigitizationStatus{
	"PENDING":     entities.DigitizationStatusPending,
	"IN_ANALYSIS": entities.DigitizationStatusInAnalise,
	"APPROVED":    entities.DigitizationStatusApproved,
	"PAID":        entities.DigitizationStatusApproved,
	"REJECTED":    entities.DigitizationStatusRejected,
	"CANCELED":    entities.DigitizationStatusCancelled,
}

func (b *C6Bank) FetchProposalStatus(ctx context.Context, proposalNumber string) (entities.DigitizationStatus, error) {
	const op = "proposal-status"
	resp, err := b.http.do(ctx, op, http.MethodGet, "/v1/refinancing/proposals/"+url.PathEscape(proposalNumber), nil)
	if err != nil {
		return "", err
	}
	if !resp.ok() {
		return "", b.http.unexpected(op, resp)
	}
	return c6Statuses[strings.ToUpper(gjson.GetBytes(resp.body, "status").String())], nil
}
