package request

type CPFLookupRequest struct {
	CPF string `json:"cpf" binding:"required"`
}
