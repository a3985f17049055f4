package handlers

import (
	"net/http"

	request "inss_refin/internal/adapter/http/dto/request"
	response "inss_refin/internal/adapter/http/dto/response"
	"inss_refin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BenefitHandler struct {
	usecase usecase.IBenefitUseCase
}

func NewBenefitHandler(uc usecase.IBenefitUseCase) *BenefitHandler {
	return &BenefitHandler{usecase: uc}
}

// LookupByCPF godoc
// @Summary      Benefits and active loans of a CPF
// @Tags         benefits
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CPFLookupRequest  true  "CPF"
// @Success      200      {object}  response.BenefitLookupResponse
// @Failure      400,404,502  {object}  pkg.HTTPError
// @Router       /api/multicorban/cpf [post]
func (h *BenefitHandler) LookupByCPF(c *gin.Context) {
	var payload request.CPFLookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}

	lookup, err := h.usecase.LookupByCPF(c.Request.Context(), payload.CPF)
	if err != nil {
		respondError(c, "benefit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBenefitLookup(lookup))
}
