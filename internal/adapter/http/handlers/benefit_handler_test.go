package handlers

import (
	"net/http"
	"testing"

	"inss_refin/internal/adapter/http/handlers/mocks"
	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase"
	"inss_refin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBenefitHandler_LookupByCPF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	route := func(h *BenefitHandler) *gin.Engine {
		r := gin.New()
		r.POST("/api/multicorban/cpf", h.LookupByCPF)
		return r
	}

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"found", nil, http.StatusOK},
		{"invalid cpf", usecase.ErrInvalidCPF, http.StatusBadRequest},
		{"not found", interfaces.ErrBeneficiaryNotFound, http.StatusNotFound},
		{"provider down", &entities.CommunicationError{Bank: "multicorban", Operation: "lookup"}, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBenefitUseCase(ctrl)
			uc.EXPECT().LookupByCPF(gomock.Any(), "529.982.247-25").Return(entities.BenefitLookup{}, tc.err)

			w := doJSON(route(NewBenefitHandler(uc)), http.MethodPost, "/api/multicorban/cpf", `{"cpf":"529.982.247-25"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("missing cpf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBenefitUseCase(ctrl)

		w := doJSON(route(NewBenefitHandler(uc)), http.MethodPost, "/api/multicorban/cpf", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
