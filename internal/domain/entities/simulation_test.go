package entities_test

import (
	"errors"
	"testing"

	"inss_refin/internal/domain/entities"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSimulationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     entities.SimulationRequest
		wantErr error
	}{
		{"by term", entities.SimulationRequest{ContractIDs: []string{"A"}, Mode: entities.SimulationByTerm, InstallmentQuantity: 84}, nil},
		{"by installment", entities.SimulationRequest{ContractIDs: []string{"A", "B"}, Mode: entities.SimulationByInstallment, TargetInstallment: 250}, nil},
		{"no contracts", entities.SimulationRequest{Mode: entities.SimulationByTerm, InstallmentQuantity: 84}, entities.ErrNoContracts},
		{"blank contract", entities.SimulationRequest{ContractIDs: []string{" "}, Mode: entities.SimulationByTerm, InstallmentQuantity: 84}, entities.ErrNoContracts},
		{"duplicate contract", entities.SimulationRequest{ContractIDs: []string{"A", " A"}, Mode: entities.SimulationByTerm, InstallmentQuantity: 84}, entities.ErrDuplicateContract},
		{"both modes", entities.SimulationRequest{ContractIDs: []string{"A"}, Mode: entities.SimulationByTerm, InstallmentQuantity: 84, TargetInstallment: 10}, entities.ErrInvalidSimulationIn},
		{"missing term", entities.SimulationRequest{ContractIDs: []string{"A"}, Mode: entities.SimulationByTerm}, entities.ErrInvalidSimulationIn},
		{"unknown mode", entities.SimulationRequest{ContractIDs: []string{"A"}, Mode: "both"}, entities.ErrInvalidSimulationIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreditCondition_WithInsurance(t *testing.T) {
	c := entities.CreditCondition{Fees: []entities.FeeItem{
		{Code: "PREST", Description: "Seguro prestamista", Exempt: false},
		{Code: "VIDA", Description: "Seguro vida", Exempt: false},
	}}

	t.Run("selects exactly one", func(t *testing.T) {
		out, err := c.WithInsurance("VIDA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f, ok := out.SelectedInsurance()
		if !ok || f.Code != "VIDA" || out.NonExemptFees() != 1 {
			t.Fatalf("unexpected fees: %+v", out.Fees)
		}
		if c.NonExemptFees() != 2 {
			t.Fatalf("receiver must not be modified")
		}
	})

	t.Run("empty code exempts all", func(t *testing.T) {
		out, err := c.WithInsurance("")
		if err != nil || out.NonExemptFees() != 0 {
			t.Fatalf("unexpected result: %+v %v", out.Fees, err)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := c.WithInsurance("DESEMP"); !errors.Is(err, entities.ErrUnknownInsurance) {
			t.Fatalf("expected ErrUnknownInsurance, got %v", err)
		}
	})
}

func TestCreditCondition_InsuranceProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("at most one fee item is ever contracted", prop.ForAll(
		func(codes []string, exempt []bool, pick string) bool {
			n := min(len(codes), len(exempt))
			c := entities.CreditCondition{}
			offered := false
			for i := 0; i < n; i++ {
				c.Fees = append(c.Fees, entities.FeeItem{Code: codes[i], Exempt: exempt[i]})
				offered = offered || codes[i] == pick
			}

			out, err := c.WithInsurance(pick)
			if pick != "" && !offered {
				return errors.Is(err, entities.ErrUnknownInsurance)
			}
			if err != nil || out.NonExemptFees() > 1 {
				return false
			}
			f, ok := out.SelectedInsurance()
			if pick == "" {
				return !ok
			}
			return ok && f.Code == pick
		},
		gen.SliceOf(gen.OneConstOf("PREST", "VIDA", "DESEMP")),
		gen.SliceOf(gen.Bool()),
		gen.OneConstOf("", "PREST", "VIDA", "RESID"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
