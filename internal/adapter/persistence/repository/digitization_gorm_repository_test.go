package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/infrastructure/database"
	"inss_refin/internal/usecase/interfaces"
)

func newGormRepo(t *testing.T) *DigitizationGormRepository {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", &DigitizationModel{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewDigitizationGormRepository(db)
}

func TestDigitizationGormRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newGormRepo(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rec := sampleRecord("P1", "banrisul", entities.DigitizationStatusPending, now)
	if _, err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, rec); !errors.Is(err, interfaces.ErrDuplicateProposal) {
		t.Fatalf("expected ErrDuplicateProposal, got %v", err)
	}

	got, err := repo.GetByProposalNumber(ctx, "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ClientName != "Maria da Silva" || got.FormalizationLink != nil || got.Condition.FinancedAmount != 5000 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if len(got.SelectedContracts) != 2 || got.SelectedContracts[0] != "c2" {
		t.Fatalf("unexpected contracts: %v", got.SelectedContracts)
	}
	if len(got.Condition.Fees) != 1 || got.Condition.Fees[0].Code != "PREST" {
		t.Fatalf("unexpected fees: %+v", got.Condition.Fees)
	}

	missing, err := repo.GetByProposalNumber(ctx, "P404")
	if err != nil || missing.ProposalNumber != "" {
		t.Fatalf("expected zero record, got %+v, %v", missing, err)
	}
}

func TestDigitizationGormRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := newGormRepo(t)
	if _, err := repo.Create(ctx, sampleRecord("P1", "c6", entities.DigitizationStatusPending, time.Now().UTC())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	link := "https://sign/P1"
	got, err := repo.UpdateStatus(ctx, "P1", entities.StatusUpdate{Status: entities.DigitizationStatusApproved, FormalizationLink: &link})
	if err != nil || got.Status != entities.DigitizationStatusApproved || got.FormalizationLink == nil || *got.FormalizationLink != link {
		t.Fatalf("unexpected update: %+v, %v", got, err)
	}

	again, err := repo.UpdateStatus(ctx, "P1", entities.StatusUpdate{Status: entities.DigitizationStatusApproved, FormalizationLink: &link})
	if err != nil || again.Status != got.Status || *again.FormalizationLink != *got.FormalizationLink {
		t.Fatalf("repeated update changed the record: %+v, %v", again, err)
	}

	statusOnly, err := repo.UpdateStatus(ctx, "P1", entities.StatusUpdate{Status: entities.DigitizationStatusCancelled})
	if err != nil || statusOnly.FormalizationLink == nil || *statusOnly.FormalizationLink != link {
		t.Fatalf("link should be kept: %+v, %v", statusOnly, err)
	}

	missing, err := repo.UpdateStatus(ctx, "P404", entities.StatusUpdate{Status: entities.DigitizationStatusRejected})
	if err != nil || missing.ProposalNumber != "" {
		t.Fatalf("expected zero record, got %+v, %v", missing, err)
	}
}

func TestDigitizationGormRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := newGormRepo(t)
	now := time.Now().UTC()

	joao := sampleRecord("BR-200", "banrisul", entities.DigitizationStatusInAnalise, now.Add(-time.Hour))
	joao.ClientName = "João Pereira"
	joao.CPF = "11144477735"
	for _, rec := range []entities.DigitizationRecord{
		sampleRecord("BR-100", "banrisul", entities.DigitizationStatusPending, now.Add(-2*time.Hour)),
		joao,
		sampleRecord("BR-300", "banrisul", entities.DigitizationStatusApproved, now.AddDate(0, 0, -10)),
		sampleRecord("C6-100", "c6", entities.DigitizationStatusPending, now),
	} {
		if _, err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	cases := []struct {
		name   string
		filter entities.DigitizationFilter
		want   []string
	}{
		{"bank only newest first", entities.DigitizationFilter{Bank: "banrisul"}, []string{"BR-200", "BR-100", "BR-300"}},
		{"client name case insensitive", entities.DigitizationFilter{Bank: "banrisul", ClientName: "maria"}, []string{"BR-100", "BR-300"}},
		{"cpf fragment with mask", entities.DigitizationFilter{CPF: "444.77"}, []string{"BR-200"}},
		{"proposal fragment", entities.DigitizationFilter{ProposalNumber: "-100"}, []string{"C6-100", "BR-100"}},
		{"status", entities.DigitizationFilter{Status: entities.DigitizationStatusInAnalise}, []string{"BR-200"}},
		{"period 7d", entities.DigitizationFilter{Bank: "banrisul", Period: entities.PeriodLast7}, []string{"BR-200", "BR-100"}},
		{"like wildcard is literal", entities.DigitizationFilter{ProposalNumber: "%"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %d records", tc.want, len(got))
			}
			for i, pn := range tc.want {
				if got[i].ProposalNumber != pn {
					t.Fatalf("position %d: expected %s, got %s", i, pn, got[i].ProposalNumber)
				}
			}
		})
	}

	pending, err := repo.ListNonTerminal(ctx, "banrisul")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 2 || pending[0].ProposalNumber != "BR-200" || pending[1].ProposalNumber != "BR-100" {
		t.Fatalf("unexpected non-terminal list: %+v", pending)
	}
}
