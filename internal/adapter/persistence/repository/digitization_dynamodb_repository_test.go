package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items in memory and honors the existence conditions the
// repository relies on. Scan filters are recorded, not evaluated.
type fakeDynamo struct {
	mu         sync.Mutex
	items      map[string]map[string]types.AttributeValue
	lastFilter string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	return key["proposal_number"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := keyOf(in.Item)
	if _, ok := f.items[k]; ok && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	next := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		next[k] = v
	}
	for placeholder, attr := range in.ExpressionAttributeNames {
		if placeholder == "#pk" {
			continue
		}
		if v, ok := in.ExpressionAttributeValues[":"+strings.TrimPrefix(placeholder, "#")]; ok {
			next[attr] = v
		}
	}
	f.items[keyOf(in.Key)] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = aws.ToString(in.FilterExpression)
	out := &dynamodb.ScanOutput{}
	for _, item := range f.items {
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func sampleRecord(pn, bank string, status entities.DigitizationStatus, createdAt time.Time) entities.DigitizationRecord {
	return entities.DigitizationRecord{
		ProposalNumber:    pn,
		Bank:              bank,
		OperatorID:        "op-1",
		CPF:               "52998224725",
		ClientName:        "Maria da Silva",
		SelectedContracts: []string{"c2", "c1"},
		Condition: entities.CreditCondition{
			ProductCode:    "REFIN",
			FinancedAmount: 5000,
			Fees:           []entities.FeeItem{{Code: "PREST", Description: "Seguro prestamista", Amount: 90}},
		},
		SelectedInsurance: "Seguro prestamista",
		RequestedAmount:   5000,
		InstallmentAmount: 150,
		ClientAmount:      1200,
		Status:            status,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

func TestDigitizationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("create get and duplicate", func(t *testing.T) {
		repo := NewDigitizationDynamoRepository(newFakeDynamo(), "")
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
		if got.ProposalNumber != "P1" || got.FormalizationLink != nil || got.Status != entities.DigitizationStatusPending {
			t.Fatalf("unexpected record: %+v", got)
		}
		if len(got.SelectedContracts) != 2 || got.SelectedContracts[0] != "c2" || len(got.Condition.Fees) != 1 {
			t.Fatalf("nested fields not kept: %+v", got)
		}
		if !got.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, got.CreatedAt)
		}

		missing, err := repo.GetByProposalNumber(ctx, "P404")
		if err != nil || missing.ProposalNumber != "" {
			t.Fatalf("expected zero record, got %+v, %v", missing, err)
		}
	})

	t.Run("update status keeps link when absent", func(t *testing.T) {
		repo := NewDigitizationDynamoRepository(newFakeDynamo(), "digitizations")
		if _, err := repo.Create(ctx, sampleRecord("P1", "banrisul", entities.DigitizationStatusPending, now)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		link := "https://sign/P1"
		got, err := repo.UpdateStatus(ctx, "P1", entities.StatusUpdate{Status: entities.DigitizationStatusApproved, FormalizationLink: &link})
		if err != nil || got.Status != entities.DigitizationStatusApproved || got.FormalizationLink == nil || *got.FormalizationLink != link {
			t.Fatalf("unexpected update: %+v, %v", got, err)
		}
		got, err = repo.UpdateStatus(ctx, "P1", entities.StatusUpdate{Status: entities.DigitizationStatusApproved})
		if err != nil || got.FormalizationLink == nil || *got.FormalizationLink != link {
			t.Fatalf("link should be kept: %+v, %v", got, err)
		}

		missing, err := repo.UpdateStatus(ctx, "P404", entities.StatusUpdate{Status: entities.DigitizationStatusRejected})
		if err != nil || missing.ProposalNumber != "" {
			t.Fatalf("expected zero record, got %+v, %v", missing, err)
		}
	})

	t.Run("list filters and orders newest first", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewDigitizationDynamoRepository(fake, "")
		for _, rec := range []entities.DigitizationRecord{
			sampleRecord("P1", "banrisul", entities.DigitizationStatusPending, now.Add(-2*time.Hour)),
			sampleRecord("P2", "banrisul", entities.DigitizationStatusApproved, now.Add(-time.Hour)),
			sampleRecord("P3", "c6", entities.DigitizationStatusPending, now),
			sampleRecord("P4", "banrisul", entities.DigitizationStatusPending, now.AddDate(0, 0, -40)),
		} {
			if _, err := repo.Create(ctx, rec); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		got, err := repo.List(ctx, entities.DigitizationFilter{Bank: "banrisul", Period: entities.PeriodLast30})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ProposalNumber != "P2" || got[1].ProposalNumber != "P1" {
			t.Fatalf("unexpected list: %+v", got)
		}
		if !strings.Contains(fake.lastFilter, "#bank = :bank") {
			t.Fatalf("expected bank filter, got %q", fake.lastFilter)
		}

		pending, err := repo.ListNonTerminal(ctx, "banrisul")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pending) != 2 || pending[0].ProposalNumber != "P1" || pending[1].ProposalNumber != "P4" {
			t.Fatalf("unexpected non-terminal list: %+v", pending)
		}
		if !strings.Contains(fake.lastFilter, "NOT (#status IN") {
			t.Fatalf("expected status filter, got %q", fake.lastFilter)
		}
	})
}
