package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// DigitizationModel is the sqlite row for a DigitizationRecord.
type DigitizationModel struct {
	ProposalNumber    string                   `gorm:"primaryKey"`
	Bank              string                   `gorm:"index;not null"`
	OperatorID        string                   `gorm:"not null;default:''"`
	CPF               string                   `gorm:"index;not null"`
	ClientName        string                   `gorm:"not null"`
	SelectedContracts []string                 `gorm:"serializer:json"`
	Condition         entities.CreditCondition `gorm:"serializer:json"`
	SelectedInsurance string
	RequestedAmount   float64
	InstallmentAmount float64
	ClientAmount      float64
	Status            string `gorm:"index;not null"`
	FormalizationLink *string
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

func (DigitizationModel) TableName() string { return "digitizations" }

// DigitizationGormRepository is the local store, used when DynamoDB is not configured.
type DigitizationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDigitizationRepository = (*DigitizationGormRepository)(nil)

func NewDigitizationGormRepository(db *gorm.DB) *DigitizationGormRepository {
	return &DigitizationGormRepository{db: db}
}

func (r *DigitizationGormRepository) Create(ctx context.Context, d entities.DigitizationRecord) (entities.DigitizationRecord, error) {
	m := toDigitizationModel(d)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&DigitizationModel{}).Where("proposal_number = ?", m.ProposalNumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return interfaces.ErrDuplicateProposal
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return entities.DigitizationRecord{}, err
	}
	return fromDigitizationModel(m), nil
}

func (r *DigitizationGormRepository) GetByProposalNumber(ctx context.Context, proposalNumber string) (entities.DigitizationRecord, error) {
	var m DigitizationModel
	err := r.db.WithContext(ctx).Where("proposal_number = ?", proposalNumber).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DigitizationRecord{}, nil
	}
	if err != nil {
		return entities.DigitizationRecord{}, err
	}
	return fromDigitizationModel(m), nil
}

func (r *DigitizationGormRepository) UpdateStatus(ctx context.Context, proposalNumber string, upd entities.StatusUpdate) (entities.DigitizationRecord, error) {
	var out DigitizationModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposal_number = ?", proposalNumber).First(&out).Error; err != nil {
			return err
		}
		changes := map[string]any{
			"status":     string(upd.Status),
			"updated_at": time.Now().UTC(),
		}
		if upd.FormalizationLink != nil {
			changes["formalization_link"] = *upd.FormalizationLink
		}
		if err := tx.Model(&DigitizationModel{}).Where("proposal_number = ?", proposalNumber).Updates(changes).Error; err != nil {
			return err
		}
		return tx.Where("proposal_number = ?", proposalNumber).First(&out).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DigitizationRecord{}, nil
	}
	if err != nil {
		return entities.DigitizationRecord{}, err
	}
	return fromDigitizationModel(out), nil
}

func (r *DigitizationGormRepository) List(ctx context.Context, filter entities.DigitizationFilter) ([]entities.DigitizationRecord, error) {
	q := r.db.WithContext(ctx).Model(&DigitizationModel{})
	if filter.Bank != "" {
		q = q.Where("bank = ?", filter.Bank)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.ClientName != "" {
		q = q.Where(`LOWER(client_name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(filter.ClientName))+"%")
	}
	if cpf := entities.NormalizeCPF(filter.CPF); cpf != "" {
		q = q.Where("cpf LIKE ?", "%"+cpf+"%")
	}
	if filter.ProposalNumber != "" {
		q = q.Where(`proposal_number LIKE ? ESCAPE '\'`, "%"+escapeLike(filter.ProposalNumber)+"%")
	}
	if since := filter.Period.Since(time.Now()); !since.IsZero() {
		q = q.Where("created_at >= ?", since.UTC())
	}

	var rows []DigitizationModel
	if err := q.Order("created_at DESC").Order("proposal_number DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromDigitizationModels(rows), nil
}

func (r *DigitizationGormRepository) ListNonTerminal(ctx context.Context, bank string) ([]entities.DigitizationRecord, error) {
	terminal := terminalStatuses()
	statuses := make([]string, len(terminal))
	for i, s := range terminal {
		statuses[i] = string(s)
	}

	var rows []DigitizationModel
	err := r.db.WithContext(ctx).
		Where("bank = ?", bank).
		Where("status NOT IN ?", statuses).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return fromDigitizationModels(rows), nil
}

func toDigitizationModel(d entities.DigitizationRecord) DigitizationModel {
	return DigitizationModel{
		ProposalNumber:    d.ProposalNumber,
		Bank:              d.Bank,
		OperatorID:        d.OperatorID,
		CPF:               d.CPF,
		ClientName:        d.ClientName,
		SelectedContracts: d.SelectedContracts,
		Condition:         d.Condition,
		SelectedInsurance: d.SelectedInsurance,
		RequestedAmount:   d.RequestedAmount,
		InstallmentAmount: d.InstallmentAmount,
		ClientAmount:      d.ClientAmount,
		Status:            string(d.Status),
		FormalizationLink: d.FormalizationLink,
		CreatedAt:         d.CreatedAt.UTC(),
		UpdatedAt:         d.UpdatedAt.UTC(),
	}
}

func fromDigitizationModel(m DigitizationModel) entities.DigitizationRecord {
	return entities.DigitizationRecord{
		ProposalNumber:    m.ProposalNumber,
		Bank:              m.Bank,
		OperatorID:        m.OperatorID,
		CPF:               m.CPF,
		ClientName:        m.ClientName,
		SelectedContracts: m.SelectedContracts,
		Condition:         m.Condition,
		SelectedInsurance: m.SelectedInsurance,
		RequestedAmount:   m.RequestedAmount,
		InstallmentAmount: m.InstallmentAmount,
		ClientAmount:      m.ClientAmount,
		Status:            entities.DigitizationStatus(m.Status),
		FormalizationLink: m.FormalizationLink,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

func fromDigitizationModels(rows []DigitizationModel) []entities.DigitizationRecord {
	out := make([]entities.DigitizationRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromDigitizationModel(m))
	}
	return out
}
