package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultDigitizationsTableName = "digitizations"

// DynamoAPI is the subset of *dynamodb.Client the repository uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	dynamodb.ScanAPIClient
}

type digitizationItem struct {
	ProposalNumber    string                   `dynamodbav:"proposal_number"`
	Bank              string                   `dynamodbav:"bank"`
	OperatorID        string                   `dynamodbav:"operator_id"`
	CPF               string                   `dynamodbav:"cpf"`
	ClientName        string                   `dynamodbav:"client_name"`
	SelectedContracts []string                 `dynamodbav:"selected_contracts,omitempty"`
	Condition         entities.CreditCondition `dynamodbav:"condition"`
	SelectedInsurance string                   `dynamodbav:"selected_insurance"`
	RequestedAmount   float64                  `dynamodbav:"requested_amount"`
	InstallmentAmount float64                  `dynamodbav:"installment_amount"`
	ClientAmount      float64                  `dynamodbav:"client_amount"`
	Status            string                   `dynamodbav:"status"`
	FormalizationLink *string                  `dynamodbav:"formalization_link"`
	CreatedAt         string                   `dynamodbav:"created_at"`
	UpdatedAt         string                   `dynamodbav:"updated_at"`
}

// DigitizationDynamoRepository persists DigitizationRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: proposal_number (string)
//
// Partners assign proposal numbers, so the PK alone enforces one record per proposal.
type DigitizationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDigitizationRepository = (*DigitizationDynamoRepository)(nil)

func NewDigitizationDynamoRepository(ddb DynamoAPI, tableName string) *DigitizationDynamoRepository {
	if tableName == "" {
		tableName = DefaultDigitizationsTableName
	}
	return &DigitizationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DigitizationDynamoRepository) Create(ctx context.Context, d entities.DigitizationRecord) (entities.DigitizationRecord, error) {
	av, err := attributevalue.MarshalMap(toDigitizationItem(d))
	if err != nil {
		return entities.DigitizationRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "proposal_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DigitizationRecord{}, interfaces.ErrDuplicateProposal
		}
		return entities.DigitizationRecord{}, err
	}
	return d, nil
}

func (r *DigitizationDynamoRepository) GetByProposalNumber(ctx context.Context, proposalNumber string) (entities.DigitizationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            proposalKey(proposalNumber),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DigitizationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.DigitizationRecord{}, nil
	}
	return unmarshalDigitization(out.Item)
}

func (r *DigitizationDynamoRepository) UpdateStatus(ctx context.Context, proposalNumber string, upd entities.StatusUpdate) (entities.DigitizationRecord, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(upd.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if upd.FormalizationLink != nil {
		expr += ", #link = :link"
		values[":link"] = &types.AttributeValueMemberS{Value: *upd.FormalizationLink}
		names["#link"] = "formalization_link"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       proposalKey(proposalNumber),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": "proposal_number"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DigitizationRecord{}, nil
		}
		return entities.DigitizationRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.DigitizationRecord{}, nil
	}
	return unmarshalDigitization(out.Attributes)
}

// List scans the table; bank and status narrow the scan server side, the
// substring filters are applied on the decoded records.
func (r *DigitizationDynamoRepository) List(ctx context.Context, filter entities.DigitizationFilter) ([]entities.DigitizationRecord, error) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Bank != "" {
		conds = append(conds, "#bank = :bank")
		names["#bank"] = "bank"
		values[":bank"] = &types.AttributeValueMemberS{Value: filter.Bank}
	}
	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}

	items, err := r.scan(ctx, strings.Join(conds, " AND "), names, values)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]entities.DigitizationRecord, 0, len(items))
	for _, d := range items {
		if filter.Matches(d, now) {
			out = append(out, d)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *DigitizationDynamoRepository) ListNonTerminal(ctx context.Context, bank string) ([]entities.DigitizationRecord, error) {
	terminal := terminalStatuses()
	placeholders := make([]string, len(terminal))
	values := map[string]types.AttributeValue{
		":bank": &types.AttributeValueMemberS{Value: bank},
	}
	for i, s := range terminal {
		key := ":t" + string(rune('0'+i))
		placeholders[i] = key
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}
	expr := "#bank = :bank AND NOT (#status IN (" + strings.Join(placeholders, ", ") + "))"
	names := map[string]string{"#bank": "bank", "#status": "status"}

	items, err := r.scan(ctx, expr, names, values)
	if err != nil {
		return nil, err
	}
	out := make([]entities.DigitizationRecord, 0, len(items))
	for _, d := range items {
		if d.Bank == bank && !d.Status.IsTerminal() {
			out = append(out, d)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *DigitizationDynamoRepository) scan(ctx context.Context, filterExpr string, names map[string]string, values map[string]types.AttributeValue) ([]entities.DigitizationRecord, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if filterExpr != "" {
		in.FilterExpression = aws.String(filterExpr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	var out []entities.DigitizationRecord
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			d, err := unmarshalDigitization(item)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
	}
	return out, nil
}

func proposalKey(proposalNumber string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"proposal_number": &types.AttributeValueMemberS{Value: proposalNumber},
	}
}

func unmarshalDigitization(item map[string]types.AttributeValue) (entities.DigitizationRecord, error) {
	var it digitizationItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.DigitizationRecord{}, err
	}
	return fromDigitizationItem(it), nil
}

func toDigitizationItem(d entities.DigitizationRecord) digitizationItem {
	return digitizationItem{
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
		CreatedAt:         formatTime(d.CreatedAt),
		UpdatedAt:         formatTime(d.UpdatedAt),
	}
}

func fromDigitizationItem(it digitizationItem) entities.DigitizationRecord {
	return entities.DigitizationRecord{
		ProposalNumber:    it.ProposalNumber,
		Bank:              it.Bank,
		OperatorID:        it.OperatorID,
		CPF:               it.CPF,
		ClientName:        it.ClientName,
		SelectedContracts: it.SelectedContracts,
		Condition:         it.Condition,
		SelectedInsurance: it.SelectedInsurance,
		RequestedAmount:   it.RequestedAmount,
		InstallmentAmount: it.InstallmentAmount,
		ClientAmount:      it.ClientAmount,
		Status:            entities.DigitizationStatus(it.Status),
		FormalizationLink: it.FormalizationLink,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
