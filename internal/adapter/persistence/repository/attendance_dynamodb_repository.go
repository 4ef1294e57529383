package repository

import (
	"context"
	"sort"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const attendanceContractIndex = "contract_id-index"

type attendanceItem struct {
	ID           string `dynamodbav:"id"`
	ContractID   string `dynamodbav:"contract_id"`
	OccurredAt   string `dynamodbav:"occurred_at"`
	Status       string `dynamodbav:"status"`
	SubstituteAt string `dynamodbav:"substitute_at,omitempty"`
	Amount       string `dynamodbav:"amount,omitempty"`
	Voided       bool   `dynamodbav:"voided"`
	VoidedAt     string `dynamodbav:"voided_at,omitempty"`
	PublicMemo   string `dynamodbav:"public_memo,omitempty"`
	InternalMemo string `dynamodbav:"internal_memo,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// AttendanceDynamoRepository persists AttendanceRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
type AttendanceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAttendanceRepository = (*AttendanceDynamoRepository)(nil)

func NewAttendanceDynamoRepository(ddb DynamoAPI, tableName string) *AttendanceDynamoRepository {
	return &AttendanceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AttendanceDynamoRepository) Create(ctx context.Context, rec entities.AttendanceRecord) (entities.AttendanceRecord, error) {
	if _, err := r.put(ctx, rec, "attribute_not_exists(#id)"); err != nil {
		return entities.AttendanceRecord{}, err
	}
	return rec, nil
}

func (r *AttendanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.AttendanceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": sAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AttendanceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.AttendanceRecord{}, nil
	}

	var it attendanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AttendanceRecord{}, err
	}
	return fromAttendanceItem(it), nil
}

// Update replaces an existing record. A zero record means it did not exist.
func (r *AttendanceDynamoRepository) Update(ctx context.Context, rec entities.AttendanceRecord) (entities.AttendanceRecord, error) {
	ok, err := r.put(ctx, rec, "attribute_exists(#id)")
	if err != nil || !ok {
		return entities.AttendanceRecord{}, err
	}
	return rec, nil
}

// ListByContract returns every record of the contract, voided included,
// ordered by occurrence.
func (r *AttendanceDynamoRepository) ListByContract(ctx context.Context, contractID string) ([]entities.AttendanceRecord, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(attendanceContractIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": sAttr(contractID),
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AttendanceRecord, 0, len(raw))
	for _, m := range raw {
		var it attendanceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAttendanceItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].OccurredAt.Equal(items[j].OccurredAt) {
			return items[i].OccurredAt.Before(items[j].OccurredAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *AttendanceDynamoRepository) put(ctx context.Context, rec entities.AttendanceRecord, cond string) (bool, error) {
	av, err := attributevalue.MarshalMap(toAttendanceItem(rec))
	if err != nil {
		return false, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if cond == "attribute_exists(#id)" && isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toAttendanceItem(r entities.AttendanceRecord) attendanceItem {
	return attendanceItem{
		ID:           r.ID,
		ContractID:   r.ContractID,
		OccurredAt:   formatTime(r.OccurredAt),
		Status:       string(r.Status),
		SubstituteAt: formatTimePtr(r.SubstituteAt),
		Amount:       formatDecimalPtr(r.Amount),
		Voided:       r.Voided,
		VoidedAt:     formatTimePtr(r.VoidedAt),
		PublicMemo:   r.PublicMemo,
		InternalMemo: r.InternalMemo,
		CreatedAt:    formatTime(r.CreatedAt),
		UpdatedAt:    formatTime(r.UpdatedAt),
	}
}

func fromAttendanceItem(it attendanceItem) entities.AttendanceRecord {
	return entities.AttendanceRecord{
		ID:           it.ID,
		ContractID:   it.ContractID,
		OccurredAt:   parseTime(it.OccurredAt),
		Status:       entities.AttendanceStatus(it.Status),
		SubstituteAt: parseTimePtr(it.SubstituteAt),
		Amount:       parseDecimalPtr(it.Amount),
		Voided:       it.Voided,
		VoidedAt:     parseTimePtr(it.VoidedAt),
		PublicMemo:   it.PublicMemo,
		InternalMemo: it.InternalMemo,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
