package repository

import (
	"context"
	"strconv"
	"time"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
)

const (
	contractsProviderIndex = "provider_id-index"
	contractsStatusIndex   = "status-index"
)

type pricingItem struct {
	Kind          string `dynamodbav:"kind"`
	TotalSessions int    `dynamodbav:"total_sessions"`
	Weekdays      []int  `dynamodbav:"weekdays,omitempty"`
}

type extensionItem struct {
	Seq            int    `dynamodbav:"seq"`
	Kind           string `dynamodbav:"kind"`
	AddedSessions  int    `dynamodbav:"added_sessions"`
	AddedAmount    string `dynamodbav:"added_amount"`
	NewEndDate     string `dynamodbav:"new_end_date,omitempty"`
	ExtensionPrice string `dynamodbav:"extension_price,omitempty"`
	PreviousTotal  string `dynamodbav:"previous_total"`
	NewTotal       string `dynamodbav:"new_total"`
	ExtendedAt     string `dynamodbav:"extended_at"`
	ExtendedBy     string `dynamodbav:"extended_by"`
}

type policyItem struct {
	BillingMode      string          `dynamodbav:"billing_mode"`
	AbsencePolicy    string          `dynamodbav:"absence_policy"`
	Price            string          `dynamodbav:"price"`
	Pricing          pricingItem     `dynamodbav:"pricing"`
	PerSessionAmount string          `dynamodbav:"per_session_amount"`
	CapturedAt       string          `dynamodbav:"captured_at"`
	Extensions       []extensionItem `dynamodbav:"extensions"`
}

type contractItem struct {
	ID               string      `dynamodbav:"id"`
	ProviderID       string      `dynamodbav:"provider_id"`
	ClientID         string      `dynamodbav:"client_id"`
	ClientName       string      `dynamodbav:"client_name"`
	ClientPhone      string      `dynamodbav:"client_phone"`
	BillingMode      string      `dynamodbav:"billing_mode"`
	AbsencePolicy    string      `dynamodbav:"absence_policy"`
	Pricing          pricingItem `dynamodbav:"pricing"`
	BasePrice        string      `dynamodbav:"base_price"`
	PerSessionAmount string      `dynamodbav:"per_session_amount"`
	TotalSessions    int         `dynamodbav:"total_sessions"`
	BillingDay       *int        `dynamodbav:"billing_day,omitempty"`
	StartDate        string      `dynamodbav:"start_date,omitempty"`
	EndDate          string      `dynamodbav:"end_date,omitempty"`
	Status           string      `dynamodbav:"status"`
	ProviderSignedAt string      `dynamodbav:"provider_signed_at,omitempty"`
	ClientSignedAt   string      `dynamodbav:"client_signed_at,omitempty"`
	SentAt           string      `dynamodbav:"sent_at,omitempty"`
	Policy           *policyItem `dynamodbav:"policy,omitempty"`
	ExtensionCount   int         `dynamodbav:"extension_count"`
	CreatedAt        string      `dynamodbav:"created_at"`
	UpdatedAt        string      `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_id-index (PK: provider_id)
//   - GSI: status-index (PK: status)
//
// extension_count mirrors len(policy.extensions) so appends can be made
// conditional on the number of extensions the writer saw.
type ContractDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb DynamoAPI, tableName string) *ContractDynamoRepository {
	return &ContractDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": sAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// Update rewrites the mutable part of a contract: signatures, status,
// snapshot and the running terms bumped by extensions.
func (r *ContractDynamoRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	return r.update(ctx, c, "", nil)
}

func (r *ContractDynamoRepository) AppendExtension(ctx context.Context, c entities.Contract, priorExtensions int) (entities.Contract, error) {
	return r.update(ctx, c, "#extension_count = :prior_count", map[string]types.AttributeValue{
		":prior_count": &types.AttributeValueMemberN{Value: strconv.Itoa(priorExtensions)},
	})
}

func (r *ContractDynamoRepository) ListByStatus(ctx context.Context, status entities.ContractStatus) ([]entities.Contract, error) {
	return r.query(ctx, contractsStatusIndex, "#status = :v", map[string]string{"#status": "status"}, string(status))
}

func (r *ContractDynamoRepository) ListByProvider(ctx context.Context, providerID string) ([]entities.Contract, error) {
	return r.query(ctx, contractsProviderIndex, "provider_id = :v", nil, providerID)
}

func (r *ContractDynamoRepository) query(ctx context.Context, index, keyCond string, names map[string]string, value string) ([]entities.Contract, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": sAttr(value),
		},
	}
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}
	raw, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Contract, 0, len(raw))
	for _, m := range raw {
		var it contractItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromContractItem(it))
	}
	return items, nil
}

func (r *ContractDynamoRepository) update(ctx context.Context, c entities.Contract, extraCond string, extraValues map[string]types.AttributeValue) (entities.Contract, error) {
	it := toContractItem(c)
	it.UpdatedAt = formatTime(r.now())

	policy, err := attributevalue.Marshal(it.Policy)
	if err != nil {
		return entities.Contract{}, err
	}

	cond := "attribute_exists(#id)"
	if extraCond != "" {
		cond += " AND " + extraCond
	}
	values := map[string]types.AttributeValue{
		":status":             sAttr(it.Status),
		":provider_signed_at": sAttr(it.ProviderSignedAt),
		":client_signed_at":   sAttr(it.ClientSignedAt),
		":sent_at":            sAttr(it.SentAt),
		":policy":             policy,
		":extension_count":    &types.AttributeValueMemberN{Value: strconv.Itoa(it.ExtensionCount)},
		":base_price":         sAttr(it.BasePrice),
		":total_sessions":     &types.AttributeValueMemberN{Value: strconv.Itoa(it.TotalSessions)},
		":end_date":           sAttr(it.EndDate),
		":updated_at":         sAttr(it.UpdatedAt),
	}
	for k, v := range extraValues {
		values[k] = v
	}
	names := map[string]string{
		"#status":             "status",
		"#provider_signed_at": "provider_signed_at",
		"#client_signed_at":   "client_signed_at",
		"#sent_at":            "sent_at",
		"#policy":             "policy",
		"#extension_count":    "extension_count",
		"#base_price":         "base_price",
		"#total_sessions":     "total_sessions",
		"#end_date":           "end_date",
		"#updated_at":         "updated_at",
	}
	expr := "SET #status = :status, #provider_signed_at = :provider_signed_at, #client_signed_at = :client_signed_at, " +
		"#sent_at = :sent_at, #policy = :policy, #extension_count = :extension_count, #base_price = :base_price, " +
		"#total_sessions = :total_sessions, #end_date = :end_date, #updated_at = :updated_at"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": sAttr(c.ID),
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Contract{}, nil
	}
	var saved contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &saved); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(saved), nil
}

func toPricingItem(p entities.PricingMode) pricingItem {
	return pricingItem{
		Kind:          string(p.Kind),
		TotalSessions: p.TotalSessions,
		Weekdays:      lo.Map(p.Weekdays, func(d time.Weekday, _ int) int { return int(d) }),
	}
}

func fromPricingItem(it pricingItem) entities.PricingMode {
	p := entities.PricingMode{Kind: entities.PricingKind(it.Kind), TotalSessions: it.TotalSessions}
	if len(it.Weekdays) > 0 {
		p.Weekdays = lo.Map(it.Weekdays, func(d int, _ int) time.Weekday { return time.Weekday(d) })
	}
	return p
}

func toPolicyItem(p *entities.PolicySnapshot) *policyItem {
	if p == nil {
		return nil
	}
	return &policyItem{
		BillingMode:      string(p.BillingMode),
		AbsencePolicy:    string(p.AbsencePolicy),
		Price:            p.Price.String(),
		Pricing:          toPricingItem(p.Pricing),
		PerSessionAmount: p.PerSessionAmount.String(),
		CapturedAt:       formatTime(p.CapturedAt),
		Extensions: lo.Map(p.Extensions, func(e entities.Extension, _ int) extensionItem {
			return extensionItem{
				Seq:            e.Seq,
				Kind:           string(e.Kind),
				AddedSessions:  e.AddedSessions,
				AddedAmount:    e.AddedAmount.String(),
				NewEndDate:     formatTimePtr(e.NewEndDate),
				ExtensionPrice: formatDecimalPtr(e.ExtensionPrice),
				PreviousTotal:  e.PreviousTotal.String(),
				NewTotal:       e.NewTotal.String(),
				ExtendedAt:     formatTime(e.ExtendedAt),
				ExtendedBy:     e.ExtendedBy,
			}
		}),
	}
}

func fromPolicyItem(it *policyItem) *entities.PolicySnapshot {
	if it == nil {
		return nil
	}
	return &entities.PolicySnapshot{
		BillingMode:      entities.BillingMode(it.BillingMode),
		AbsencePolicy:    entities.AbsencePolicy(it.AbsencePolicy),
		Price:            parseDecimal(it.Price),
		Pricing:          fromPricingItem(it.Pricing),
		PerSessionAmount: parseDecimal(it.PerSessionAmount),
		CapturedAt:       parseTime(it.CapturedAt),
		Extensions: lo.Map(it.Extensions, func(e extensionItem, _ int) entities.Extension {
			return entities.Extension{
				Seq:            e.Seq,
				Kind:           entities.ExtensionKind(e.Kind),
				AddedSessions:  e.AddedSessions,
				AddedAmount:    parseDecimal(e.AddedAmount),
				NewEndDate:     parseTimePtr(e.NewEndDate),
				ExtensionPrice: parseDecimalPtr(e.ExtensionPrice),
				PreviousTotal:  parseDecimal(e.PreviousTotal),
				NewTotal:       parseDecimal(e.NewTotal),
				ExtendedAt:     parseTime(e.ExtendedAt),
				ExtendedBy:     e.ExtendedBy,
			}
		}),
	}
}

func toContractItem(c entities.Contract) contractItem {
	it := contractItem{
		ID:               c.ID,
		ProviderID:       c.ProviderID,
		ClientID:         c.ClientID,
		ClientName:       c.ClientName,
		ClientPhone:      c.ClientPhone,
		BillingMode:      string(c.BillingMode),
		AbsencePolicy:    string(c.AbsencePolicy),
		Pricing:          toPricingItem(c.Pricing),
		BasePrice:        c.BasePrice.String(),
		PerSessionAmount: c.PerSessionAmount.String(),
		TotalSessions:    c.TotalSessions,
		BillingDay:       c.BillingDay,
		StartDate:        formatTimePtr(c.StartDate),
		EndDate:          formatTimePtr(c.EndDate),
		Status:           string(c.Status),
		ProviderSignedAt: formatTimePtr(c.ProviderSignedAt),
		ClientSignedAt:   formatTimePtr(c.ClientSignedAt),
		SentAt:           formatTimePtr(c.SentAt),
		Policy:           toPolicyItem(c.Policy),
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
	if c.Policy != nil {
		it.ExtensionCount = len(c.Policy.Extensions)
	}
	return it
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:               it.ID,
		ProviderID:       it.ProviderID,
		ClientID:         it.ClientID,
		ClientName:       it.ClientName,
		ClientPhone:      it.ClientPhone,
		BillingMode:      entities.BillingMode(it.BillingMode),
		AbsencePolicy:    entities.AbsencePolicy(it.AbsencePolicy),
		Pricing:          fromPricingItem(it.Pricing),
		BasePrice:        parseDecimal(it.BasePrice),
		PerSessionAmount: parseDecimal(it.PerSessionAmount),
		TotalSessions:    it.TotalSessions,
		BillingDay:       it.BillingDay,
		StartDate:        parseTimePtr(it.StartDate),
		EndDate:          parseTimePtr(it.EndDate),
		Status:           entities.ContractStatus(it.Status),
		ProviderSignedAt: parseTimePtr(it.ProviderSignedAt),
		ClientSignedAt:   parseTimePtr(it.ClientSignedAt),
		SentAt:           parseTimePtr(it.SentAt),
		Policy:           fromPolicyItem(it.Policy),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
