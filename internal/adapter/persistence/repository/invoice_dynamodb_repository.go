package repository

import (
	"context"
	"fmt"
	"sort"
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
	invoicesIDIndex       = "id-index"
	invoicesContractIndex = "contract_id-index"
	invoicesProviderIndex = "provider_id-index"
)

type sendHistoryItem struct {
	Channel       string `dynamodbav:"channel"`
	SentAt        string `dynamodbav:"sent_at"`
	DisplayPeriod string `dynamodbav:"display_period"`
	Success       bool   `dynamodbav:"success"`
	Detail        string `dynamodbav:"detail,omitempty"`
}

type accountItem struct {
	ProviderID    string `dynamodbav:"provider_id"`
	BankName      string `dynamodbav:"bank_name"`
	AccountNumber string `dynamodbav:"account_number"`
	AccountHolder string `dynamodbav:"account_holder"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type invoiceItem struct {
	InvoiceKey       string            `dynamodbav:"invoice_key"`
	ID               string            `dynamodbav:"id"`
	ProviderID       string            `dynamodbav:"provider_id"`
	ClientID         string            `dynamodbav:"client_id"`
	ContractID       string            `dynamodbav:"contract_id"`
	Year             int               `dynamodbav:"year"`
	Month            int               `dynamodbav:"month"`
	InvoiceNumber    int               `dynamodbav:"invoice_number"`
	BaseAmount       string            `dynamodbav:"base_amount"`
	AutoAdjustment   string            `dynamodbav:"auto_adjustment"`
	ManualAdjustment string            `dynamodbav:"manual_adjustment"`
	ManualReason     string            `dynamodbav:"manual_reason,omitempty"`
	FinalAmount      string            `dynamodbav:"final_amount"`
	PeriodStart      string            `dynamodbav:"period_start,omitempty"`
	PeriodEnd        string            `dynamodbav:"period_end,omitempty"`
	SendStatus       string            `dynamodbav:"send_status"`
	SendHistory      []sendHistoryItem `dynamodbav:"send_history"`
	ForceToToday     bool              `dynamodbav:"force_to_today_billing"`
	AccountSnapshot  *accountItem      `dynamodbav:"account_snapshot,omitempty"`
	Version          int               `dynamodbav:"version"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: invoice_key (string, client#contract#yyyy-mm#n)
//   - GSI: id-index (PK: id)
//   - GSI: contract_id-index (PK: contract_id)
//   - GSI: provider_id-index (PK: provider_id)
//
// Keying rows by the uniqueness key lets the insert condition enforce one
// invoice per (client, contract, month, number).
type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	items, err := r.query(ctx, invoicesIDIndex, "id = :v", sAttr(id), nil)
	if err != nil || len(items) == 0 {
		return entities.Invoice{}, err
	}
	return items[0], nil
}

func (r *InvoiceDynamoRepository) GetByKey(ctx context.Context, key entities.InvoiceKey) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"invoice_key": sAttr(key.String()),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) FindByContractAndNumber(ctx context.Context, contractID string, invoiceNumber int) (entities.Invoice, error) {
	filter := &numberFilter{name: "invoice_number", value: invoiceNumber}
	items, err := r.query(ctx, invoicesContractIndex, "contract_id = :v", sAttr(contractID), filter)
	if err != nil || len(items) == 0 {
		return entities.Invoice{}, err
	}
	return items[0], nil
}

func (r *InvoiceDynamoRepository) ListByContract(ctx context.Context, contractID string) ([]entities.Invoice, error) {
	return r.query(ctx, invoicesContractIndex, "contract_id = :v", sAttr(contractID), nil)
}

func (r *InvoiceDynamoRepository) ListByProvider(ctx context.Context, providerID string) ([]entities.Invoice, error) {
	return r.query(ctx, invoicesProviderIndex, "provider_id = :v", sAttr(providerID), nil)
}

// Save writes inv under the version guard and returns it with the new
// version.
func (r *InvoiceDynamoRepository) Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	expected := inv.Version
	inv.Version++
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if expected == 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#invoice_key)")
		in.ExpressionAttributeNames = map[string]string{"#invoice_key": "invoice_key"}
	} else {
		in.ConditionExpression = aws.String("#version = :expected")
		in.ExpressionAttributeNames = map[string]string{"#version": "version"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expected)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		if isConditionFailed(err) {
			return entities.Invoice{}, fmt.Errorf("invoice %s version %d: %w", inv.Key(), expected, entities.ErrConflict)
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

type numberFilter struct {
	name  string
	value int
}

func (r *InvoiceDynamoRepository) query(ctx context.Context, index, keyCond string, key types.AttributeValue, filter *numberFilter) ([]entities.Invoice, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": key,
		},
	}
	if filter != nil {
		in.FilterExpression = aws.String("#f = :f")
		in.ExpressionAttributeNames = map[string]string{"#f": filter.name}
		in.ExpressionAttributeValues[":f"] = &types.AttributeValueMemberN{Value: strconv.Itoa(filter.value)}
	}
	raw, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Invoice, 0, len(raw))
	for _, m := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ContractID != items[j].ContractID {
			return items[i].ContractID < items[j].ContractID
		}
		return items[i].InvoiceNumber < items[j].InvoiceNumber
	})
	return items, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		InvoiceKey:       inv.Key().String(),
		ID:               inv.ID,
		ProviderID:       inv.ProviderID,
		ClientID:         inv.ClientID,
		ContractID:       inv.ContractID,
		Year:             inv.Year,
		Month:            int(inv.Month),
		InvoiceNumber:    inv.InvoiceNumber,
		BaseAmount:       inv.BaseAmount.String(),
		AutoAdjustment:   inv.AutoAdjustment.String(),
		ManualAdjustment: inv.ManualAdjustment.String(),
		ManualReason:     inv.ManualReason,
		FinalAmount:      inv.FinalAmount.String(),
		PeriodStart:      formatTimePtr(inv.PeriodStart),
		PeriodEnd:        formatTimePtr(inv.PeriodEnd),
		SendStatus:       string(inv.SendStatus),
		ForceToToday:     inv.ForceToTodayBilling,
		Version:          inv.Version,
		CreatedAt:        formatTime(inv.CreatedAt),
		UpdatedAt:        formatTime(inv.UpdatedAt),
		SendHistory: lo.Map(inv.SendHistory, func(h entities.SendHistoryEntry, _ int) sendHistoryItem {
			return sendHistoryItem{
				Channel:       string(h.Channel),
				SentAt:        formatTime(h.SentAt),
				DisplayPeriod: h.DisplayPeriod,
				Success:       h.Success,
				Detail:        h.Detail,
			}
		}),
	}
	if a := inv.AccountSnapshot; a != nil {
		it.AccountSnapshot = &accountItem{
			ProviderID:    a.ProviderID,
			BankName:      a.BankName,
			AccountNumber: a.AccountNumber,
			AccountHolder: a.AccountHolder,
			UpdatedAt:     formatTime(a.UpdatedAt),
		}
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:                  it.ID,
		ProviderID:          it.ProviderID,
		ClientID:            it.ClientID,
		ContractID:          it.ContractID,
		Year:                it.Year,
		Month:               time.Month(it.Month),
		InvoiceNumber:       it.InvoiceNumber,
		BaseAmount:          parseDecimal(it.BaseAmount),
		AutoAdjustment:      parseDecimal(it.AutoAdjustment),
		ManualAdjustment:    parseDecimal(it.ManualAdjustment),
		ManualReason:        it.ManualReason,
		FinalAmount:         parseDecimal(it.FinalAmount),
		PeriodStart:         parseTimePtr(it.PeriodStart),
		PeriodEnd:           parseTimePtr(it.PeriodEnd),
		SendStatus:          entities.SendStatus(it.SendStatus),
		ForceToTodayBilling: it.ForceToToday,
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		SendHistory: lo.Map(it.SendHistory, func(h sendHistoryItem, _ int) entities.SendHistoryEntry {
			return entities.SendHistoryEntry{
				Channel:       entities.SendChannel(h.Channel),
				SentAt:        parseTime(h.SentAt),
				DisplayPeriod: h.DisplayPeriod,
				Success:       h.Success,
				Detail:        h.Detail,
			}
		}),
	}
	if a := it.AccountSnapshot; a != nil {
		inv.AccountSnapshot = &entities.PayoutAccount{
			ProviderID:    a.ProviderID,
			BankName:      a.BankName,
			AccountNumber: a.AccountNumber,
			AccountHolder: a.AccountHolder,
			UpdatedAt:     parseTime(a.UpdatedAt),
		}
	}
	return inv
}
