package repository

import (
	"context"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PayoutAccountDynamoRepository persists one PayoutAccount per provider.
//
// Table requirements:
//   - PK: provider_id (string)
type PayoutAccountDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPayoutAccountRepository = (*PayoutAccountDynamoRepository)(nil)

func NewPayoutAccountDynamoRepository(ddb DynamoAPI, tableName string) *PayoutAccountDynamoRepository {
	return &PayoutAccountDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PayoutAccountDynamoRepository) GetByProviderID(ctx context.Context, providerID string) (entities.PayoutAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider_id": sAttr(providerID),
		},
	})
	if err != nil {
		return entities.PayoutAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.PayoutAccount{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PayoutAccount{}, err
	}
	return entities.PayoutAccount{
		ProviderID:    it.ProviderID,
		BankName:      it.BankName,
		AccountNumber: it.AccountNumber,
		AccountHolder: it.AccountHolder,
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}

func (r *PayoutAccountDynamoRepository) Put(ctx context.Context, a entities.PayoutAccount) (entities.PayoutAccount, error) {
	av, err := attributevalue.MarshalMap(accountItem{
		ProviderID:    a.ProviderID,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		AccountHolder: a.AccountHolder,
		UpdatedAt:     formatTime(a.UpdatedAt),
	})
	if err != nil {
		return entities.PayoutAccount{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.PayoutAccount{}, err
	}
	return a, nil
}
