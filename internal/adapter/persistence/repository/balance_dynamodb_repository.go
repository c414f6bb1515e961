package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultBalancesTableName = "balance_accounts"

// BalanceDynamoRepository keeps store credit and gift card balances in
// DynamoDB. Balances are stored as numbers so debits and credits are applied
// atomically by UpdateItem arithmetic.
//
// Table requirements:
//   - PK: id (string)

type BalanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBalanceRepository = (*BalanceDynamoRepository)(nil)

func NewBalanceDynamoRepository(ddb *dynamodb.Client, tableName string) *BalanceDynamoRepository {
	if tableName == "" {
		tableName = defaultBalancesTableName
	}
	return &BalanceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BalanceDynamoRepository) Get(ctx context.Context, id string) (entities.BalanceAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BalanceAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.BalanceAccount{}, nil
	}
	return balanceFromAttributes(out.Item)
}

func (r *BalanceDynamoRepository) Debit(ctx context.Context, id string, kind entities.InstrumentType, amount decimal.Decimal) (entities.BalanceAccount, error) {
	acc, err := r.update(ctx, id,
		"SET #balance = #balance - :amount, #updated_at = :updated_at",
		"attribute_exists(#id) AND #kind = :kind AND #balance >= :amount",
		map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: amount.String()},
			":kind":   &types.AttributeValueMemberS{Value: string(kind)},
		},
	)
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return entities.BalanceAccount{}, debitConditionError(cfe.Item, kind)
	}
	return acc, err
}

func (r *BalanceDynamoRepository) Credit(ctx context.Context, id string, kind entities.InstrumentType, amount decimal.Decimal) (entities.BalanceAccount, error) {
	acc, err := r.update(ctx, id,
		"SET #balance = if_not_exists(#balance, :zero) + :amount, #kind = if_not_exists(#kind, :kind), #updated_at = :updated_at",
		"attribute_not_exists(#id) OR attribute_not_exists(#kind) OR #kind = :kind",
		map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: amount.String()},
			":zero":   &types.AttributeValueMemberN{Value: "0"},
			":kind":   &types.AttributeValueMemberS{Value: string(kind)},
		},
	)
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return entities.BalanceAccount{}, interfaces.ErrAccountKindMismatch
	}
	return acc, err
}

// debitConditionError tells a kind mismatch from a short balance using the
// item returned with the failed condition. A missing account counts as an
// empty balance.
func debitConditionError(item map[string]types.AttributeValue, kind entities.InstrumentType) error {
	if existing := stringAttr(item, "kind"); existing != "" && existing != string(kind) {
		return interfaces.ErrAccountKindMismatch
	}
	return interfaces.ErrInsufficientBalance
}

func (r *BalanceDynamoRepository) update(ctx context.Context, id, updateExpr, condition string, values map[string]types.AttributeValue) (entities.BalanceAccount, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}
	names := map[string]string{
		"#balance":    "balance",
		"#updated_at": "updated_at",
	}
	if condition != "" {
		names["#id"] = "id"
	}
	if _, ok := values[":kind"]; ok {
		names["#kind"] = "kind"
	}

	in := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	}
	if condition != "" {
		in.ConditionExpression = aws.String(condition)
		in.ReturnValuesOnConditionCheckFailure = types.ReturnValuesOnConditionCheckFailureAllOld
	}

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		return entities.BalanceAccount{}, err
	}
	return balanceFromAttributes(out.Attributes)
}

func balanceFromAttributes(av map[string]types.AttributeValue) (entities.BalanceAccount, error) {
	acc := entities.BalanceAccount{
		ID:   stringAttr(av, "id"),
		Kind: entities.InstrumentType(stringAttr(av, "kind")),
	}
	if n, ok := av["balance"].(*types.AttributeValueMemberN); ok {
		bal, err := decimal.NewFromString(n.Value)
		if err != nil {
			return entities.BalanceAccount{}, fmt.Errorf("balance %s: %w", acc.ID, err)
		}
		acc.Balance = bal
	}
	acc.UpdatedAt, _ = time.Parse(time.RFC3339Nano, stringAttr(av, "updated_at"))
	return acc, nil
}

func stringAttr(av map[string]types.AttributeValue, key string) string {
	if s, ok := av[key].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
