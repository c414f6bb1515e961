package repository

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionsTableName = "financial_transactions"
	transactionsOrderIDIndex     = "order_id-index"
)

type transactionItem struct {
	ID                   string                 `dynamodbav:"id"`
	OrderID              string                 `dynamodbav:"order_id"`
	Description          string                 `dynamodbav:"description"`
	LocationID           string                 `dynamodbav:"location_id"`
	CustomerID           string                 `dynamodbav:"customer_id"`
	OperatorID           string                 `dynamodbav:"operator_id,omitempty"`
	PaymentMethod        string                 `dynamodbav:"payment_method"`
	Type                 string                 `dynamodbav:"type"`
	Amount               string                 `dynamodbav:"amount"`
	Revenue              string                 `dynamodbav:"revenue"`
	GatewayTransactionID string                 `dynamodbav:"gateway_transaction_id,omitempty"`
	Response             map[string]interface{} `dynamodbav:"response,omitempty"`
	ResponseRaw          string                 `dynamodbav:"response_raw,omitempty"`
	RefundMethod         string                 `dynamodbav:"refund_method,omitempty"`
	RefundGiftcardID     string                 `dynamodbav:"refund_giftcard_id,omitempty"`
	RefundStorecreditID  string                 `dynamodbav:"refund_storecredit_id,omitempty"`
	CreatedAt            string                 `dynamodbav:"created_at"`
}

// TransactionDynamoRepository persists ledger records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILedgerRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client, tableName string) *TransactionDynamoRepository {
	if tableName == "" {
		tableName = defaultTransactionsTableName
	}
	return &TransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransactionDynamoRepository) Append(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(rec))
	if err != nil {
		return entities.TransactionRecord{}, err
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
		log.Printf("[ledger][dynamodb] put failed id=%s order_id=%s err=%v", rec.ID, rec.OrderID, err)
		return entities.TransactionRecord{}, err
	}
	return rec, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.TransactionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.TransactionRecord{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TransactionRecord{}, err
	}
	return fromTransactionItem(it), nil
}

// ListByOrderID follows pagination and returns records oldest first.
func (r *TransactionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.TransactionRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})

	items := make([]entities.TransactionRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromTransactionItem(it))
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func toTransactionItem(rec entities.TransactionRecord) transactionItem {
	it := transactionItem{
		ID:                   rec.ID,
		OrderID:              rec.OrderID,
		Description:          rec.Description,
		LocationID:           rec.LocationID,
		CustomerID:           rec.CustomerID,
		OperatorID:           rec.OperatorID,
		PaymentMethod:        string(rec.PaymentMethod),
		Type:                 string(rec.TransactionType),
		Amount:               rec.Amount.String(),
		Revenue:              rec.Revenue.String(),
		GatewayTransactionID: rec.GatewayTransactionID,
		Response:             rec.Response,
		RefundMethod:         string(rec.RefundMethod),
		RefundGiftcardID:     rec.RefundGiftcardID,
		RefundStorecreditID:  rec.RefundStorecreditID,
		CreatedAt:            rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(rec.Response) > 0 {
		if b, err := json.Marshal(rec.Response); err == nil {
			it.ResponseRaw = string(b)
		}
	}
	return it
}

func fromTransactionItem(it transactionItem) entities.TransactionRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := decimal.NewFromString(it.Amount)
	revenue, _ := decimal.NewFromString(it.Revenue)

	// The raw snapshot keeps number types intact; prefer it over the map.
	response := entities.GatewayResponse(it.Response)
	if it.ResponseRaw != "" {
		var parsed entities.GatewayResponse
		if err := json.Unmarshal([]byte(it.ResponseRaw), &parsed); err == nil {
			response = parsed
		}
	}

	return entities.TransactionRecord{
		ID:                   it.ID,
		OrderID:              it.OrderID,
		Description:          it.Description,
		LocationID:           it.LocationID,
		CustomerID:           it.CustomerID,
		OperatorID:           it.OperatorID,
		PaymentMethod:        entities.InstrumentType(it.PaymentMethod),
		TransactionType:      entities.TransactionType(it.Type),
		Amount:               amount,
		Revenue:              revenue,
		GatewayTransactionID: it.GatewayTransactionID,
		Response:             response,
		RefundMethod:         entities.InstrumentType(it.RefundMethod),
		RefundGiftcardID:     it.RefundGiftcardID,
		RefundStorecreditID:  it.RefundStorecreditID,
		CreatedAt:            createdAt,
	}
}
