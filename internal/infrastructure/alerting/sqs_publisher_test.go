package alerting

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/shopspring/decimal"
)

type fakeSender struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSender) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func testAlert() interfaces.PersistenceAlert {
	return interfaces.PersistenceAlert{
		OrderID: "ord-1",
		Index:   1,
		Record: entities.TransactionRecord{
			ID:              "tx-2",
			OrderID:         "ord-1",
			PaymentMethod:   entities.InstrumentGiftCard,
			TransactionType: entities.TransactionTypeSale,
			Amount:          decimal.NewFromInt(20),
		},
		Error:    "ledger unavailable",
		RaisedAt: time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC),
	}
}

func TestSQSPublisher(t *testing.T) {
	t.Run("sends the alert as json", func(t *testing.T) {
		sender := &fakeSender{}
		p := &SQSPublisher{client: sender, queueURL: "http://localhost:4566/000000000000/alerts"}

		if err := p.PublishPersistenceFailure(context.Background(), testAlert()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sender.inputs) != 1 {
			t.Fatalf("expected one message, got %d", len(sender.inputs))
		}
		in := sender.inputs[0]
		if aws.ToString(in.QueueUrl) != "http://localhost:4566/000000000000/alerts" {
			t.Fatalf("unexpected queue: %s", aws.ToString(in.QueueUrl))
		}
		var body map[string]any
		if err := json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &body); err != nil {
			t.Fatalf("body is not json: %v", err)
		}
		record, _ := body["record"].(map[string]any)
		if body["order_id"] != "ord-1" || body["error"] != "ledger unavailable" || record["id"] != "tx-2" {
			t.Fatalf("unexpected body: %v", body)
		}
		if aws.ToString(in.MessageAttributes["alert_type"].StringValue) != alertTypePersistenceFailure {
			t.Fatalf("missing alert_type attribute")
		}
	})

	t.Run("send errors are returned", func(t *testing.T) {
		p := &SQSPublisher{client: &fakeSender{err: errors.New("throttled")}, queueURL: "q"}
		if err := p.PublishPersistenceFailure(context.Background(), testAlert()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLogPublisher(t *testing.T) {
	if err := (LogPublisher{}).PublishPersistenceFailure(context.Background(), testAlert()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
