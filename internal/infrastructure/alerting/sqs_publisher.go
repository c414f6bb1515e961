package alerting

import (
	"context"
	"encoding/json"
	"log"

	"splitpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const alertTypePersistenceFailure = "ledger_persistence_failed"

type sqsSender interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends persistence alerts to an SQS queue so an operator (or a
// reconciliation job) can write the missing ledger record.
type SQSPublisher struct {
	client   sqsSender
	queueURL string
}

var _ interfaces.IAlertPublisher = (*SQSPublisher)(nil)

func NewSQSPublisher(client *sqs.Client, queueURL string) *SQSPublisher {
	return &SQSPublisher{client: client, queueURL: queueURL}
}

func (p *SQSPublisher) PublishPersistenceFailure(ctx context.Context, alert interfaces.PersistenceAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	out, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"alert_type": {DataType: aws.String("String"), StringValue: aws.String(alertTypePersistenceFailure)},
			"order_id":   {DataType: aws.String("String"), StringValue: aws.String(alert.OrderID)},
		},
	})
	if err != nil {
		log.Printf("[alert][sqs] send failed order_id=%s transaction_id=%s err=%v", alert.OrderID, alert.Record.ID, err)
		return err
	}
	log.Printf("[alert][sqs] sent order_id=%s transaction_id=%s message_id=%s", alert.OrderID, alert.Record.ID, aws.ToString(out.MessageId))
	return nil
}

// LogPublisher only logs the alert; used when no queue is configured.
type LogPublisher struct{}

var _ interfaces.IAlertPublisher = LogPublisher{}

func (LogPublisher) PublishPersistenceFailure(_ context.Context, alert interfaces.PersistenceAlert) error {
	body, _ := json.Marshal(alert)
	log.Printf("[alert][log] CRITICAL ledger persistence failure alert=%s", body)
	return nil
}
