package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	internalaws "github.com/shopstack/catalog-api/internal/aws"
)

const metricNamespace = "CatalogAPI"

// Processor turns order-created events into CloudWatch metrics. It never
// touches the order store: orders are recorded as "pending" once and this
// system does not transition them.
type Processor struct {
	cloudwatch internalaws.CloudWatchAPI
	namespace  string
}

// NewProcessor creates a worker processor with the CloudWatch client injected.
func NewProcessor(cw internalaws.CloudWatchAPI) *Processor {
	return &Processor{cloudwatch: cw, namespace: metricNamespace}
}

// Handle receives an SQS batch event and processes each message. A bad
// message returns the error so the Lambda runtime retries and eventually
// dead-letters it.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			log.Printf("worker error: %v", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg orderEvent
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if msg.OrderID == "" {
		return fmt.Errorf("message missing order_id: %s", rec.Body)
	}

	log.Printf("[worker] received order=%s total=%.2f items=%d corr=%s",
		msg.OrderID, msg.Total, msg.ItemCount, msg.CorrelationID)

	input := &cloudwatch.PutMetricDataInput{
		Namespace: awsString(p.namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: awsString("OrderTotal"),
				Unit:       cwtypes.StandardUnitNone,
				Value:      awsFloat(msg.Total),
			},
			{
				MetricName: awsString("OrderItemCount"),
				Unit:       cwtypes.StandardUnitCount,
				Value:      awsFloat(float64(msg.ItemCount)),
			},
		},
	}
	if _, err := p.cloudwatch.PutMetricData(ctx, input); err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}

	log.Printf("[worker] recorded metrics for order=%s", msg.OrderID)
	return nil
}

func awsString(s string) *string  { return &s }
func awsFloat(f float64) *float64 { return &f }
