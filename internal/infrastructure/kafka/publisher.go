package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes core events to dedicated topics, keyed so that
// events of one aggregate land on one partition in order.
type KafkaPublisher struct {
	tradeWriter   *kafka.Writer
	disputeWriter *kafka.Writer
	trustWriter   *kafka.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		}
	}
	return &KafkaPublisher{
		tradeWriter:   newWriter("trade-events"),
		disputeWriter: newWriter("dispute-events"),
		trustWriter:   newWriter("trust-score-events"),
	}
}

func (k *KafkaPublisher) PublishTrade(event domain.TradeEvent) error {
	return publish(k.tradeWriter, event.TransactionID, event)
}

func (k *KafkaPublisher) PublishDispute(event domain.DisputeEvent) error {
	return publish(k.disputeWriter, event.TransactionID, event)
}

func (k *KafkaPublisher) PublishTrustScore(event domain.TrustScoreEvent) error {
	return publish(k.trustWriter, event.UserID, event)
}

func (k *KafkaPublisher) Close() error {
	for _, w := range []*kafka.Writer{k.tradeWriter, k.disputeWriter, k.trustWriter} {
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}

func publish(writer *kafka.Writer, key string, event any) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(key),
		Value: msg,
		Time:  time.Now(),
	})
}
