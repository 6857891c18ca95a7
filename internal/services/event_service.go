package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"

	"saree-shop/internal/models"
)

// OrderEvents announces placed orders to downstream consumers such as the
// confirmation mailer.
type OrderEvents interface {
	PublishOrderPlaced(order models.Order) error
	Close() error
}

// KafkaOrderEvents publishes order events to a Kafka topic.
type KafkaOrderEvents struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaOrderEvents connects a synchronous producer to brokers.
func NewKafkaOrderEvents(brokers []string, topic string) (*KafkaOrderEvents, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("start kafka producer: %w", err)
	}

	log.Printf("Kafka producer connected to %v", brokers)
	return NewKafkaOrderEventsWithProducer(producer, topic), nil
}

func NewKafkaOrderEventsWithProducer(producer sarama.SyncProducer, topic string) *KafkaOrderEvents {
	return &KafkaOrderEvents{producer: producer, topic: topic}
}

func (e *KafkaOrderEvents) PublishOrderPlaced(order models.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: e.topic,
		Key:   sarama.StringEncoder(order.ID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := e.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish order %s to %s: %w", order.ID, e.topic, err)
	}
	log.Printf("Order %s published to %s, partition %d, offset %d", order.ID, e.topic, partition, offset)
	return nil
}

func (e *KafkaOrderEvents) Close() error {
	return e.producer.Close()
}

// NopOrderEvents drops every event. Used when no brokers are configured.
type NopOrderEvents struct{}

func (NopOrderEvents) PublishOrderPlaced(models.Order) error { return nil }

func (NopOrderEvents) Close() error { return nil }
