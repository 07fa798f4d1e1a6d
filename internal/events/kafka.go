package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const TopicSaleCompleted = "pos.sale.completed"

// Envelope wraps a payload for downstream Kafka consumers.
type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

// KafkaSink mirrors sale events onto a Kafka topic. Messages go through a
// buffered inbox so a slow broker never blocks a sale; the goroutine drains
// whatever is left when the inbox closes.
type KafkaSink struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
	service string
}

func NewKafkaSink(brokers []string, topic, service string, buf int) *KafkaSink {
	return &KafkaSink{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
		service: service,
	}
}

func (s *KafkaSink) Start() {
	go func() {
		for m := range s.inbox {
			if err := s.w.WriteMessages(context.Background(), m); err != nil {
				log.Printf("kafka publish: %v", err)
			}
		}
		_ = s.w.Close()
		close(s.closeCh)
	}()
}

func (s *KafkaSink) Publish(ctx context.Context, name string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("kafka marshal %s: %v", name, err)
		return
	}
	env, err := json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		EventType:  name,
		OccurredAt: time.Now().UTC(),
		Producer:   s.service,
		Payload:    body,
	})
	if err != nil {
		log.Printf("kafka marshal %s: %v", name, err)
		return
	}
	select {
	case s.inbox <- kafka.Message{Key: []byte(name), Value: env, Time: time.Now()}:
	default:
		log.Printf("kafka inbox full, dropping %s", name)
	}
}

// Close stops intake so the goroutine can flush and exit.
func (s *KafkaSink) Close() { close(s.inbox) }

// WaitClosed blocks until the flush finished.
func (s *KafkaSink) WaitClosed() { <-s.closeCh }
