// Package events publishes estimate, invoice and customer lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EstimateCreated  = "estimate.created"
	EstimateUpdated  = "estimate.updated"
	EstimateDeleted  = "estimate.deleted"
	InvoiceCreated   = "invoice.created"
	InvoiceDeleted   = "invoice.deleted"
	CustomerUpserted = "customer.upserted"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	Total      *float64  `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New stamps an event with a fresh id and the current time.
func New(typ string, entityID int64, total *float64) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		EntityID:   entityID,
		Total:      total,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops events; used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Kafka struct {
	w      messageWriter
	source string
}

func NewKafka(brokers []string, topic string) *Kafka {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Kafka{w: w, source: "printshop"}
}

func (k *Kafka) Publish(ctx context.Context, e Event) error {
	val, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = k.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(e.EntityID, 10)),
		Value: val,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-type", Value: []byte(e.Type)},
			{Key: "source", Value: []byte(k.source)},
		},
	})
	if err != nil {
		return err
	}
	log.Printf("produced type=%s key=%d", e.Type, e.EntityID)
	return nil
}

func (k *Kafka) Close() error {
	if c, ok := k.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
