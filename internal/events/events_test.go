package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestKafka_Publish(t *testing.T) {
	w := &recordingWriter{}
	k := &Kafka{w: w, source: "test"}

	total := 21.2
	e := New(EstimateCreated, 42, &total)
	require.NoError(t, k.Publish(context.Background(), e))

	require.Len(t, w.msgs, 1)
	m := w.msgs[0]
	require.Equal(t, "42", string(m.Key))

	var got Event
	require.NoError(t, json.Unmarshal(m.Value, &got))
	require.Equal(t, e.ID, got.ID)
	require.Equal(t, EstimateCreated, got.Type)
	require.Equal(t, 21.2, *got.Total)

	headers := map[string]string{}
	for _, h := range m.Headers {
		headers[h.Key] = string(h.Value)
	}
	require.Equal(t, "estimate.created", headers["event-type"])
	require.Equal(t, "test", headers["source"])
}

func TestKafka_PublishError(t *testing.T) {
	k := &Kafka{w: &recordingWriter{err: errors.New("broker down")}}
	err := k.Publish(context.Background(), New(InvoiceDeleted, 1, nil))
	require.EqualError(t, err, "broker down")
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(CustomerUpserted, 1, nil)
	b := New(CustomerUpserted, 1, nil)
	require.NotEqual(t, a.ID, b.ID)
	require.Nil(t, a.Total)
}
