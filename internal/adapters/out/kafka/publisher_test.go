package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkaout "marketplace/internal/adapters/out/kafka"
	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type writerMock struct {
	mock.Mock
}

func (m *writerMock) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *writerMock) Close() error {
	return m.Called().Error(0)
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"kafka:9092", "kafka-2:9092"}, kafkaout.ParseBrokers(" kafka:9092, ,kafka-2:9092 "))
	assert.Empty(t, kafkaout.ParseBrokers(""))
}

func TestNewWriter(t *testing.T) {
	_, err := kafkaout.NewWriter(nil, "orders")
	require.ErrorIs(t, err, kafkaout.ErrNoBrokers)

	_, err = kafkaout.NewWriter([]string{"kafka:9092"}, " ")
	require.Error(t, err)

	w, err := kafkaout.NewWriter([]string{"kafka:9092"}, "orders.changed")
	require.NoError(t, err)
	assert.Equal(t, "orders.changed", w.Topic)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.Equal(t, kafkaout.BatchTimeout, w.BatchTimeout)
	assert.Less(t, w.BatchTimeout, time.Second)
}

func TestOrderEventPublisher_PublishOrderChanged(t *testing.T) {
	ctx := context.Background()
	event := ports.OrderChanged{
		OrderID:       "0b4c3d2e-0000-4000-8000-000000000001",
		BuyerID:       "0b4c3d2e-0000-4000-8000-000000000002",
		Status:        "CONFIRMED",
		PaymentStatus: "PAID",
		PaymentType:   "PREPAID",
		Total:         "2000.00",
		Version:       3,
		OccurredAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("keys the message by order id", func(t *testing.T) {
		w := &writerMock{}
		w.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
			if len(msgs) != 1 || string(msgs[0].Key) != event.OrderID {
				return false
			}
			var decoded ports.OrderChanged
			if err := json.Unmarshal(msgs[0].Value, &decoded); err != nil {
				return false
			}
			return decoded.Status == event.Status && decoded.Version == event.Version &&
				decoded.OccurredAt.Equal(event.OccurredAt)
		})).Return(nil).Once()

		err := kafkaout.NewOrderEventPublisher(w).PublishOrderChanged(ctx, event)

		require.NoError(t, err)
		w.AssertExpectations(t)
	})

	t.Run("wraps writer errors", func(t *testing.T) {
		boom := errors.New("leader not available")
		w := &writerMock{}
		w.On("WriteMessages", ctx, mock.Anything).Return(boom).Once()

		err := kafkaout.NewOrderEventPublisher(w).PublishOrderChanged(ctx, event)

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), event.OrderID)
	})

	t.Run("close closes the writer", func(t *testing.T) {
		w := &writerMock{}
		w.On("Close").Return(nil).Once()

		require.NoError(t, kafkaout.NewOrderEventPublisher(w).Close())
		w.AssertExpectations(t)
	})
}
