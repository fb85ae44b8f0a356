package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// TxRunner runs fn inside one transaction scope.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publisher emits change notifications. A nil writer disables publishing.
type publisher struct {
	writer KafkaWriter
}

// publish sends one change notification. Failures are logged, never returned:
// the write it describes has already been committed.
func (p publisher) publish(ctx context.Context, entity, operation string, id int64) {
	change := models.ChangeEvent{
		ChangeID:  uuid.NewString(),
		Entity:    entity,
		Operation: operation,
		ID:        id,
		Timestamp: time.Now().Unix(),
	}

	if p.writer == nil {
		logger.Log.Debugw("kafka writer not configured, skipping change", "entity", entity, "id", id)
		return
	}

	data, err := json.Marshal(change)
	if err != nil {
		logger.Log.Errorw("failed to marshal change", "change_id", change.ChangeID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entity + ":" + strconv.FormatInt(id, 10)),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish change", "change_id", change.ChangeID, "entity", entity, "id", id, "error", err)
		return
	}
	logger.Log.Infow("change published", "change_id", change.ChangeID, "entity", entity, "operation", operation, "id", id)
}

// logFailure logs a failed operation. Outcomes caused by the request itself
// (absent row, empty update, invalid fields) are logged at info, constraint
// violations at warn, everything else at error.
func logFailure(msg string, err error, keysAndValues ...any) {
	keysAndValues = append(keysAndValues, "error", err)

	var verr *models.ValidationError
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, repositories.ErrEmptyUpdate),
		errors.As(err, &verr):
		logger.Log.Infow(msg, keysAndValues...)
	case errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23"):
		logger.Log.Warnw(msg, keysAndValues...)
	default:
		logger.Log.Errorw(msg, keysAndValues...)
	}
}
