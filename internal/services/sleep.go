package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sbilibin2017/sleep-tracker/internal/models"
)

var (
	// ErrSleepNotFound is returned when no sleep record exists at the given id.
	ErrSleepNotFound = errors.New("sleep record not found")
	// ErrNotRecordOwner is returned when the record at the given id is owned
	// by a different user than the caller.
	ErrNotRecordOwner = errors.New("sleep record owned by another user")
)

// SleepReader defines read operations for sleep records.
type SleepReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SleepDB, error) // Returns records owned by the user
	GetByID(ctx context.Context, sleepID uuid.UUID) (*models.SleepDB, error)      // Returns the record regardless of owner
}

// SleepWriter defines write operations for sleep records.
type SleepWriter interface {
	Save(ctx context.Context, userID uuid.UUID, date string, hours float64, quality string) (*models.SleepDB, error)
	Update(ctx context.Context, sleepID, userID uuid.UUID, date string, hours float64, quality string) (*models.SleepDB, error)
	Delete(ctx context.Context, sleepID, userID uuid.UUID) (bool, error)
}

// SleepCache caches per-owner sleep lists.
type SleepCache interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.SleepDB, error)
	SetByUserID(ctx context.Context, userID uuid.UUID, sleeps []models.SleepDB) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SleepService handles owner-scoped sleep record operations and Kafka publishing.
type SleepService struct {
	reader      SleepReader
	writer      SleepWriter
	cache       SleepCache
	kafkaWriter KafkaWriter
	log         *zap.SugaredLogger
}

// NewSleepService creates a new SleepService. The cache and Kafka writer are
// optional; a nil cache disables read-through caching, a nil writer disables
// event publishing.
func NewSleepService(
	reader SleepReader,
	writer SleepWriter,
	cache SleepCache,
	kafkaWriter KafkaWriter,
	log *zap.SugaredLogger,
) *SleepService {
	return &SleepService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		log:         log,
	}
}

// publishEvent publishes a sleep activity event to Kafka.
func (s *SleepService) publishEvent(ctx context.Context, event models.SleepEvent) {
	if s.kafkaWriter == nil {
		s.log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		s.log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		s.log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// invalidateCache drops the cached list for a user. Cache failures are soft.
func (s *SleepService) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByUserID(ctx, userID); err != nil {
		s.log.Warnw("failed to invalidate sleep cache", "userID", userID, "error", err)
	}
}

// Create stores a new sleep record owned by the caller.
func (s *SleepService) Create(ctx context.Context, userID uuid.UUID, date string, hours float64, quality string) (*models.SleepDB, error) {
	sleep, err := s.writer.Save(ctx, userID, date, hours, quality)
	if err != nil {
		s.log.Errorw("failed to save sleep record", "userID", userID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx, userID)
	s.publishEvent(ctx, models.SleepEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		SleepID:   sleep.SleepID.String(),
		Operation: "create",
	})

	return sleep, nil
}

// List returns the caller's sleep records, read through the cache when possible.
func (s *SleepService) List(ctx context.Context, userID uuid.UUID) ([]models.SleepDB, error) {
	if s.cache != nil {
		if sleeps, err := s.cache.GetByUserID(ctx, userID); err == nil {
			return sleeps, nil
		}
	}

	sleeps, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		s.log.Errorw("failed to list sleep records", "userID", userID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetByUserID(ctx, userID, sleeps); err != nil {
			s.log.Warnw("failed to cache sleep records", "userID", userID, "error", err)
		}
	}

	return sleeps, nil
}

// resolveOwned fetches the record at id and checks the caller owns it.
func (s *SleepService) resolveOwned(ctx context.Context, sleepID, userID uuid.UUID) error {
	sleep, err := s.reader.GetByID(ctx, sleepID)
	if err != nil {
		s.log.Errorw("failed to get sleep record", "sleepID", sleepID, "error", err)
		return err
	}
	if sleep == nil {
		return ErrSleepNotFound
	}
	if sleep.UserID != userID {
		s.log.Warnw("rejected mutation of foreign sleep record", "sleepID", sleepID, "userID", userID)
		return ErrNotRecordOwner
	}
	return nil
}

// Update replaces the date, hours and quality of the caller's record.
func (s *SleepService) Update(ctx context.Context, userID, sleepID uuid.UUID, date string, hours float64, quality string) (*models.SleepDB, error) {
	if err := s.resolveOwned(ctx, sleepID, userID); err != nil {
		return nil, err
	}

	sleep, err := s.writer.Update(ctx, sleepID, userID, date, hours, quality)
	if err != nil {
		s.log.Errorw("failed to update sleep record", "sleepID", sleepID, "error", err)
		return nil, err
	}
	if sleep == nil {
		// Deleted between resolution and update.
		return nil, ErrSleepNotFound
	}

	s.invalidateCache(ctx, userID)
	s.publishEvent(ctx, models.SleepEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		SleepID:   sleepID.String(),
		Operation: "update",
	})

	return sleep, nil
}

// Delete removes the caller's record. Deleting an already-deleted id fails
// with ErrSleepNotFound, never succeeds silently.
func (s *SleepService) Delete(ctx context.Context, userID, sleepID uuid.UUID) error {
	if err := s.resolveOwned(ctx, sleepID, userID); err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, sleepID, userID)
	if err != nil {
		s.log.Errorw("failed to delete sleep record", "sleepID", sleepID, "error", err)
		return err
	}
	if !deleted {
		return ErrSleepNotFound
	}

	s.invalidateCache(ctx, userID)
	s.publishEvent(ctx, models.SleepEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		SleepID:   sleepID.String(),
		Operation: "delete",
	})

	return nil
}
