package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sbilibin2017/sleep-tracker/internal/models"
	"github.com/sbilibin2017/sleep-tracker/internal/services"
)

func TestSleepService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := zap.NewNop().Sugar()
	userID := uuid.New()

	t.Run("success publishes event and invalidates cache", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)
		mockCache := services.NewMockSleepCache(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, mockCache, mockKafka, log)

		saved := &models.SleepDB{SleepID: uuid.New(), UserID: userID, Date: "2024-01-01", Hours: 7, Quality: models.QualityGood}

		mockWriter.EXPECT().
			Save(gomock.Any(), userID, "2024-01-01", 7.0, "Good").
			Return(saved, nil)
		mockCache.EXPECT().DeleteByUserID(gomock.Any(), userID).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		sleep, err := svc.Create(context.Background(), userID, "2024-01-01", 7, "Good")
		assert.NoError(t, err)
		assert.Equal(t, saved, sleep)
		assert.Equal(t, userID, sleep.UserID)
	})

	t.Run("storage error", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		mockWriter.EXPECT().
			Save(gomock.Any(), userID, "2024-01-01", 7.0, "Good").
			Return(nil, errors.New("db error"))

		sleep, err := svc.Create(context.Background(), userID, "2024-01-01", 7, "Good")
		assert.Error(t, err)
		assert.Nil(t, sleep)
	})

	t.Run("nil cache and kafka are tolerated", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		saved := &models.SleepDB{SleepID: uuid.New(), UserID: userID}
		mockWriter.EXPECT().
			Save(gomock.Any(), userID, "2024-01-02", 6.0, "Average").
			Return(saved, nil)

		sleep, err := svc.Create(context.Background(), userID, "2024-01-02", 6, "Average")
		assert.NoError(t, err)
		assert.Equal(t, saved, sleep)
	})
}

func TestSleepService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := zap.NewNop().Sugar()
	userID := uuid.New()

	records := []models.SleepDB{
		{SleepID: uuid.New(), UserID: userID, Date: "2024-01-01", Hours: 7, Quality: models.QualityGood},
		{SleepID: uuid.New(), UserID: userID, Date: "2024-01-02", Hours: 5, Quality: models.QualityPoor},
	}

	t.Run("cache hit skips storage", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)
		mockCache := services.NewMockSleepCache(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, mockCache, nil, log)

		mockCache.EXPECT().GetByUserID(gomock.Any(), userID).Return(records, nil)

		sleeps, err := svc.List(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, records, sleeps)
	})

	t.Run("cache miss falls through and repopulates", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)
		mockCache := services.NewMockSleepCache(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, mockCache, nil, log)

		mockCache.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errors.New("cache miss"))
		mockReader.EXPECT().ListByUserID(gomock.Any(), userID).Return(records, nil)
		mockCache.EXPECT().SetByUserID(gomock.Any(), userID, records).Return(nil)

		sleeps, err := svc.List(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, records, sleeps)
	})

	t.Run("storage error", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		mockReader.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, errors.New("db error"))

		sleeps, err := svc.List(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, sleeps)
	})
}

func TestSleepService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := zap.NewNop().Sugar()
	owner := uuid.New()
	stranger := uuid.New()
	sleepID := uuid.New()

	existing := &models.SleepDB{SleepID: sleepID, UserID: owner, Date: "2024-01-01", Hours: 7, Quality: models.QualityGood}

	t.Run("owner updates own record", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)
		mockCache := services.NewMockSleepCache(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, mockCache, mockKafka, log)

		updated := &models.SleepDB{SleepID: sleepID, UserID: owner, Date: "2024-01-02", Hours: 8, Quality: models.QualityExcellent}

		mockReader.EXPECT().GetByID(gomock.Any(), sleepID).Return(existing, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), sleepID, owner, "2024-01-02", 8.0, "Excellent").
			Return(updated, nil)
		mockCache.EXPECT().DeleteByUserID(gomock.Any(), owner).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		sleep, err := svc.Update(context.Background(), owner, sleepID, "2024-01-02", 8, "Excellent")
		assert.NoError(t, err)
		assert.Equal(t, updated, sleep)
	})

	t.Run("record not found", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		mockReader.EXPECT().GetByID(gomock.Any(), sleepID).Return(nil, nil)

		sleep, err := svc.Update(context.Background(), owner, sleepID, "2024-01-02", 8, "Excellent")
		assert.ErrorIs(t, err, services.ErrSleepNotFound)
		assert.Nil(t, sleep)
	})

	t.Run("foreign record is forbidden", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		mockReader.EXPECT().GetByID(gomock.Any(), sleepID).Return(existing, nil)

		sleep, err := svc.Update(context.Background(), stranger, sleepID, "2024-01-02", 8, "Excellent")
		assert.ErrorIs(t, err, services.ErrNotRecordOwner)
		assert.Nil(t, sleep)
	})

	t.Run("record deleted between resolve and update", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		mockReader.EXPECT().GetByID(gomock.Any(), sleepID).Return(existing, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), sleepID, owner, "2024-01-02", 8.0, "Excellent").
			Return(nil, nil)

		sleep, err := svc.Update(context.Background(), owner, sleepID, "2024-01-02", 8, "Excellent")
		assert.ErrorIs(t, err, services.ErrSleepNotFound)
		assert.Nil(t, sleep)
	})
}

func TestSleepService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := zap.NewNop().Sugar()
	owner := uuid.New()
	stranger := uuid.New()
	sleepID := uuid.New()

	existing := &models.SleepDB{SleepID: sleepID, UserID: owner}

	t.Run("owner deletes own record", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)
		mockCache := services.NewMockSleepCache(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, mockCache, mockKafka, log)

		mockReader.EXPECT().GetByID(gomock.Any(), sleepID).Return(existing, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), sleepID, owner).Return(true, nil)
		mockCache.EXPECT().DeleteByUserID(gomock.Any(), owner).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), owner, sleepID)
		assert.NoError(t, err)
	})

	t.Run("deleting an absent id fails, never succeeds silently", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		mockReader.EXPECT().GetByID(gomock.Any(), sleepID).Return(nil, nil)

		err := svc.Delete(context.Background(), owner, sleepID)
		assert.ErrorIs(t, err, services.ErrSleepNotFound)
	})

	t.Run("foreign record is forbidden", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		mockReader.EXPECT().GetByID(gomock.Any(), sleepID).Return(existing, nil)

		err := svc.Delete(context.Background(), stranger, sleepID)
		assert.ErrorIs(t, err, services.ErrNotRecordOwner)
	})

	t.Run("storage error", func(t *testing.T) {
		mockReader := services.NewMockSleepReader(ctrl)
		mockWriter := services.NewMockSleepWriter(ctrl)

		svc := services.NewSleepService(mockReader, mockWriter, nil, nil, log)

		mockReader.EXPECT().GetByID(gomock.Any(), sleepID).Return(existing, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), sleepID, owner).Return(false, errors.New("db error"))

		err := svc.Delete(context.Background(), owner, sleepID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrSleepNotFound)
	})
}
