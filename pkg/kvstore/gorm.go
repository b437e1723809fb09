package kvstore

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/pkg/logger"
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists progress entries in the platform's primary database as
// one row per key.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool) {
	var entry model.ProgressEntry
	err := s.DB.WithContext(ctx).Where("k = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false
	}
	if err != nil {
		logger.Log.Warn("progress store read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return entry.Value, true
}

func (s *GormStore) Set(ctx context.Context, key, value string) {
	entry := model.ProgressEntry{Key: key, Value: value}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"v"}),
	}).Create(&entry).Error
	if err != nil {
		logger.Log.Warn("progress store write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *GormStore) IncrBy(ctx context.Context, key string, delta int64) {
	// The per-day counter is a decimal string; the increment happens in a
	// transaction so two ticks cannot overwrite each other's read.
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry model.ProgressEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("k = ?", key).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.ProgressEntry{Key: key, Value: strconv.FormatInt(delta, 10)}).Error
		}
		if err != nil {
			return err
		}
		current, _ := strconv.ParseInt(entry.Value, 10, 64)
		return tx.Model(&entry).Update("v", strconv.FormatInt(current+delta, 10)).Error
	})
	if err != nil {
		logger.Log.Warn("progress store increment failed", zap.String("key", key), zap.Error(err))
	}
}
