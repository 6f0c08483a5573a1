package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/storefront/internal/cart/domain"
)

// Record is one key-value row
type Record struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (Record) TableName() string {
	return "kv_records"
}

// GormStore persists cart records in a postgres key-value table
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&Record{})
}

func (s *GormStore) Load(ctx context.Context, key string) ([]byte, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return rec.Value, nil
}

// Save overwrites the row for key, inserting it on first write
func (s *GormStore) Save(ctx context.Context, key string, data []byte) error {
	rec := Record{Key: key, Value: data, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Ping reports whether the database is reachable
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
