package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is one stored ledger document.
type Blob struct {
	Key       string    `gorm:"column:blob_key;primaryKey;size:64"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table created by the SQL migrations.
func (Blob) TableName() string {
	return "ledger_blobs"
}

// GormStore stores blobs in a relational table through GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore on db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates the blob table when it is missing.
func (s *GormStore) AutoMigrate() error {
	if err := s.db.AutoMigrate(&Blob{}); err != nil {
		return fmt.Errorf("failed to migrate blob table: %w", err)
	}
	return nil
}

// Get implements BlobStore.
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var blob Blob
	err := s.db.WithContext(ctx).Where("blob_key = ?", key).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return blob.Value, true, nil
}

// Set implements BlobStore with an upsert on the key.
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	blob := Blob{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
