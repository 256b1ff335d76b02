package kv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/autogestion/dealership-backend/pkg/migrate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// SQLite is the local fallback backend: a single records table in an
// embedded database file.
type SQLite struct {
	conn *gorm.DB
}

type record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (record) TableName() string {
	return "records"
}

// NewSQLite opens (or creates) the fallback database and bootstraps the
// records table.
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql db handle: %w", err)
	}
	if err := migrate.Up(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("bootstrapping records table: %w", err)
	}

	return &SQLite{conn: conn}, nil
}

// Name implements Backend.
func (s *SQLite) Name() string {
	return "sqlite"
}

// Get implements Backend.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var row record
	err := s.conn.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

// Set implements Backend with an upsert so full-record overwrites reuse the
// same write path as creates.
func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	row := record{Key: key, Value: value}
	return s.conn.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

// List implements Backend via a LIKE prefix match on the primary key.
func (s *SQLite) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.conn.WithContext(ctx).
		Model(&record{}).
		Where("key LIKE ?", prefix+"%").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Delete implements Backend. Deleting an absent key is not an error.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	return s.conn.WithContext(ctx).Delete(&record{}, "key = ?", key).Error
}

// Ping implements Backend.
func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close implements Backend.
func (s *SQLite) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
