package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/paths"
	"github.com/lurkerbot/lurker/internal/ports"
)

const maxAppendRetries = 3

// SQLiteArchive implements ports.RecordArchive using GORM
type SQLiteArchive struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RecordArchive = (*SQLiteArchive)(nil)

// NewSQLiteArchive opens (creating if needed) the archive database at dbPath
func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets `lurker history` read while a session is appending
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&RecordModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate records schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteArchive{db: db}, nil
}

// Close closes the database connection
func (a *SQLiteArchive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Append implements RecordArchive.Append
func (a *SQLiteArchive) Append(ctx context.Context, record domain.Record) error {
	model := domainToRecordModel(record)
	err := withRetry(func() error {
		return a.db.WithContext(ctx).Create(&model).Error
	}, maxAppendRetries)
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// Recent implements RecordArchive.Recent
func (a *SQLiteArchive) Recent(ctx context.Context, filter ports.RecordFilter) ([]domain.Record, error) {
	query := a.db.WithContext(ctx).Model(&RecordModel{})
	if filter.MinLevel > 0 {
		query = query.Where("level >= ?", int(filter.MinLevel))
	}
	if filter.RunID != "" {
		query = query.Where("run_id = ?", filter.RunID)
	}
	if !filter.Since.IsZero() {
		query = query.Where("time >= ?", filter.Since.UTC())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []RecordModel
	if err := query.Order("time DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	records := make([]domain.Record, 0, len(models))
	for _, m := range models {
		records = append(records, recordModelToDomain(m))
	}
	return records, nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !isBusy(err) {
			return err
		}
		time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
	}
	return fmt.Errorf("%w: gave up after %d attempts", domain.ErrArchiveBusy, maxRetries)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
