package storage

import "time"

// RecordModel is the GORM model for the records table
type RecordModel struct {
	CreatedAt time.Time
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Level     int       `gorm:"not null;index:idx_level"`
	Message   string    `gorm:"not null;default:''"`
	RunID     string    `gorm:"not null;index:idx_run_id"`
	Source    string    `gorm:"not null;default:''"`
	Time      time.Time `gorm:"not null;index:idx_time"`
}

// TableName specifies the table name for GORM
func (RecordModel) TableName() string { return "records" }
