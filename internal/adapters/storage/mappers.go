package storage

import (
	"github.com/lurkerbot/lurker/internal/domain"
)

// recordModelToDomain converts a RecordModel (GORM) to domain.Record
func recordModelToDomain(m RecordModel) domain.Record {
	return domain.Record{
		Level:   domain.Level(m.Level),
		Message: m.Message,
		RunID:   m.RunID,
		Source:  m.Source,
		Time:    m.Time,
	}
}

// domainToRecordModel converts a domain.Record to RecordModel (GORM)
func domainToRecordModel(r domain.Record) RecordModel {
	return RecordModel{
		Level:   int(r.Level),
		Message: r.Message,
		RunID:   r.RunID,
		Source:  r.Source,
		Time:    r.Time.UTC(),
	}
}
