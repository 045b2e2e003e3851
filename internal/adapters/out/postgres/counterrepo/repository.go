// Package counterrepo reserves per-day order sequence values in PostgreSQL.
package counterrepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DailyCounterDTO is the daily_counters table: one row per calendar day holding
// the last sequence value handed out.
type DailyCounterDTO struct {
	CounterDate time.Time `gorm:"type:date;primaryKey"`
	Counter     int       `gorm:"not null;default:0"`
}

func (DailyCounterDTO) TableName() string {
	return "daily_counters"
}

// The upsert takes the row lock for the duration of one statement only, so
// concurrent callers on the same day are serialized without holding the lock
// across the order transaction.
const nextSQL = `
	INSERT INTO daily_counters (counter_date, counter)
	VALUES (?, 1)
	ON CONFLICT (counter_date)
	DO UPDATE SET counter = daily_counters.counter + 1
	RETURNING counter`

// GormOrderNumberSequence implements ports.OrderNumberSequence.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next returns the next value for the calendar day of day, in day's location.
func (s *GormOrderNumberSequence) Next(ctx context.Context, day time.Time) (int, error) {
	var counter int
	err := s.db.WithContext(ctx).Raw(nextSQL, day.Format(time.DateOnly)).Scan(&counter).Error
	if err != nil {
		return 0, fmt.Errorf("increment daily counter: %w", err)
	}
	if counter < 1 {
		return 0, fmt.Errorf("increment daily counter: unexpected value %d", counter)
	}
	return counter, nil
}
