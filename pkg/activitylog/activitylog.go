package activitylog

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/database"
	"gorm.io/gorm"
)

// Entry is the persisted form of a completed session. The log is append
// only - rows are never updated or deleted.
type Entry struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time

	Date time.Time `gorm:"index"`

	WalkingMode string

	DistanceMeters  float64
	StepCount       int64
	DurationSeconds int64
	CaloriesKcal    float64

	FromName string
	ToName   string
}

func (Entry) TableName() string {
	return "activity_entries"
}

type Log struct {
	db *gorm.DB
}

func NewLog() *Log {
	db := database.GlobalGorm

	if err := db.AutoMigrate(&Entry{}); err != nil {
		log.Error().Err(err).Msg("Failed to migrate activity entries table")
	}

	return &Log{db: db}
}

func (l *Log) Append(ctx context.Context, entry cdm.ActivityEntry) error {
	row := Entry{
		ID:   entry.ID,
		Date: entry.Date,

		WalkingMode: string(entry.WalkingMode),

		DistanceMeters:  entry.DistanceMeters,
		StepCount:       entry.StepCount,
		DurationSeconds: entry.DurationSeconds,
		CaloriesKcal:    entry.CaloriesKcal,

		FromName: entry.From,
		ToName:   entry.To,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

// Recent returns the newest entries, most recent first
func (l *Log) Recent(ctx context.Context, limit int) ([]cdm.ActivityEntry, error) {
	var rows []Entry

	err := l.db.WithContext(ctx).Order("date desc").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]cdm.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, cdm.ActivityEntry{
			ID:   row.ID,
			Date: row.Date,

			WalkingMode: cdm.WalkingMode(row.WalkingMode),

			DistanceMeters:  row.DistanceMeters,
			StepCount:       row.StepCount,
			DurationSeconds: row.DurationSeconds,
			CaloriesKcal:    row.CaloriesKcal,

			From: row.FromName,
			To:   row.ToName,
		})
	}

	return entries, nil
}
