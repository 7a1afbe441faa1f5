package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/pkg/pagination"
)

type SleepLogRepository interface {
	Upsert(ctx context.Context, log *domain.SleepLog) error
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepLog, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SleepLog, error)
}

type sleepLogRepository struct {
	db *gorm.DB
}

func NewSleepLogRepository(db *gorm.DB) SleepLogRepository {
	return &sleepLogRepository{db: db}
}

// Upsert inserts the night or replaces the existing entry for the same
// (user, date) pair. Re-logging a date is an overwrite, not a conflict.
func (r *sleepLogRepository) Upsert(ctx context.Context, log *domain.SleepLog) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"hours_slept", "time_in_bed", "time_to_fall_asleep",
				"bed_time", "wake_time", "sleep_efficiency",
				"woke_up_feeling", "woke_up_night", "woke_up_times",
				"quality_rating", "sleep_environment", "mental_state", "notes",
			}),
		}).
		Create(log).Error
}

func (r *sleepLogRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLog, error) {
	var log domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *sleepLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: rows strictly past the cursor position
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.SleepLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListRecent returns up to limit entries, newest date first.
func (r *sleepLogRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepLog, error) {
	var logs []domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// ListAll returns every entry, newest date first. Streak and trend math
// needs the whole history.
func (r *sleepLogRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SleepLog, error) {
	var logs []domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
