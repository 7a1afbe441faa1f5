package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rsweeney/sleepaid/internal/domain"
)

// UsageRecord tracks coaching messages consumed per user per month.
type UsageRecord struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Month    string    `gorm:"type:varchar(7);primaryKey"`
	Messages int       `gorm:"not null;default:0"`

	User domain.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UsageRecord) TableName() string {
	return "user_usage"
}

type UsageRepository interface {
	MessagesUsed(ctx context.Context, userID uuid.UUID, month string) (int, error)
	Increment(ctx context.Context, userID uuid.UUID, month string) error
}

type usageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) MessagesUsed(ctx context.Context, userID uuid.UUID, month string) (int, error) {
	var record UsageRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return record.Messages, nil
}

// Increment bumps the month's counter in one statement so concurrent
// suggestions never lose an update.
func (r *usageRepository) Increment(ctx context.Context, userID uuid.UUID, month string) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO user_usage (user_id, month, messages) VALUES (?, ?, 1)
		 ON CONFLICT (user_id, month) DO UPDATE SET messages = user_usage.messages + 1`,
		userID, month,
	).Error
}
