package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rsweeney/sleepaid/internal/domain"
)

type ProfileRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Save(ctx context.Context, userID uuid.UUID, profile *domain.UserProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Get loads and normalizes the profile document. Legacy shapes are
// migrated on read only; the stored row is untouched until the next Save.
func (r *profileRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	var record domain.ProfileRecord
	err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return domain.ParseProfileDocument(record.Doc)
}

// Save writes the full three-section document, replacing whatever shape
// was stored before.
func (r *profileRepository) Save(ctx context.Context, userID uuid.UUID, profile *domain.UserProfile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	record := domain.ProfileRecord{UserID: userID, Doc: doc}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
		}).
		Create(&record).Error
}
