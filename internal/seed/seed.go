package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/repository"
)

const seededDays = 40

// Run seeds the database with sample users, profiles, and sleep logs.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.ProfileRecord{}, &domain.SleepLog{}, &repository.UsageRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	password, err := bcrypt.GenerateFromPassword([]byte("sleepwell123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := []seedUser{
		{
			user:      domain.User{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Email: "ava@example.com", PasswordHash: string(password)},
			firstName: "Ava", age: 29, timezone: "Europe/Amsterdam",
			struggle: "Falling asleep", goal: "Fall asleep faster", durationGoal: "7-8 hours",
		},
		{
			user:      domain.User{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Email: "noah@example.com", PasswordHash: string(password)},
			firstName: "Noah", age: 41, timezone: "America/New_York",
			struggle: "Waking at night", goal: "Sleep through the night", durationGoal: "8+ hours",
		},
		{
			user:      domain.User{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Email: "mei@example.com", PasswordHash: string(password)},
			firstName: "Mei", age: 34, timezone: "Asia/Tokyo",
			struggle: "Irregular schedule", goal: "Keep a steady schedule", durationGoal: "6-7 hours",
		},
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, su := range users {
		if err := db.Where("id = ?", su.user.ID).FirstOrCreate(&su.user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", su.user.ID, err)
		}
		if err := seedProfile(db, su); err != nil {
			return err
		}
		if err := seedSleepLogsForUser(db, su, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

type seedUser struct {
	user         domain.User
	firstName    string
	age          int
	timezone     string
	struggle     string
	goal         string
	durationGoal string
}

func seedProfile(db *gorm.DB, su seedUser) error {
	now := time.Now().UTC().Format(time.RFC3339)
	profile := domain.UserProfile{
		PersonalInfo: domain.PersonalInfo{
			FirstName: su.firstName,
			Age:       su.age,
			Timezone:  su.timezone,
		},
		SleepPatterns: domain.SleepPatterns{
			Struggle:          su.struggle,
			Goal:              su.goal,
			SleepDurationGoal: su.durationGoal,
			TimeToFallAsleep:  20,
			UsualBedtime:      "23:00",
			UsualWakeTime:     "07:00",
		},
		LifestyleSupport: domain.LifestyleSupport{
			Workout:     "Yes",
			WorkoutFreq: 3,
			Caffeine:    "Yes",
			PhoneUse:    "Yes",
		},
		OnboardingComplete: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal seed profile: %w", err)
	}

	record := domain.ProfileRecord{UserID: su.user.ID, Doc: doc}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create profile for %s: %w", su.user.ID, err)
	}
	return nil
}

var seedFeelings = []string{
	domain.FeelingRefreshed, domain.FeelingOkay, domain.FeelingMeh,
	domain.FeelingEnergized, domain.FeelingExhausted,
}

var seedEnvironments = [][]string{
	{"Dark", "Quiet", "Cool"},
	{"Dark", "Quiet"},
	{"Noisy"},
	{"Dark", "Quiet", "Cool", "Comfortable bed", "No screens"},
}

var seedMentalStates = []string{domain.MentalRelaxed, domain.MentalNeutral, domain.MentalStressed}

func seedSleepLogsForUser(db *gorm.DB, su seedUser, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		// Leave occasional gaps so streaks and trends have something to show.
		if rng.Float32() < 0.15 {
			continue
		}

		date := now.AddDate(0, 0, -i).Format(domain.DateLayout)
		bedHour := 22 + rng.Intn(2)
		bedMinute := rng.Intn(60)
		hoursSlept := 5.5 + rng.Float64()*3.5
		timeInBed := hoursSlept + 0.25 + rng.Float64()*0.75
		wakeMinutes := bedHour*60 + bedMinute + int(timeInBed*60)
		bedTime := fmt.Sprintf("%02d:%02d", bedHour, bedMinute)
		wakeTime := fmt.Sprintf("%02d:%02d", (wakeMinutes/60)%24, wakeMinutes%60)

		efficiency, err := domain.ComputeEfficiency(hoursSlept, bedTime, wakeTime)
		if err != nil {
			return fmt.Errorf("failed to derive efficiency: %w", err)
		}

		wakeups := rng.Intn(4)
		entry := domain.SleepLog{
			UserID:           su.user.ID,
			Date:             date,
			HoursSlept:       hoursSlept,
			TimeInBed:        timeInBed,
			TimeToFallAsleep: 5 + rng.Intn(40),
			BedTime:          bedTime,
			WakeTime:         wakeTime,
			SleepEfficiency:  efficiency,
			WokeUpFeeling:    domain.TagList{seedFeelings[rng.Intn(len(seedFeelings))]},
			WokeUpNight:      wakeups > 0,
			WokeUpTimes:      domain.CollapseWakeups(wakeups),
			QualityRating:    4 + rng.Intn(7),
			SleepEnvironment: domain.TagList(seedEnvironments[rng.Intn(len(seedEnvironments))]),
			MentalState:      domain.TagList{seedMentalStates[rng.Intn(len(seedMentalStates))]},
		}

		if err := db.Where("user_id = ? AND date = ?", su.user.ID, date).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create sleep log for %s on %s: %w", su.user.ID, date, err)
		}
	}
	return nil
}
