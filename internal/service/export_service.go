package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/repository"
	"github.com/rsweeney/sleepaid/internal/score"
)

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportService renders a user's full sleep history as a downloadable file.
type ExportService interface {
	// Export returns the file bytes, its content type, and a filename.
	Export(ctx context.Context, userID uuid.UUID, format string) ([]byte, string, string, error)
}

type exportService struct {
	sleepLogRepo repository.SleepLogRepository
	profileRepo  repository.ProfileRepository
	userRepo     repository.UserRepository
}

func NewExportService(
	sleepLogRepo repository.SleepLogRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
) ExportService {
	return &exportService{
		sleepLogRepo: sleepLogRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
	}
}

func (s *exportService) Export(ctx context.Context, userID uuid.UUID, format string) ([]byte, string, string, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, "", "", err
	}
	if !exists {
		return nil, "", "", domain.ErrNotFound
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, "", "", domain.ErrOnboardingIncomplete
		}
		return nil, "", "", err
	}

	logs, err := s.sleepLogRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, "", "", err
	}

	switch format {
	case "", ExportFormatCSV:
		data, err := renderCSV(logs, profile)
		return data, "text/csv", "sleep-history.csv", err
	case ExportFormatPDF:
		data, err := renderPDF(logs, profile)
		return data, "application/pdf", "sleep-report.pdf", err
	default:
		return nil, "", "", domain.ErrInvalidInput
	}
}

func renderCSV(logs []domain.SleepLog, profile *domain.UserProfile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"date", "hours_slept", "time_in_bed", "time_to_fall_asleep",
		"bed_time", "wake_time", "sleep_efficiency", "woke_up_times",
		"quality_rating", "woke_up_feeling", "sleep_environment",
		"mental_state", "score", "notes",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range logs {
		log := &logs[i]
		row := []string{
			log.Date,
			strconv.FormatFloat(log.HoursSlept, 'f', -1, 64),
			strconv.FormatFloat(log.TimeInBed, 'f', -1, 64),
			strconv.Itoa(log.TimeToFallAsleep),
			log.BedTime,
			log.WakeTime,
			strconv.FormatFloat(log.SleepEfficiency, 'f', 2, 64),
			strconv.Itoa(log.WokeUpTimes),
			strconv.Itoa(log.QualityRating),
			strings.Join(log.WokeUpFeeling, "|"),
			strings.Join(log.SleepEnvironment, "|"),
			strings.Join(log.MentalState, "|"),
			strconv.Itoa(score.Score(log, profile, 0)),
			log.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func renderPDF(logs []domain.SleepLog, profile *domain.UserProfile) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	title := "Sleep Report"
	if profile.PersonalInfo.FirstName != "" {
		title = fmt.Sprintf("Sleep Report for %s", profile.PersonalInfo.FirstName)
	}
	pdf.Cell(40, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Goal: %s", profile.GoalLabel()))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Nights logged: %d", len(logs)))
	pdf.Ln(10)

	totalScore := 0
	for i := range logs {
		totalScore += score.Score(&logs[i], profile, 0)
	}
	if len(logs) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Average score: %d", totalScore/len(logs)))
		pdf.Ln(10)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Night by night")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for i := range logs {
		log := &logs[i]
		line := fmt.Sprintf("%s  %.1fh slept, bed %s wake %s, score %d",
			log.Date, log.HoursSlept, log.BedTime, log.WakeTime,
			score.Score(log, profile, 0))
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
		if log.Notes != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 6, "  "+log.Notes, "", "", false)
			pdf.SetFont("Arial", "", 11)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
