package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/app/models/dto"
	"github.com/selin/studyhub/internal/pkg/apperrors"
	"github.com/selin/studyhub/internal/pkg/logger"
	"github.com/selin/studyhub/internal/pkg/validation"
)

const timetableInstruction = `Analyze this image of a class timetable and extract every class slot you can read.
Respond with a JSON object of this exact shape:
{"events":[{"courseName":"...","dayOfWeek":0,"startTime":"HH:MM","endTime":"HH:MM","location":"..."}],"freeSlots":0}
dayOfWeek is 0 for Sunday through 6 for Saturday. Times are 24-hour "HH:MM".
Omit location when it is not visible. freeSlots is your estimate of open
weekday daytime slots left in the week.`

const assignmentInstruction = `Analyze this image of an assignment sheet, syllabus or handout and extract the assignment it describes.
Respond with a JSON object of this exact shape:
{"title":"...","course":"...","description":"...","dueDate":"2025-01-31T23:59:00Z","priority":"medium"}
dueDate is RFC 3339. priority is one of "low", "medium", "high". Omit
description when nothing useful is visible.`

type extractedEvent struct {
	CourseName string  `json:"courseName"`
	DayOfWeek  int     `json:"dayOfWeek"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Location   *string `json:"location"`
	Color      string  `json:"color"`
}

type extractedTimetable struct {
	Events    []extractedEvent `json:"events"`
	FreeSlots int              `json:"freeSlots"`
}

type extractedAssignment struct {
	Title       string    `json:"title"`
	Course      string    `json:"course"`
	Description *string   `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
}

// TimetableStore defines the snapshot persistence operations.
// *repositories.TimetableRepository satisfies it.
type TimetableStore interface {
	Get(ctx context.Context) (*models.TimetableSnapshot, error)
	Save(ctx context.Context, snapshot *models.TimetableSnapshot) (*models.TimetableSnapshot, error)
}

// VisionCollaborator extracts structured JSON from an image.
// *genai.Client satisfies it.
type VisionCollaborator interface {
	ExtractJSON(ctx context.Context, instruction string, image []byte, mimeType string) (string, error)
}

// TimetableService defines the image-driven inference operations
type TimetableService interface {
	AnalyzeTimetable(ctx context.Context, image []byte, mimeType string) (*dto.TimetableUploadResponse, error)
	AnalyzeAssignment(ctx context.Context, image []byte, mimeType string) (*dto.AssignmentUploadResponse, error)
	Snapshot(ctx context.Context) (*models.TimetableSnapshot, error)
}

type timetableService struct {
	snapshots   TimetableStore
	schedule    ScheduleStore
	assignments AssignmentStore
	vision      VisionCollaborator
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(snapshots TimetableStore, schedule ScheduleStore, assignments AssignmentStore, vision VisionCollaborator) TimetableService {
	return &timetableService{
		snapshots:   snapshots,
		schedule:    schedule,
		assignments: assignments,
		vision:      vision,
	}
}

// AnalyzeTimetable hands the image to the vision model, persists the
// extracted class slots and overwrites the snapshot row. A failed or
// unparsable analysis degrades to two placeholder entries instead of an
// error; the response's Recognized flag tells the two outcomes apart.
func (s *timetableService) AnalyzeTimetable(ctx context.Context, image []byte, mimeType string) (*dto.TimetableUploadResponse, error) {
	extracted, recognized := s.extractTimetable(ctx, image, mimeType)

	events := make([]models.ScheduleEvent, 0, len(extracted.Events))
	for _, e := range extracted.Events {
		event := &models.ScheduleEvent{
			CourseName: e.CourseName,
			DayOfWeek:  e.DayOfWeek,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			Location:   e.Location,
			Color:      e.Color,
		}
		if event.Color == "" {
			event.Color = models.DefaultColor
		}

		created, err := s.schedule.Create(ctx, event)
		if err != nil {
			return nil, err
		}
		events = append(events, *created)
	}

	snapshot := &models.TimetableSnapshot{
		UploadedAt:   time.Now().UTC(),
		TotalClasses: len(events),
		FreeSlots:    extracted.FreeSlots,
	}
	if _, err := s.snapshots.Save(ctx, snapshot); err != nil {
		return nil, err
	}

	return &dto.TimetableUploadResponse{
		Events:       events,
		TotalClasses: len(events),
		FreeSlots:    extracted.FreeSlots,
		Recognized:   recognized,
	}, nil
}

func (s *timetableService) extractTimetable(ctx context.Context, image []byte, mimeType string) (extractedTimetable, bool) {
	raw, err := s.vision.ExtractJSON(ctx, timetableInstruction, image, mimeType)
	if err != nil {
		logger.Warn().Err(err).Msg("Timetable analysis failed, substituting placeholder schedule")
		return placeholderTimetable(), false
	}

	var extracted extractedTimetable
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		logger.Warn().Err(err).Msg("Timetable analysis returned unparsable JSON, substituting placeholder schedule")
		return placeholderTimetable(), false
	}
	if len(extracted.Events) == 0 {
		logger.Warn().Msg("Timetable analysis found no class slots, substituting placeholder schedule")
		return placeholderTimetable(), false
	}
	for _, e := range extracted.Events {
		if e.CourseName == "" || e.DayOfWeek < 0 || e.DayOfWeek > 6 ||
			!validation.IsClockTime(e.StartTime) || !validation.IsClockTime(e.EndTime) {
			logger.Warn().Msg("Timetable analysis returned malformed class slots, substituting placeholder schedule")
			return placeholderTimetable(), false
		}
	}
	if extracted.FreeSlots < 0 {
		extracted.FreeSlots = 0
	}

	return extracted, true
}

func placeholderTimetable() extractedTimetable {
	return extractedTimetable{
		Events: []extractedEvent{
			{CourseName: "Introduction to Computer Science", DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30"},
			{CourseName: "Calculus I", DayOfWeek: 3, StartTime: "11:00", EndTime: "12:30"},
		},
	}
}

// AnalyzeAssignment is the single-record counterpart of AnalyzeTimetable:
// extract one assignment from the image, falling back to a placeholder due
// in one week when the analysis fails.
func (s *timetableService) AnalyzeAssignment(ctx context.Context, image []byte, mimeType string) (*dto.AssignmentUploadResponse, error) {
	extracted, recognized := s.extractAssignment(ctx, image, mimeType)

	assignment := &models.Assignment{
		Title:       extracted.Title,
		Course:      extracted.Course,
		Description: extracted.Description,
		DueDate:     extracted.DueDate,
		Priority:    models.PriorityMedium,
	}
	switch models.Priority(extracted.Priority) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		assignment.Priority = models.Priority(extracted.Priority)
	}

	created, err := s.assignments.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}

	return &dto.AssignmentUploadResponse{Assignment: created, Recognized: recognized}, nil
}

func (s *timetableService) extractAssignment(ctx context.Context, image []byte, mimeType string) (extractedAssignment, bool) {
	raw, err := s.vision.ExtractJSON(ctx, assignmentInstruction, image, mimeType)
	if err != nil {
		logger.Warn().Err(err).Msg("Assignment analysis failed, substituting placeholder assignment")
		return placeholderAssignment(), false
	}

	var extracted extractedAssignment
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		logger.Warn().Err(err).Msg("Assignment analysis returned unparsable JSON, substituting placeholder assignment")
		return placeholderAssignment(), false
	}
	if strings.TrimSpace(extracted.Title) == "" || extracted.DueDate.IsZero() {
		logger.Warn().Msg("Assignment analysis returned an incomplete record, substituting placeholder assignment")
		return placeholderAssignment(), false
	}
	if extracted.Course == "" {
		extracted.Course = "General"
	}

	return extracted, true
}

func placeholderAssignment() extractedAssignment {
	return extractedAssignment{
		Title:    "Assignment from Upload",
		Course:   "General",
		DueDate:  time.Now().UTC().AddDate(0, 0, 7),
		Priority: string(models.PriorityMedium),
	}
}

// Snapshot returns the latest upload metadata, or nil before the first upload
func (s *timetableService) Snapshot(ctx context.Context) (*models.TimetableSnapshot, error) {
	snapshot, err := s.snapshots.Get(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return snapshot, nil
}
