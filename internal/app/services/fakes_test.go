package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/pkg/apperrors"
	"github.com/selin/studyhub/internal/pkg/genai"
)

// In-memory stores standing in for the pgx repositories. They preserve
// insertion order; ordering guarantees of the SQL layer are not re-tested
// here.

type fakeAssignmentStore struct {
	items []*models.Assignment
}

func (f *fakeAssignmentStore) Create(_ context.Context, a *models.Assignment) (*models.Assignment, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeAssignmentStore) GetByID(_ context.Context, id string) (*models.Assignment, error) {
	for _, a := range f.items {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeAssignmentStore) List(_ context.Context) ([]*models.Assignment, error) {
	return f.items, nil
}

func (f *fakeAssignmentStore) Update(_ context.Context, updated *models.Assignment) error {
	for i, a := range f.items {
		if a.ID == updated.ID {
			f.items[i] = updated
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (f *fakeAssignmentStore) Delete(_ context.Context, id string) error {
	for i, a := range f.items {
		if a.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

type fakeScheduleStore struct {
	items []*models.ScheduleEvent
}

func (f *fakeScheduleStore) Create(_ context.Context, e *models.ScheduleEvent) (*models.ScheduleEvent, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	f.items = append(f.items, e)
	return e, nil
}

func (f *fakeScheduleStore) GetByID(_ context.Context, id string) (*models.ScheduleEvent, error) {
	for _, e := range f.items {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeScheduleStore) List(_ context.Context) ([]*models.ScheduleEvent, error) {
	return f.items, nil
}

func (f *fakeScheduleStore) Update(_ context.Context, updated *models.ScheduleEvent) error {
	for i, e := range f.items {
		if e.ID == updated.ID {
			f.items[i] = updated
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (f *fakeScheduleStore) Delete(_ context.Context, id string) error {
	for i, e := range f.items {
		if e.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

type fakeStudySessionStore struct {
	items []*models.StudySession
}

func (f *fakeStudySessionStore) Create(_ context.Context, s *models.StudySession) (*models.StudySession, error) {
	s.ID = uuid.NewString()
	f.items = append(f.items, s)
	return s, nil
}

func (f *fakeStudySessionStore) List(_ context.Context) ([]*models.StudySession, error) {
	return f.items, nil
}

type fakeChatStore struct {
	items []*models.ChatMessage
	clock time.Time
}

func (f *fakeChatStore) Create(_ context.Context, m *models.ChatMessage) (*models.ChatMessage, error) {
	if f.clock.IsZero() {
		f.clock = time.Now().UTC()
	}
	f.clock = f.clock.Add(time.Millisecond)
	m.ID = uuid.NewString()
	m.CreatedAt = f.clock
	f.items = append(f.items, m)
	return m, nil
}

func (f *fakeChatStore) List(_ context.Context) ([]*models.ChatMessage, error) {
	return f.items, nil
}

func (f *fakeChatStore) Clear(_ context.Context) error {
	f.items = nil
	return nil
}

type fakeTimetableStore struct {
	snapshot *models.TimetableSnapshot
}

func (f *fakeTimetableStore) Get(_ context.Context) (*models.TimetableSnapshot, error) {
	if f.snapshot == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return f.snapshot, nil
}

func (f *fakeTimetableStore) Save(_ context.Context, s *models.TimetableSnapshot) (*models.TimetableSnapshot, error) {
	s.ID = 1
	if f.snapshot != nil {
		s.Version = f.snapshot.Version + 1
	} else {
		s.Version = 1
	}
	f.snapshot = s
	return s, nil
}

// fakeTutor records the history it was handed and replies with a fixed
// string or error.
type fakeTutor struct {
	reply        string
	err          error
	systemPrompt string
	history      []genai.Message
}

func (f *fakeTutor) GenerateReply(_ context.Context, systemPrompt string, history []genai.Message) (string, error) {
	f.systemPrompt = systemPrompt
	f.history = history
	return f.reply, f.err
}

type fakeVision struct {
	raw         string
	err         error
	instruction string
	image       []byte
	mimeType    string
}

func (f *fakeVision) ExtractJSON(_ context.Context, instruction string, image []byte, mimeType string) (string, error) {
	f.instruction = instruction
	f.image = image
	f.mimeType = mimeType
	return f.raw, f.err
}
