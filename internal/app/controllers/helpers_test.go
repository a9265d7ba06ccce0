package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/selin/studyhub/internal/app/controllers"
	"github.com/selin/studyhub/internal/app/models"
	"github.com/selin/studyhub/internal/app/routes"
	"github.com/selin/studyhub/internal/app/services"
	"github.com/selin/studyhub/internal/pkg/apperrors"
	"github.com/selin/studyhub/internal/pkg/genai"
	"github.com/selin/studyhub/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterRules(v); err != nil {
			panic(err)
		}
	}
}

// fixture wires real services over in-memory stores behind a full router
type fixture struct {
	router      *gin.Engine
	assignments *memAssignmentStore
	schedule    *memScheduleStore
	sessions    *memStudySessionStore
	chat        *memChatStore
	snapshots   *memTimetableStore
	tutor       *stubTutor
	vision      *stubVision
}

func newFixture() *fixture {
	f := &fixture{
		assignments: &memAssignmentStore{},
		schedule:    &memScheduleStore{},
		sessions:    &memStudySessionStore{},
		chat:        &memChatStore{},
		snapshots:   &memTimetableStore{},
		tutor:       &stubTutor{reply: "Sure, let me explain."},
		vision:      &stubVision{raw: `{"events":[{"courseName":"CS101","dayOfWeek":1,"startTime":"09:00","endTime":"10:00"}],"freeSlots":5}`},
	}

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAssignmentController(services.NewAssignmentService(f.assignments)),
		controllers.NewScheduleController(services.NewScheduleService(f.schedule)),
		controllers.NewStudySessionController(services.NewStudySessionService(f.sessions)),
		controllers.NewChatController(services.NewChatService(f.chat, f.tutor)),
		controllers.NewTimetableController(services.NewTimetableService(f.snapshots, f.schedule, f.assignments, f.vision)),
	)
	f.router = router
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) upload(t *testing.T, path string, field string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "upload.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// --- in-memory stores ---

type memAssignmentStore struct {
	items []*models.Assignment
}

func (m *memAssignmentStore) Create(_ context.Context, a *models.Assignment) (*models.Assignment, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	m.items = append(m.items, a)
	return a, nil
}

func (m *memAssignmentStore) GetByID(_ context.Context, id string) (*models.Assignment, error) {
	for _, a := range m.items {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *memAssignmentStore) List(_ context.Context) ([]*models.Assignment, error) {
	if m.items == nil {
		return []*models.Assignment{}, nil
	}
	return m.items, nil
}

func (m *memAssignmentStore) Update(_ context.Context, updated *models.Assignment) error {
	for i, a := range m.items {
		if a.ID == updated.ID {
			m.items[i] = updated
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (m *memAssignmentStore) Delete(_ context.Context, id string) error {
	for i, a := range m.items {
		if a.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

type memScheduleStore struct {
	items []*models.ScheduleEvent
}

func (m *memScheduleStore) Create(_ context.Context, e *models.ScheduleEvent) (*models.ScheduleEvent, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	m.items = append(m.items, e)
	return e, nil
}

func (m *memScheduleStore) GetByID(_ context.Context, id string) (*models.ScheduleEvent, error) {
	for _, e := range m.items {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *memScheduleStore) List(_ context.Context) ([]*models.ScheduleEvent, error) {
	if m.items == nil {
		return []*models.ScheduleEvent{}, nil
	}
	return m.items, nil
}

func (m *memScheduleStore) Update(_ context.Context, updated *models.ScheduleEvent) error {
	for i, e := range m.items {
		if e.ID == updated.ID {
			m.items[i] = updated
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (m *memScheduleStore) Delete(_ context.Context, id string) error {
	for i, e := range m.items {
		if e.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

type memStudySessionStore struct {
	items []*models.StudySession
}

func (m *memStudySessionStore) Create(_ context.Context, s *models.StudySession) (*models.StudySession, error) {
	s.ID = uuid.NewString()
	m.items = append(m.items, s)
	return s, nil
}

func (m *memStudySessionStore) List(_ context.Context) ([]*models.StudySession, error) {
	if m.items == nil {
		return []*models.StudySession{}, nil
	}
	return m.items, nil
}

type memChatStore struct {
	items []*models.ChatMessage
	clock time.Time
}

func (m *memChatStore) Create(_ context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	if m.clock.IsZero() {
		m.clock = time.Now().UTC()
	}
	m.clock = m.clock.Add(time.Millisecond)
	msg.ID = uuid.NewString()
	msg.CreatedAt = m.clock
	m.items = append(m.items, msg)
	return msg, nil
}

func (m *memChatStore) List(_ context.Context) ([]*models.ChatMessage, error) {
	if m.items == nil {
		return []*models.ChatMessage{}, nil
	}
	return m.items, nil
}

func (m *memChatStore) Clear(_ context.Context) error {
	m.items = nil
	return nil
}

type memTimetableStore struct {
	snapshot *models.TimetableSnapshot
}

func (m *memTimetableStore) Get(_ context.Context) (*models.TimetableSnapshot, error) {
	if m.snapshot == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return m.snapshot, nil
}

func (m *memTimetableStore) Save(_ context.Context, s *models.TimetableSnapshot) (*models.TimetableSnapshot, error) {
	s.ID = 1
	if m.snapshot != nil {
		s.Version = m.snapshot.Version + 1
	} else {
		s.Version = 1
	}
	m.snapshot = s
	return s, nil
}

// --- stub collaborators ---

type stubTutor struct {
	reply string
	err   error
}

func (s *stubTutor) GenerateReply(_ context.Context, _ string, _ []genai.Message) (string, error) {
	return s.reply, s.err
}

type stubVision struct {
	raw string
	err error
}

func (s *stubVision) ExtractJSON(_ context.Context, _ string, _ []byte, _ string) (string, error) {
	return s.raw, s.err
}
