// Package services contains the business logic between controllers and
// repositories. Each service is exposed as an interface so controllers and
// tests can swap in fakes.
package services

import (
	"github.com/selin/studyhub/internal/app/repositories"
	"github.com/selin/studyhub/internal/pkg/genai"
)

// Services holds all service instances
type Services struct {
	AssignmentService   AssignmentService
	ScheduleService     ScheduleService
	StudySessionService StudySessionService
	ChatService         ChatService
	TimetableService    TimetableService
}

// NewServices creates all services wired to the given repositories and
// collaborator client
func NewServices(repos *repositories.Repositories, ai *genai.Client) *Services {
	return &Services{
		AssignmentService:   NewAssignmentService(repos.AssignmentRepository),
		ScheduleService:     NewScheduleService(repos.ScheduleRepository),
		StudySessionService: NewStudySessionService(repos.StudySessionRepository),
		ChatService:         NewChatService(repos.ChatRepository, ai),
		TimetableService: NewTimetableService(
			repos.TimetableRepository,
			repos.ScheduleRepository,
			repos.AssignmentRepository,
			ai,
		),
	}
}
