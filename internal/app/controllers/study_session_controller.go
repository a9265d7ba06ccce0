package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selin/studyhub/internal/app/models/dto"
	"github.com/selin/studyhub/internal/app/services"
	"github.com/selin/studyhub/internal/middleware"
)

// StudySessionController handles the Pomodoro session log
type StudySessionController struct {
	studySessionService services.StudySessionService
}

// NewStudySessionController creates a new StudySessionController
func NewStudySessionController(studySessionService services.StudySessionService) *StudySessionController {
	return &StudySessionController{
		studySessionService: studySessionService,
	}
}

// ListStudySessions lists all logged study sessions
// @Summary List study sessions
// @Description Retrieves all logged sessions, most recently completed first
// @Tags study-sessions
// @Produce json
// @Success 200 {array} models.StudySession "Study sessions retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /study-sessions [get]
func (c *StudySessionController) ListStudySessions(ctx *gin.Context) {
	sessions, err := c.studySessionService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}

// CreateStudySession logs a completed study session
// @Summary Log a study session
// @Description Logs a completed Pomodoro interval; sessionType defaults to work
// @Tags study-sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateStudySessionRequest true "Session information"
// @Success 201 {object} models.StudySession "Study session logged successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid study session data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /study-sessions [post]
func (c *StudySessionController) CreateStudySession(ctx *gin.Context) {
	var req dto.CreateStudySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, "Invalid study session data")
		return
	}

	session, err := c.studySessionService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, session)
}
