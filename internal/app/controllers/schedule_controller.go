package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selin/studyhub/internal/app/models/dto"
	"github.com/selin/studyhub/internal/app/services"
	"github.com/selin/studyhub/internal/middleware"
)

// ScheduleController handles weekly schedule operations
type ScheduleController struct {
	scheduleService services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// ListScheduleEvents lists all schedule events
// @Summary List schedule events
// @Description Retrieves all weekly class slots ordered by day, then start time
// @Tags schedule
// @Produce json
// @Success 200 {array} models.ScheduleEvent "Schedule events retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [get]
func (c *ScheduleController) ListScheduleEvents(ctx *gin.Context) {
	events, err := c.scheduleService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// GetScheduleEvent retrieves a schedule event by ID
// @Summary Get schedule event details
// @Description Retrieves a single schedule event by its ID
// @Tags schedule
// @Produce json
// @Param id path string true "Schedule event ID"
// @Success 200 {object} models.ScheduleEvent "Schedule event retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Schedule event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/{id} [get]
func (c *ScheduleController) GetScheduleEvent(ctx *gin.Context) {
	event, err := c.scheduleService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// CreateScheduleEvent creates a new schedule event
// @Summary Create a schedule event
// @Description Creates a new weekly class slot; color defaults to #facc15
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleEventRequest true "Schedule event information"
// @Success 201 {object} models.ScheduleEvent "Schedule event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule event data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [post]
func (c *ScheduleController) CreateScheduleEvent(ctx *gin.Context) {
	var req dto.CreateScheduleEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, "Invalid schedule event data")
		return
	}

	event, err := c.scheduleService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// UpdateScheduleEvent partially updates a schedule event
// @Summary Update a schedule event
// @Description Merges the provided fields into an existing schedule event
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule event ID"
// @Param request body dto.UpdateScheduleEventRequest true "Fields to update"
// @Success 200 {object} models.ScheduleEvent "Schedule event updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule event data"
// @Failure 404 {object} dto.ErrorResponse "Schedule event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/{id} [patch]
func (c *ScheduleController) UpdateScheduleEvent(ctx *gin.Context) {
	var req dto.UpdateScheduleEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, "Invalid schedule event data")
		return
	}

	event, err := c.scheduleService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// DeleteScheduleEvent deletes a schedule event
// @Summary Delete a schedule event
// @Description Deletes a schedule event by its ID
// @Tags schedule
// @Param id path string true "Schedule event ID"
// @Success 204 "Schedule event deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Schedule event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/{id} [delete]
func (c *ScheduleController) DeleteScheduleEvent(ctx *gin.Context) {
	if err := c.scheduleService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
