package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selin/studyhub/internal/app/models/dto"
	"github.com/selin/studyhub/internal/app/services"
	"github.com/selin/studyhub/internal/middleware"
)

// AssignmentController handles assignment-related operations
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// ListAssignments lists all assignments
// @Summary List assignments
// @Description Retrieves all assignments, incomplete first, nearest due date first
// @Tags assignments
// @Produce json
// @Success 200 {array} models.Assignment "Assignments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assignments)
}

// GetAssignment retrieves an assignment by ID
// @Summary Get assignment details
// @Description Retrieves a single assignment by its ID
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} models.Assignment "Assignment retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	assignment, err := c.assignmentService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assignment)
}

// CreateAssignment creates a new assignment
// @Summary Create an assignment
// @Description Creates a new assignment; priority defaults to medium and completed to false
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Assignment information"
// @Success 201 {object} models.Assignment "Assignment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, "Invalid assignment data")
		return
	}

	assignment, err := c.assignmentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, assignment)
}

// UpdateAssignment partially updates an assignment
// @Summary Update an assignment
// @Description Merges the provided fields into an existing assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Fields to update"
// @Success 200 {object} models.Assignment "Assignment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment data"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [patch]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, "Invalid assignment data")
		return
	}

	assignment, err := c.assignmentService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assignment)
}

// DeleteAssignment deletes an assignment
// @Summary Delete an assignment
// @Description Deletes an assignment by its ID
// @Tags assignments
// @Param id path string true "Assignment ID"
// @Success 204 "Assignment deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	if err := c.assignmentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
