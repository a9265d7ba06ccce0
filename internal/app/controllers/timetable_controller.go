package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selin/studyhub/internal/app/services"
	"github.com/selin/studyhub/internal/middleware"
	"github.com/selin/studyhub/internal/pkg/apperrors"
)

// maxUploadBytes caps timetable/assignment images at 10 MiB
const maxUploadBytes = 10 << 20

// TimetableController handles image uploads and the timetable snapshot
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
	}
}

// UploadTimetable analyzes a timetable image
// @Summary Upload a timetable image
// @Description Extracts class slots from the image, persists them and overwrites the timetable snapshot. Falls back to placeholder entries when the analysis fails.
// @Tags timetable
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Timetable image"
// @Success 201 {object} dto.TimetableUploadResponse "Extracted schedule persisted"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/upload [post]
func (c *TimetableController) UploadTimetable(ctx *gin.Context) {
	image, mimeType, err := readUploadedImage(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.timetableService.AnalyzeTimetable(ctx, image, mimeType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// UploadAssignment analyzes an assignment image
// @Summary Upload an assignment image
// @Description Extracts a single assignment from the image and persists it. Falls back to a placeholder assignment when the analysis fails.
// @Tags timetable
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Assignment image"
// @Success 201 {object} dto.AssignmentUploadResponse "Extracted assignment persisted"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/upload-assignment [post]
func (c *TimetableController) UploadAssignment(ctx *gin.Context) {
	image, mimeType, err := readUploadedImage(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.timetableService.AnalyzeAssignment(ctx, image, mimeType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// GetTimetable returns the latest timetable snapshot
// @Summary Get timetable snapshot
// @Description Retrieves the metadata of the most recent timetable upload, or null before the first upload
// @Tags timetable
// @Produce json
// @Success 200 {object} models.TimetableSnapshot "Snapshot retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable [get]
func (c *TimetableController) GetTimetable(ctx *gin.Context) {
	snapshot, err := c.timetableService.Snapshot(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, snapshot)
}

func readUploadedImage(ctx *gin.Context) ([]byte, string, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, "", apperrors.NewBadRequestError("A 'file' form field with an image is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return nil, "", apperrors.NewBadRequestError("Uploaded file is too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", apperrors.NewBadRequestError("Uploaded file could not be read")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return nil, "", apperrors.NewBadRequestError("Uploaded file could not be read")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	return image, mimeType, nil
}
