package dto

import "github.com/selin/studyhub/internal/app/models"

// TimetableUploadResponse reports the outcome of a timetable image upload.
// Recognized is false when the analysis fell back to placeholder entries.
type TimetableUploadResponse struct {
	Events       []models.ScheduleEvent `json:"events"`
	TotalClasses int                    `json:"totalClasses"`
	FreeSlots    int                    `json:"freeSlots"`
	Recognized   bool                   `json:"recognized"`
}

// AssignmentUploadResponse reports the outcome of an assignment image upload
type AssignmentUploadResponse struct {
	Assignment *models.Assignment `json:"assignment"`
	Recognized bool               `json:"recognized"`
}
