package models

import "time"

// TimetableSnapshot holds the metadata of the most recent timetable upload.
// It is a single well-known row (id 1) overwritten wholesale on each upload;
// Version counts how many uploads have happened.
type TimetableSnapshot struct {
	ID           int       `json:"-" db:"id"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at"`
	TotalClasses int       `json:"totalClasses" db:"total_classes"`
	FreeSlots    int       `json:"freeSlots" db:"free_slots"`
	Version      int       `json:"version" db:"version"`
}
