package dto

// CreateScheduleEventRequest represents data for creating a schedule event.
// DayOfWeek is a pointer so 0 (Sunday) survives the required check.
type CreateScheduleEventRequest struct {
	CourseName string   `json:"courseName" binding:"required"`
	DayOfWeek  *FlexInt `json:"dayOfWeek" binding:"required,min=0,max=6"`
	StartTime  string   `json:"startTime" binding:"required,hhmm"`
	EndTime    string   `json:"endTime" binding:"required,hhmm"`
	Location   *string  `json:"location"`
	Color      string   `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateScheduleEventRequest carries a partial field set for PATCH
type UpdateScheduleEventRequest struct {
	CourseName *string  `json:"courseName" binding:"omitempty,min=1"`
	DayOfWeek  *FlexInt `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	StartTime  *string  `json:"startTime" binding:"omitempty,hhmm"`
	EndTime    *string  `json:"endTime" binding:"omitempty,hhmm"`
	Location   *string  `json:"location"`
	Color      *string  `json:"color" binding:"omitempty,hexcolor"`
}
