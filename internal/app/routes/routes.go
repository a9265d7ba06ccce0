package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selin/studyhub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	assignmentController *controllers.AssignmentController,
	scheduleController *controllers.ScheduleController,
	studySessionController *controllers.StudySessionController,
	chatController *controllers.ChatController,
	timetableController *controllers.TimetableController,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	assignments := api.Group("/assignments")
	{
		assignments.GET("", assignmentController.ListAssignments)
		assignments.GET("/:id", assignmentController.GetAssignment)
		assignments.POST("", assignmentController.CreateAssignment)
		assignments.PATCH("/:id", assignmentController.UpdateAssignment)
		assignments.DELETE("/:id", assignmentController.DeleteAssignment)
	}

	schedule := api.Group("/schedule")
	{
		schedule.GET("", scheduleController.ListScheduleEvents)
		schedule.GET("/:id", scheduleController.GetScheduleEvent)
		schedule.POST("", scheduleController.CreateScheduleEvent)
		schedule.PATCH("/:id", scheduleController.UpdateScheduleEvent)
		schedule.DELETE("/:id", scheduleController.DeleteScheduleEvent)
	}

	studySessions := api.Group("/study-sessions")
	{
		studySessions.GET("", studySessionController.ListStudySessions)
		studySessions.POST("", studySessionController.CreateStudySession)
	}

	chat := api.Group("/chat")
	{
		chat.GET("", chatController.GetChatHistory)
		chat.POST("", chatController.SendChatMessage)
		chat.DELETE("", chatController.ClearChatHistory)
	}

	timetable := api.Group("/timetable")
	{
		timetable.GET("", timetableController.GetTimetable)
		timetable.POST("/upload", timetableController.UploadTimetable)
		timetable.POST("/upload-assignment", timetableController.UploadAssignment)
	}
}
