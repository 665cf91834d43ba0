package controller

import (
	"pitchside/app_error"
	"pitchside/repository"
	"pitchside/service"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	attendanceService *service.AttendanceService
	eventService      *service.EventService
}

func NewAttendanceController(store repository.Store) *AttendanceController {
	return &AttendanceController{
		attendanceService: service.NewAttendanceService(store),
		eventService:      service.NewEventService(store),
	}
}

func setupAttendanceController(store repository.Store) []RouteInfo {
	e := NewAttendanceController(store)
	basePath := "/events/:event_id/attendance"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getAttendanceHandler(), Authenticated: true},
		{Method: "GET", Path: "/summary", HandlerFunc: e.getSummaryHandler(), Authenticated: true},
		{Method: "PUT", Path: "/:player_id", HandlerFunc: e.markAttendanceHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type AttendanceMark struct {
	Status repository.AttendanceStatus `json:"status" binding:"required,oneof=Present Absent Excused"`
	Notes  string                      `json:"notes"`
}

func (e *AttendanceController) getAttendanceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := e.attendanceService.GetAttendanceForEvent(c.Param("event_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, records)
	}
}

func (e *AttendanceController) getSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := e.attendanceService.SummarizeEvent(c.Param("event_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, summary)
	}
}

func (e *AttendanceController) markAttendanceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId := c.Param("event_id")
		event, err := e.eventService.GetEventById(eventId)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if event == nil {
			c.JSON(404, gin.H{"error": "Event not found"})
			return
		}
		var mark AttendanceMark
		if err := c.BindJSON(&mark); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		record, err := e.attendanceService.MarkAttendance(eventId, c.Param("player_id"), mark.Status, mark.Notes)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, record)
	}
}
