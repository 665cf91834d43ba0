package controller

import (
	"pitchside/app_error"
	"pitchside/repository"
	"pitchside/service"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	eventService *service.EventService
}

func NewEventController(store repository.Store) *EventController {
	return &EventController{
		eventService: service.NewEventService(store),
	}
}

func setupEventController(store repository.Store) []RouteInfo {
	e := NewEventController(store)
	basePath := "/events"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true},
		{Method: "GET", Path: "/upcoming", HandlerFunc: e.getUpcomingHandler(), Authenticated: true},
		{Method: "GET", Path: "/past", HandlerFunc: e.getPastHandler(), Authenticated: true},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type EventCreate struct {
	Type         repository.EventType  `json:"type" binding:"required"`
	Title        string                `json:"title" binding:"required"`
	Date         string                `json:"date" binding:"required"`
	Time         string                `json:"time" binding:"required"`
	Location     string                `json:"location"`
	Opponent     string                `json:"opponent"`
	HomeOrAway   string                `json:"homeOrAway"`
	Result       repository.GameResult `json:"result"`
	GoalsFor     *int                  `json:"goalsFor"`
	GoalsAgainst *int                  `json:"goalsAgainst"`
	Notes        string                `json:"notes"`
	IsCompleted  bool                  `json:"isCompleted"`
}

func (e *EventCreate) toModel() *repository.CalendarEvent {
	return &repository.CalendarEvent{
		Type:         e.Type,
		Title:        e.Title,
		Date:         e.Date,
		Time:         e.Time,
		Location:     e.Location,
		Opponent:     e.Opponent,
		HomeOrAway:   e.HomeOrAway,
		Result:       e.Result,
		GoalsFor:     e.GoalsFor,
		GoalsAgainst: e.GoalsAgainst,
		Notes:        e.Notes,
		IsCompleted:  e.IsCompleted,
	}
}

func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetEvents()
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, events)
	}
}

func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var event EventCreate
		if err := c.BindJSON(&event); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		created, err := e.eventService.AddEvent(event.toModel())
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(201, created)
	}
}

func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := e.eventService.GetEventById(c.Param("event_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if event == nil {
			c.JSON(404, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(200, event)
	}
}

func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var update repository.CalendarEventUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.UpdateEvent(c.Param("event_id"), &update)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if event == nil {
			c.JSON(404, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(200, event)
	}
}

func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := e.eventService.DeleteEvent(c.Param("event_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.Status(204)
	}
}

func (e *EventController) getUpcomingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetUpcoming()
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, events)
	}
}

func (e *EventController) getPastHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetPast()
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, events)
	}
}
