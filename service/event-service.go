package service

import (
	"time"

	"pitchside/repository"
)

type EventService struct {
	eventRepository      *repository.EventRepository
	attendanceRepository *repository.AttendanceRepository
}

func NewEventService(store repository.Store) *EventService {
	return &EventService{
		eventRepository:      repository.NewEventRepository(store),
		attendanceRepository: repository.NewAttendanceRepository(store),
	}
}

func (e *EventService) GetEvents() ([]repository.CalendarEvent, error) {
	return e.eventRepository.FindAll()
}

func (e *EventService) GetEventById(eventId string) (*repository.CalendarEvent, error) {
	return e.eventRepository.GetEventById(eventId)
}

func (e *EventService) AddEvent(event *repository.CalendarEvent) (*repository.CalendarEvent, error) {
	return e.eventRepository.Add(event)
}

func (e *EventService) UpdateEvent(eventId string, update *repository.CalendarEventUpdate) (*repository.CalendarEvent, error) {
	return e.eventRepository.Update(eventId, update)
}

// DeleteEvent also drops the event's attendance records.
func (e *EventService) DeleteEvent(eventId string) error {
	if err := e.attendanceRepository.DeleteForEvent(eventId); err != nil {
		return err
	}
	return e.eventRepository.Delete(eventId)
}

func (e *EventService) GetUpcoming() ([]repository.CalendarEvent, error) {
	return e.eventRepository.GetUpcoming(time.Now())
}

func (e *EventService) GetPast() ([]repository.CalendarEvent, error) {
	return e.eventRepository.GetPast(time.Now())
}
