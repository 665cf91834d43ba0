package repository

import (
	"sort"
	"time"

	"pitchside/utils"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeGame       EventType = "Game"
	EventTypePractice   EventType = "Practice"
	EventTypeTournament EventType = "Tournament"
)

type GameResult string

const (
	GameResultWin      GameResult = "Win"
	GameResultLoss     GameResult = "Loss"
	GameResultDraw     GameResult = "Draw"
	GameResultUpcoming GameResult = "Upcoming"
)

// CalendarEvent dates are "2006-01-02" strings; the upcoming/past partition
// is computed against the current date, never stored. Result and goal fields
// are only meaningful for games and tournaments.
type CalendarEvent struct {
	Id           string     `json:"id"`
	Type         EventType  `json:"type"`
	Title        string     `json:"title"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Location     string     `json:"location"`
	Opponent     string     `json:"opponent,omitempty"`
	HomeOrAway   string     `json:"homeOrAway,omitempty"`
	Result       GameResult `json:"result,omitempty"`
	GoalsFor     *int       `json:"goalsFor,omitempty"`
	GoalsAgainst *int       `json:"goalsAgainst,omitempty"`
	Notes        string     `json:"notes"`
	IsCompleted  bool       `json:"isCompleted"`
}

type CalendarEventUpdate struct {
	Type         *EventType  `json:"type"`
	Title        *string     `json:"title"`
	Date         *string     `json:"date"`
	Time         *string     `json:"time"`
	Location     *string     `json:"location"`
	Opponent     *string     `json:"opponent"`
	HomeOrAway   *string     `json:"homeOrAway"`
	Result       *GameResult `json:"result"`
	GoalsFor     *int        `json:"goalsFor"`
	GoalsAgainst *int        `json:"goalsAgainst"`
	Notes        *string     `json:"notes"`
	IsCompleted  *bool       `json:"isCompleted"`
}

type EventRepository struct {
	store Store
}

func NewEventRepository(store Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) FindAll() ([]CalendarEvent, error) {
	return loadCollection[CalendarEvent](r.store, KeyEvents)
}

func (r *EventRepository) GetEventById(eventId string) (*CalendarEvent, error) {
	events, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].Id == eventId {
			return &events[i], nil
		}
	}
	return nil, nil
}

func (r *EventRepository) Add(event *CalendarEvent) (*CalendarEvent, error) {
	events, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	event.Id = uuid.NewString()
	events = append(events, *event)
	if err := saveCollection(r.store, KeyEvents, events); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) Update(eventId string, update *CalendarEventUpdate) (*CalendarEvent, error) {
	events, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].Id != eventId {
			continue
		}
		applyEventUpdate(&events[i], update)
		if err := saveCollection(r.store, KeyEvents, events); err != nil {
			return nil, err
		}
		return &events[i], nil
	}
	return nil, nil
}

func (r *EventRepository) Delete(eventId string) error {
	events, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := utils.Filter(events, func(event CalendarEvent) bool {
		return event.Id != eventId
	})
	return saveCollection(r.store, KeyEvents, kept)
}

// GetUpcoming returns events on or after today, soonest first.
func (r *EventRepository) GetUpcoming(now time.Time) ([]CalendarEvent, error) {
	events, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	today := now.Format("2006-01-02")
	upcoming := utils.Filter(events, func(event CalendarEvent) bool {
		return event.Date >= today
	})
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})
	return upcoming, nil
}

// GetPast returns events before today, most recent first.
func (r *EventRepository) GetPast(now time.Time) ([]CalendarEvent, error) {
	events, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	today := now.Format("2006-01-02")
	past := utils.Filter(events, func(event CalendarEvent) bool {
		return event.Date < today
	})
	sort.Slice(past, func(i, j int) bool {
		return past[i].Date > past[j].Date
	})
	return past, nil
}

func applyEventUpdate(event *CalendarEvent, update *CalendarEventUpdate) {
	if update.Type != nil {
		event.Type = *update.Type
	}
	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.Date != nil {
		event.Date = *update.Date
	}
	if update.Time != nil {
		event.Time = *update.Time
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.Opponent != nil {
		event.Opponent = *update.Opponent
	}
	if update.HomeOrAway != nil {
		event.HomeOrAway = *update.HomeOrAway
	}
	if update.Result != nil {
		event.Result = *update.Result
	}
	if update.GoalsFor != nil {
		event.GoalsFor = update.GoalsFor
	}
	if update.GoalsAgainst != nil {
		event.GoalsAgainst = update.GoalsAgainst
	}
	if update.Notes != nil {
		event.Notes = *update.Notes
	}
	if update.IsCompleted != nil {
		event.IsCompleted = *update.IsCompleted
	}
}
