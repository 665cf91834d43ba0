package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func eventFixture(title, date string) *CalendarEvent {
	return &CalendarEvent{
		Type:     EventTypePractice,
		Title:    title,
		Date:     date,
		Time:     "17:00",
		Location: "Memorial Park Field 2",
	}
}

func TestUpcomingAndPastPartition(t *testing.T) {
	repo := NewEventRepository(NewMemoryStore())
	now, _ := time.Parse("2006-01-02", "2026-02-20")

	_, err := repo.Add(eventFixture("old practice", "2026-02-10"))
	assert.Nil(t, err)
	_, err = repo.Add(eventFixture("later practice", "2026-03-01"))
	assert.Nil(t, err)
	_, err = repo.Add(eventFixture("today practice", "2026-02-20"))
	assert.Nil(t, err)
	_, err = repo.Add(eventFixture("recent practice", "2026-02-18"))
	assert.Nil(t, err)

	upcoming, err := repo.GetUpcoming(now)
	assert.Nil(t, err)
	// Today counts as upcoming, soonest first.
	assert.Equal(t, []string{"today practice", "later practice"}, eventTitles(upcoming))

	past, err := repo.GetPast(now)
	assert.Nil(t, err)
	// Most recent first.
	assert.Equal(t, []string{"recent practice", "old practice"}, eventTitles(past))
}

func eventTitles(events []CalendarEvent) []string {
	titles := make([]string, 0, len(events))
	for _, event := range events {
		titles = append(titles, event.Title)
	}
	return titles
}

func TestUpdateEventMergesPartialFields(t *testing.T) {
	repo := NewEventRepository(NewMemoryStore())
	created, err := repo.Add(eventFixture("match day", "2026-03-01"))
	assert.Nil(t, err)

	result := GameResultWin
	goalsFor := 2
	goalsAgainst := 1
	completed := true
	updated, err := repo.Update(created.Id, &CalendarEventUpdate{
		Result:       &result,
		GoalsFor:     &goalsFor,
		GoalsAgainst: &goalsAgainst,
		IsCompleted:  &completed,
	})
	assert.Nil(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, GameResultWin, updated.Result)
	assert.Equal(t, 2, *updated.GoalsFor)
	assert.Equal(t, 1, *updated.GoalsAgainst)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "match day", updated.Title)

	missing, err := repo.Update("nope", &CalendarEventUpdate{Result: &result})
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestDeleteEvent(t *testing.T) {
	repo := NewEventRepository(NewMemoryStore())
	created, err := repo.Add(eventFixture("practice", "2026-02-10"))
	assert.Nil(t, err)
	assert.Nil(t, repo.Delete(created.Id))

	events, err := repo.FindAll()
	assert.Nil(t, err)
	assert.Len(t, events, 0)
}
