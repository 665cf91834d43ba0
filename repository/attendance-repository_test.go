package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkAttendanceUpserts(t *testing.T) {
	repo := NewAttendanceRepository(NewMemoryStore())

	first, err := repo.Mark("e1", "p1", AttendancePresent, "")
	assert.Nil(t, err)
	assert.NotEmpty(t, first.Id)

	// Marking the same pair again replaces the record instead of appending.
	second, err := repo.Mark("e1", "p1", AttendanceAbsent, "sick")
	assert.Nil(t, err)
	assert.Equal(t, first.Id, second.Id)

	records, err := repo.FindAll()
	assert.Nil(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, AttendanceAbsent, records[0].Status)
	assert.Equal(t, "sick", records[0].Notes)

	// A different pair is a new record.
	_, err = repo.Mark("e1", "p2", AttendancePresent, "")
	assert.Nil(t, err)
	records, err = repo.FindAll()
	assert.Nil(t, err)
	assert.Len(t, records, 2)
}

func TestGetStatus(t *testing.T) {
	repo := NewAttendanceRepository(NewMemoryStore())
	_, err := repo.Mark("e1", "p1", AttendanceExcused, "family trip")
	assert.Nil(t, err)

	record, err := repo.GetStatus("e1", "p1")
	assert.Nil(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, AttendanceExcused, record.Status)

	missing, err := repo.GetStatus("e1", "p2")
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestAttendanceFilters(t *testing.T) {
	repo := NewAttendanceRepository(NewMemoryStore())
	_, err := repo.Mark("e1", "p1", AttendancePresent, "")
	assert.Nil(t, err)
	_, err = repo.Mark("e1", "p2", AttendancePresent, "")
	assert.Nil(t, err)
	_, err = repo.Mark("e2", "p1", AttendanceAbsent, "")
	assert.Nil(t, err)

	forEvent, err := repo.GetForEvent("e1")
	assert.Nil(t, err)
	assert.Len(t, forEvent, 2)

	forPlayer, err := repo.GetForPlayer("p1")
	assert.Nil(t, err)
	assert.Len(t, forPlayer, 2)
}

func TestDeleteAttendanceForEventAndPlayer(t *testing.T) {
	repo := NewAttendanceRepository(NewMemoryStore())
	_, err := repo.Mark("e1", "p1", AttendancePresent, "")
	assert.Nil(t, err)
	_, err = repo.Mark("e2", "p1", AttendancePresent, "")
	assert.Nil(t, err)
	_, err = repo.Mark("e2", "p2", AttendancePresent, "")
	assert.Nil(t, err)

	assert.Nil(t, repo.DeleteForEvent("e2"))
	records, err := repo.FindAll()
	assert.Nil(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "e1", records[0].EventId)

	assert.Nil(t, repo.DeleteForPlayer("p1"))
	records, err = repo.FindAll()
	assert.Nil(t, err)
	assert.Len(t, records, 0)
}
