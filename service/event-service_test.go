package service

import (
	"testing"

	"pitchside/repository"

	"github.com/stretchr/testify/assert"
)

func TestDeleteEventCascadesAttendance(t *testing.T) {
	store := seededStore(t)
	service := NewEventService(store)

	assert.Nil(t, service.DeleteEvent("e1"))

	event, err := service.GetEventById("e1")
	assert.Nil(t, err)
	assert.Nil(t, event)

	records, err := repository.NewAttendanceRepository(store).GetForEvent("e1")
	assert.Nil(t, err)
	assert.Len(t, records, 0)

	// Other events keep their records.
	records, err = repository.NewAttendanceRepository(store).GetForEvent("e2")
	assert.Nil(t, err)
	assert.Len(t, records, 6)
}
