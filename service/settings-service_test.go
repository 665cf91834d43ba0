package service

import (
	"testing"

	"pitchside/repository"

	"github.com/stretchr/testify/assert"
)

func TestCheckPasscode(t *testing.T) {
	store := repository.NewMemoryStore()
	service := NewSettingsService(store)

	ok, err := service.CheckPasscode("1234")
	assert.Nil(t, err)
	assert.True(t, ok)

	ok, err = service.CheckPasscode("0000")
	assert.Nil(t, err)
	assert.False(t, ok)

	// An empty PIN never matches, even if the stored passcode were empty.
	ok, err = service.CheckPasscode("")
	assert.Nil(t, err)
	assert.False(t, ok)

	passcode := "9876"
	_, err = service.UpdateSettings(&repository.TeamSettingsUpdate{CoachPasscode: &passcode})
	assert.Nil(t, err)
	ok, err = service.CheckPasscode("9876")
	assert.Nil(t, err)
	assert.True(t, ok)
	ok, err = service.CheckPasscode("1234")
	assert.Nil(t, err)
	assert.False(t, ok)
}

func TestHasAPIKey(t *testing.T) {
	service := NewSettingsService(repository.NewMemoryStore())

	hasKey, err := service.HasAPIKey()
	assert.Nil(t, err)
	assert.False(t, hasKey)

	assert.Nil(t, service.SetAPIKey("sk-ant-test"))
	hasKey, err = service.HasAPIKey()
	assert.Nil(t, err)
	assert.True(t, hasKey)

	assert.Nil(t, service.SetAPIKey(""))
	hasKey, err = service.HasAPIKey()
	assert.Nil(t, err)
	assert.False(t, hasKey)
}
