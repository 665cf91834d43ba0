package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsDefaults(t *testing.T) {
	repo := NewSettingsRepository(NewMemoryStore())
	settings, err := repo.Get()
	assert.Nil(t, err)
	assert.Equal(t, DefaultSettings, *settings)
}

func TestSettingsUpdatePersists(t *testing.T) {
	repo := NewSettingsRepository(NewMemoryStore())
	teamName := "Rockets FC"
	passcode := "9876"
	updated, err := repo.Update(&TeamSettingsUpdate{TeamName: &teamName, CoachPasscode: &passcode})
	assert.Nil(t, err)
	assert.Equal(t, "Rockets FC", updated.TeamName)
	assert.Equal(t, "9876", updated.CoachPasscode)
	assert.Equal(t, DefaultSettings.Season, updated.Season)

	reread, err := repo.Get()
	assert.Nil(t, err)
	assert.Equal(t, *updated, *reread)
}

func TestAPIKeyRoundTrip(t *testing.T) {
	repo := NewSettingsRepository(NewMemoryStore())
	key, err := repo.GetAPIKey()
	assert.Nil(t, err)
	assert.Equal(t, "", key)

	assert.Nil(t, repo.SetAPIKey("sk-ant-test"))
	key, err = repo.GetAPIKey()
	assert.Nil(t, err)
	assert.Equal(t, "sk-ant-test", key)

	assert.Nil(t, repo.SetAPIKey(""))
	key, err = repo.GetAPIKey()
	assert.Nil(t, err)
	assert.Equal(t, "", key)
}
