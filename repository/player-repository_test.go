package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddPlayerAssignsIdentity(t *testing.T) {
	repo := NewPlayerRepository(NewMemoryStore())
	created, err := repo.Add(&Player{
		FirstName:    "Mia",
		LastName:     "Chen",
		JerseyNumber: 8,
		Position:     PositionMidfielder,
		IsActive:     true,
	})
	assert.Nil(t, err)
	assert.NotEmpty(t, created.Id)
	assert.NotEmpty(t, created.JoinedDate)
	assert.Len(t, created.ParentAccessCode, 6)
	assert.Equal(t, "MC", created.ParentAccessCode[:2])

	players, err := repo.FindAll()
	assert.Nil(t, err)
	assert.Len(t, players, 1)
}

func TestAccessCodesAreUnique(t *testing.T) {
	repo := NewPlayerRepository(NewMemoryStore())
	codes := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created, err := repo.Add(&Player{FirstName: "Mia", LastName: "Chen", IsActive: true})
		assert.Nil(t, err)
		assert.False(t, codes[created.ParentAccessCode])
		codes[created.ParentAccessCode] = true
	}
}

func TestGetPlayerByAccessCode(t *testing.T) {
	store := NewMemoryStore()
	repo := NewPlayerRepository(store)
	active, err := repo.Add(&Player{FirstName: "Aiden", LastName: "Johnson", IsActive: true})
	assert.Nil(t, err)
	inactive, err := repo.Add(&Player{FirstName: "Ruby", LastName: "Vega", IsActive: false})
	assert.Nil(t, err)

	found, err := repo.GetPlayerByAccessCode(active.ParentAccessCode)
	assert.Nil(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, active.Id, found.Id)

	// Codes match regardless of case.
	lower, err := repo.GetPlayerByAccessCode(strings.ToLower(active.ParentAccessCode))
	assert.Nil(t, err)
	assert.NotNil(t, lower)
	assert.Equal(t, active.Id, lower.Id)

	// Inactive players are invisible to the parent surface.
	hidden, err := repo.GetPlayerByAccessCode(inactive.ParentAccessCode)
	assert.Nil(t, err)
	assert.Nil(t, hidden)

	missing, err := repo.GetPlayerByAccessCode("ZZ0000")
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestUpdatePlayerMergesPartialFields(t *testing.T) {
	repo := NewPlayerRepository(NewMemoryStore())
	created, err := repo.Add(&Player{FirstName: "Noah", LastName: "Kim", JerseyNumber: 4, IsActive: true})
	assert.Nil(t, err)

	newNumber := 14
	updated, err := repo.Update(created.Id, &PlayerUpdate{JerseyNumber: &newNumber})
	assert.Nil(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, 14, updated.JerseyNumber)
	assert.Equal(t, "Noah", updated.FirstName)
	assert.Equal(t, created.ParentAccessCode, updated.ParentAccessCode)

	missing, err := repo.Update("nope", &PlayerUpdate{JerseyNumber: &newNumber})
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestDeletePlayer(t *testing.T) {
	repo := NewPlayerRepository(NewMemoryStore())
	first, err := repo.Add(&Player{FirstName: "Noah", LastName: "Kim", IsActive: true})
	assert.Nil(t, err)
	_, err = repo.Add(&Player{FirstName: "Emma", LastName: "Patel", IsActive: true})
	assert.Nil(t, err)

	assert.Nil(t, repo.Delete(first.Id))
	players, err := repo.FindAll()
	assert.Nil(t, err)
	assert.Len(t, players, 1)
	assert.Equal(t, "Emma", players[0].FirstName)
}
