package repository

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"pitchside/utils"

	"github.com/google/uuid"
)

type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
	PositionAny        Position = "Any"
)

type Player struct {
	Id               string   `json:"id"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	JerseyNumber     int      `json:"jerseyNumber"`
	DateOfBirth      string   `json:"dateOfBirth"`
	Position         Position `json:"position"`
	ParentName       string   `json:"parentName"`
	ParentEmail      string   `json:"parentEmail"`
	ParentPhone      string   `json:"parentPhone"`
	PhotoUrl         string   `json:"photoUrl,omitempty"`
	Notes            string   `json:"notes"`
	ParentAccessCode string   `json:"parentAccessCode"`
	IsActive         bool     `json:"isActive"`
	JoinedDate       string   `json:"joinedDate"`
}

// PlayerUpdate carries a partial update; nil fields are left untouched.
type PlayerUpdate struct {
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	JerseyNumber *int      `json:"jerseyNumber"`
	DateOfBirth  *string   `json:"dateOfBirth"`
	Position     *Position `json:"position"`
	ParentName   *string   `json:"parentName"`
	ParentEmail  *string   `json:"parentEmail"`
	ParentPhone  *string   `json:"parentPhone"`
	PhotoUrl     *string   `json:"photoUrl"`
	Notes        *string   `json:"notes"`
	IsActive     *bool     `json:"isActive"`
}

type PlayerRepository struct {
	store Store
}

func NewPlayerRepository(store Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) FindAll() ([]Player, error) {
	return loadCollection[Player](r.store, KeyPlayers)
}

func (r *PlayerRepository) GetPlayerById(playerId string) (*Player, error) {
	players, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].Id == playerId {
			return &players[i], nil
		}
	}
	return nil, nil
}

// GetPlayerByAccessCode matches codes case-insensitively and only returns
// active players.
func (r *PlayerRepository) GetPlayerByAccessCode(code string) (*Player, error) {
	players, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].IsActive && strings.EqualFold(players[i].ParentAccessCode, code) {
			return &players[i], nil
		}
	}
	return nil, nil
}

// Add assigns a fresh id, a unique parent access code and today's join date,
// then appends the player and rewrites the collection.
func (r *PlayerRepository) Add(player *Player) (*Player, error) {
	players, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	player.Id = uuid.NewString()
	player.ParentAccessCode = generateAccessCode(player.FirstName, player.LastName, players)
	player.JoinedDate = time.Now().Format("2006-01-02")
	players = append(players, *player)
	if err := saveCollection(r.store, KeyPlayers, players); err != nil {
		return nil, err
	}
	return player, nil
}

func (r *PlayerRepository) Update(playerId string, update *PlayerUpdate) (*Player, error) {
	players, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].Id != playerId {
			continue
		}
		applyPlayerUpdate(&players[i], update)
		if err := saveCollection(r.store, KeyPlayers, players); err != nil {
			return nil, err
		}
		return &players[i], nil
	}
	return nil, nil
}

func (r *PlayerRepository) Delete(playerId string) error {
	players, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := utils.Filter(players, func(player Player) bool {
		return player.Id != playerId
	})
	return saveCollection(r.store, KeyPlayers, kept)
}

func applyPlayerUpdate(player *Player, update *PlayerUpdate) {
	if update.FirstName != nil {
		player.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		player.LastName = *update.LastName
	}
	if update.JerseyNumber != nil {
		player.JerseyNumber = *update.JerseyNumber
	}
	if update.DateOfBirth != nil {
		player.DateOfBirth = *update.DateOfBirth
	}
	if update.Position != nil {
		player.Position = *update.Position
	}
	if update.ParentName != nil {
		player.ParentName = *update.ParentName
	}
	if update.ParentEmail != nil {
		player.ParentEmail = *update.ParentEmail
	}
	if update.ParentPhone != nil {
		player.ParentPhone = *update.ParentPhone
	}
	if update.PhotoUrl != nil {
		player.PhotoUrl = *update.PhotoUrl
	}
	if update.Notes != nil {
		player.Notes = *update.Notes
	}
	if update.IsActive != nil {
		player.IsActive = *update.IsActive
	}
}

// generateAccessCode builds codes like "LT4821": the player's initials plus
// four digits, retried until unique within the roster.
func generateAccessCode(firstName, lastName string, players []Player) string {
	initials := "XX"
	if firstName != "" && lastName != "" {
		initials = strings.ToUpper(firstName[:1] + lastName[:1])
	}
	taken := make(map[string]bool)
	for _, player := range players {
		taken[strings.ToUpper(player.ParentAccessCode)] = true
	}
	for {
		code := fmt.Sprintf("%s%04d", initials, rand.Intn(10000))
		if !taken[code] {
			return code
		}
	}
}
