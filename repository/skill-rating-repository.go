package repository

import (
	"sort"
	"time"

	"pitchside/utils"

	"github.com/google/uuid"
)

type SkillKey string

const (
	SkillBallControl SkillKey = "ballControl"
	SkillDribbling   SkillKey = "dribbling"
	SkillPassing     SkillKey = "passing"
	SkillShooting    SkillKey = "shooting"
	SkillDefending   SkillKey = "defending"
	SkillPositioning SkillKey = "positioning"
	SkillTeamwork    SkillKey = "teamwork"
	SkillEffort      SkillKey = "effort"
)

// SkillKeys is the fixed assessment order used by the chart builders.
var SkillKeys = []SkillKey{
	SkillBallControl,
	SkillDribbling,
	SkillPassing,
	SkillShooting,
	SkillDefending,
	SkillPositioning,
	SkillTeamwork,
	SkillEffort,
}

var SkillLabels = map[SkillKey]string{
	SkillBallControl: "Ball Control",
	SkillDribbling:   "Dribbling",
	SkillPassing:     "Passing",
	SkillShooting:    "Shooting",
	SkillDefending:   "Defending",
	SkillPositioning: "Positioning",
	SkillTeamwork:    "Teamwork",
	SkillEffort:      "Effort & Attitude",
}

// SkillRating is immutable once created except by deletion. Each of the 8
// skills is rated 1-5.
type SkillRating struct {
	Id           string           `json:"id"`
	PlayerId     string           `json:"playerId"`
	AssessedBy   string           `json:"assessedBy"`
	AssessedAt   time.Time        `json:"assessedAt"`
	SessionLabel string           `json:"sessionLabel"`
	Ratings      map[SkillKey]int `json:"ratings"`
	CoachNotes   string           `json:"coachNotes"`
}

type SkillRatingRepository struct {
	store Store
}

func NewSkillRatingRepository(store Store) *SkillRatingRepository {
	return &SkillRatingRepository{store: store}
}

func (r *SkillRatingRepository) FindAll() ([]SkillRating, error) {
	return loadCollection[SkillRating](r.store, KeyRatings)
}

func (r *SkillRatingRepository) Add(rating *SkillRating) (*SkillRating, error) {
	ratings, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	rating.Id = uuid.NewString()
	ratings = append(ratings, *rating)
	if err := saveCollection(r.store, KeyRatings, ratings); err != nil {
		return nil, err
	}
	return rating, nil
}

func (r *SkillRatingRepository) Delete(ratingId string) error {
	ratings, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := utils.Filter(ratings, func(rating SkillRating) bool {
		return rating.Id != ratingId
	})
	return saveCollection(r.store, KeyRatings, kept)
}

// GetRatingsForPlayer returns a player's ratings oldest first.
func (r *SkillRatingRepository) GetRatingsForPlayer(playerId string) ([]SkillRating, error) {
	ratings, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	forPlayer := utils.Filter(ratings, func(rating SkillRating) bool {
		return rating.PlayerId == playerId
	})
	sort.Slice(forPlayer, func(i, j int) bool {
		return forPlayer[i].AssessedAt.Before(forPlayer[j].AssessedAt)
	})
	return forPlayer, nil
}

func (r *SkillRatingRepository) DeleteForPlayer(playerId string) error {
	ratings, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := utils.Filter(ratings, func(rating SkillRating) bool {
		return rating.PlayerId != playerId
	})
	return saveCollection(r.store, KeyRatings, kept)
}
