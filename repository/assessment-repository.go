package repository

import (
	"sort"
	"time"

	"pitchside/utils"

	"github.com/google/uuid"
)

type CornerRating struct {
	Score       int    `json:"score"`
	Label       string `json:"label"`
	Observation string `json:"observation"`
}

type DrillRecommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AssessmentResult is the four-corner shape produced by both the
// deterministic scorer and the remote service. IsDemo marks results from the
// local fallback.
type AssessmentResult struct {
	Technical      CornerRating          `json:"technical"`
	Tactical       CornerRating          `json:"tactical"`
	Physical       CornerRating          `json:"physical"`
	Psychological  CornerRating          `json:"psychological"`
	Strengths      []string              `json:"strengths"`
	AreasToImprove []string              `json:"areasToImprove"`
	Drills         []DrillRecommendation `json:"drills"`
	Summary        string                `json:"summary"`
	IsDemo         bool                  `json:"isDemo"`
}

type AIAssessment struct {
	Id         string    `json:"id"`
	PlayerId   string    `json:"playerId"`
	AssessedAt time.Time `json:"assessedAt"`
	AssessedBy string    `json:"assessedBy"`
	AssessmentResult
}

type AssessmentRepository struct {
	store Store
}

func NewAssessmentRepository(store Store) *AssessmentRepository {
	return &AssessmentRepository{store: store}
}

func (r *AssessmentRepository) FindAll() ([]AIAssessment, error) {
	return loadCollection[AIAssessment](r.store, KeyAssessments)
}

func (r *AssessmentRepository) Add(assessment *AIAssessment) (*AIAssessment, error) {
	assessments, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	assessment.Id = uuid.NewString()
	assessments = append(assessments, *assessment)
	if err := saveCollection(r.store, KeyAssessments, assessments); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (r *AssessmentRepository) Delete(assessmentId string) error {
	assessments, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := utils.Filter(assessments, func(assessment AIAssessment) bool {
		return assessment.Id != assessmentId
	})
	return saveCollection(r.store, KeyAssessments, kept)
}

// GetForPlayer returns a player's assessments newest first.
func (r *AssessmentRepository) GetForPlayer(playerId string) ([]AIAssessment, error) {
	assessments, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	forPlayer := utils.Filter(assessments, func(assessment AIAssessment) bool {
		return assessment.PlayerId == playerId
	})
	sort.Slice(forPlayer, func(i, j int) bool {
		return forPlayer[i].AssessedAt.After(forPlayer[j].AssessedAt)
	})
	return forPlayer, nil
}

func (r *AssessmentRepository) GetLatestForPlayer(playerId string) (*AIAssessment, error) {
	assessments, err := r.GetForPlayer(playerId)
	if err != nil {
		return nil, err
	}
	if len(assessments) == 0 {
		return nil, nil
	}
	return &assessments[0], nil
}

func (r *AssessmentRepository) DeleteForPlayer(playerId string) error {
	assessments, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := utils.Filter(assessments, func(assessment AIAssessment) bool {
		return assessment.PlayerId != playerId
	})
	return saveCollection(r.store, KeyAssessments, kept)
}
