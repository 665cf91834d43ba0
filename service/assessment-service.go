package service

import (
	"context"
	"time"

	"pitchside/app_error"
	"pitchside/assessment"
	"pitchside/client"
	"pitchside/metrics"
	"pitchside/repository"
)

// AssessmentClient is the remote collaborator; satisfied by
// client.AnthropicClient and stubbed in tests.
type AssessmentClient interface {
	GenerateAssessment(ctx context.Context, data assessment.GuidedAssessment, playerName, position, ageGroup string) (*repository.AssessmentResult, error)
}

type AssessmentService struct {
	assessmentRepository *repository.AssessmentRepository
	playerRepository     *repository.PlayerRepository
	settingsRepository   *repository.SettingsRepository
	newClient            func(apiKey string) AssessmentClient
}

func NewAssessmentService(store repository.Store) *AssessmentService {
	return &AssessmentService{
		assessmentRepository: repository.NewAssessmentRepository(store),
		playerRepository:     repository.NewPlayerRepository(store),
		settingsRepository:   repository.NewSettingsRepository(store),
		newClient: func(apiKey string) AssessmentClient {
			return client.NewAnthropicClient(apiKey)
		},
	}
}

// Generate runs one four-corner assessment for a player and persists it.
// Without a configured API key the deterministic scorer answers; with one, a
// failed remote call is a hard error, never a silent fallback.
func (e *AssessmentService) Generate(ctx context.Context, playerId, assessedBy string, data assessment.GuidedAssessment) (*repository.AIAssessment, error) {
	player, err := e.playerRepository.GetPlayerById(playerId)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, app_error.New(404, "player %s not found", playerId)
	}
	playerName := player.FirstName + " " + player.LastName
	ageGroup := assessment.AgeGroup(player.DateOfBirth, time.Now())

	apiKey, err := e.settingsRepository.GetAPIKey()
	if err != nil {
		return nil, err
	}

	var result repository.AssessmentResult
	if apiKey == "" {
		result = assessment.GenerateDemoResult(data, playerName, string(player.Position), ageGroup)
		metrics.AssessmentsGeneratedCounter.WithLabelValues("demo").Inc()
	} else {
		remote, err := e.newClient(apiKey).GenerateAssessment(ctx, data, playerName, string(player.Position), ageGroup)
		if err != nil {
			return nil, err
		}
		result = *remote
		metrics.AssessmentsGeneratedCounter.WithLabelValues("remote").Inc()
	}

	record := &repository.AIAssessment{
		PlayerId:         playerId,
		AssessedAt:       time.Now(),
		AssessedBy:       assessedBy,
		AssessmentResult: result,
	}
	return e.assessmentRepository.Add(record)
}

func (e *AssessmentService) GetAssessmentsForPlayer(playerId string) ([]repository.AIAssessment, error) {
	return e.assessmentRepository.GetForPlayer(playerId)
}

func (e *AssessmentService) GetLatestForPlayer(playerId string) (*repository.AIAssessment, error) {
	return e.assessmentRepository.GetLatestForPlayer(playerId)
}

func (e *AssessmentService) DeleteAssessment(assessmentId string) error {
	return e.assessmentRepository.Delete(assessmentId)
}
