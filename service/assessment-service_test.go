package service

import (
	"context"
	"fmt"
	"testing"

	"pitchside/app_error"
	"pitchside/assessment"
	"pitchside/repository"

	"github.com/stretchr/testify/assert"
)

type stubClient struct {
	result    *repository.AssessmentResult
	err       error
	gotName   string
	gotAPIKey string
}

func (s *stubClient) GenerateAssessment(ctx context.Context, data assessment.GuidedAssessment, playerName, position, ageGroup string) (*repository.AssessmentResult, error) {
	s.gotName = playerName
	return s.result, s.err
}

func guidedFixture() assessment.GuidedAssessment {
	return assessment.GuidedAssessment{
		Technical: assessment.AreaData{Checked: assessment.GuideItems[assessment.CornerTechnical][:4]},
		Tactical:  assessment.AreaData{Checked: assessment.GuideItems[assessment.CornerTactical][:2]},
		Physical:  assessment.AreaData{Checked: assessment.GuideItems[assessment.CornerPhysical][:3]},
		Psychological: assessment.AreaData{
			Checked: assessment.GuideItems[assessment.CornerPsychological][:5],
			Notes:   "great attitude all session",
		},
	}
}

func TestGenerateWithoutKeyUsesScorer(t *testing.T) {
	store := seededStore(t)
	service := NewAssessmentService(store)
	service.newClient = func(apiKey string) AssessmentClient {
		t.Fatal("no remote call expected without an API key")
		return nil
	}

	created, err := service.Generate(context.Background(), "p1", "Coach", guidedFixture())
	assert.Nil(t, err)
	assert.True(t, created.IsDemo)
	assert.Equal(t, "p1", created.PlayerId)
	assert.Equal(t, "Coach", created.AssessedBy)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, 4, created.Technical.Score)

	persisted, err := service.GetLatestForPlayer("p1")
	assert.Nil(t, err)
	assert.Equal(t, created.Id, persisted.Id)
}

func TestGenerateWithKeyUsesRemote(t *testing.T) {
	store := seededStore(t)
	assert.Nil(t, repository.NewSettingsRepository(store).SetAPIKey("sk-ant-test"))

	stub := &stubClient{result: &repository.AssessmentResult{
		Technical:      repository.CornerRating{Score: 4, Label: "Proficient", Observation: "Clean first touch."},
		Tactical:       repository.CornerRating{Score: 3, Label: "Situationally Aware", Observation: "Finds space."},
		Physical:       repository.CornerRating{Score: 3, Label: "Age-Appropriate", Observation: "Good engine."},
		Psychological:  repository.CornerRating{Score: 5, Label: "Elite Mentality", Observation: "Bounces back."},
		Strengths:      []string{"First touch"},
		AreasToImprove: []string{"Weak foot"},
		Summary:        "Promising all-rounder.",
	}}
	service := NewAssessmentService(store)
	service.newClient = func(apiKey string) AssessmentClient {
		stub.gotAPIKey = apiKey
		return stub
	}

	created, err := service.Generate(context.Background(), "p1", "Coach", guidedFixture())
	assert.Nil(t, err)
	assert.False(t, created.IsDemo)
	assert.Equal(t, "sk-ant-test", stub.gotAPIKey)
	assert.Equal(t, "Liam Torres", stub.gotName)
	assert.Equal(t, "Promising all-rounder.", created.Summary)
}

func TestGenerateRemoteFailureIsHardError(t *testing.T) {
	store := seededStore(t)
	assert.Nil(t, repository.NewSettingsRepository(store).SetAPIKey("sk-ant-test"))

	service := NewAssessmentService(store)
	service.newClient = func(apiKey string) AssessmentClient {
		return &stubClient{err: fmt.Errorf("API error 429: overloaded")}
	}

	// With a key configured there is no fallback to the scorer.
	created, err := service.Generate(context.Background(), "p1", "Coach", guidedFixture())
	assert.NotNil(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "API error 429")

	assessments, err := service.GetAssessmentsForPlayer("p1")
	assert.Nil(t, err)
	assert.Len(t, assessments, 0)
}

func TestGenerateUnknownPlayer(t *testing.T) {
	service := NewAssessmentService(seededStore(t))
	created, err := service.Generate(context.Background(), "nope", "Coach", guidedFixture())
	assert.NotNil(t, err)
	assert.Nil(t, created)
	assert.Equal(t, 404, app_error.Status(err, 500))
}
