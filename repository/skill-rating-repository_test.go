package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRatingsForPlayerSortedOldestFirst(t *testing.T) {
	repo := NewSkillRatingRepository(NewMemoryStore())
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Add(&SkillRating{PlayerId: "p1", AssessedAt: base.AddDate(0, 0, 14), SessionLabel: "later"})
	assert.Nil(t, err)
	_, err = repo.Add(&SkillRating{PlayerId: "p1", AssessedAt: base, SessionLabel: "earlier"})
	assert.Nil(t, err)
	_, err = repo.Add(&SkillRating{PlayerId: "p2", AssessedAt: base, SessionLabel: "other player"})
	assert.Nil(t, err)

	ratings, err := repo.GetRatingsForPlayer("p1")
	assert.Nil(t, err)
	assert.Len(t, ratings, 2)
	assert.Equal(t, "earlier", ratings[0].SessionLabel)
	assert.Equal(t, "later", ratings[1].SessionLabel)
}

func TestDeleteRatingsForPlayer(t *testing.T) {
	repo := NewSkillRatingRepository(NewMemoryStore())
	_, err := repo.Add(&SkillRating{PlayerId: "p1", AssessedAt: time.Now()})
	assert.Nil(t, err)
	_, err = repo.Add(&SkillRating{PlayerId: "p2", AssessedAt: time.Now()})
	assert.Nil(t, err)

	assert.Nil(t, repo.DeleteForPlayer("p1"))
	ratings, err := repo.FindAll()
	assert.Nil(t, err)
	assert.Len(t, ratings, 1)
	assert.Equal(t, "p2", ratings[0].PlayerId)
}

func TestAssessmentsForPlayerNewestFirst(t *testing.T) {
	repo := NewAssessmentRepository(NewMemoryStore())
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Add(&AIAssessment{PlayerId: "p1", AssessedAt: base, AssessedBy: "Coach"})
	assert.Nil(t, err)
	newest, err := repo.Add(&AIAssessment{PlayerId: "p1", AssessedAt: base.AddDate(0, 0, 7), AssessedBy: "Coach"})
	assert.Nil(t, err)

	assessments, err := repo.GetForPlayer("p1")
	assert.Nil(t, err)
	assert.Len(t, assessments, 2)
	assert.Equal(t, newest.Id, assessments[0].Id)

	latest, err := repo.GetLatestForPlayer("p1")
	assert.Nil(t, err)
	assert.Equal(t, newest.Id, latest.Id)

	missing, err := repo.GetLatestForPlayer("p3")
	assert.Nil(t, err)
	assert.Nil(t, missing)
}
