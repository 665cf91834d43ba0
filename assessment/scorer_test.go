package assessment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func checkedItems(corner Corner, count int) AreaData {
	return AreaData{Checked: GuideItems[corner][:count]}
}

func TestAreaScoreThresholds(t *testing.T) {
	// catalog size 6: 5 checked -> ratio 0.833 -> 5; 3 -> 0.5 -> 3; 0 -> 1
	tests := []struct {
		checked int
		score   int
	}{
		{6, 5},
		{5, 5},
		{4, 4},
		{3, 3},
		{2, 2},
		{1, 1},
		{0, 1},
	}
	for _, test := range tests {
		area := checkedItems(CornerTechnical, test.checked)
		assert.Equal(t, test.score, areaScore(area, 6), "checked=%d", test.checked)
	}
}

func TestGenerateDemoResultScoresAndLabels(t *testing.T) {
	data := GuidedAssessment{
		Technical:     checkedItems(CornerTechnical, 5),
		Tactical:      checkedItems(CornerTactical, 3),
		Physical:      checkedItems(CornerPhysical, 2),
		Psychological: AreaData{},
	}
	result := GenerateDemoResult(data, "Emma Patel", "Midfielder", "U11")

	assert.Equal(t, 5, result.Technical.Score)
	assert.Equal(t, "Technically Strong", result.Technical.Label)
	assert.Equal(t, 3, result.Tactical.Score)
	assert.Equal(t, "Situationally Aware", result.Tactical.Label)
	assert.Equal(t, 2, result.Physical.Score)
	assert.Equal(t, "Developing Athleticism", result.Physical.Label)
	assert.Equal(t, 1, result.Psychological.Score)
	assert.Equal(t, "Needs Encouragement", result.Psychological.Label)
	assert.True(t, result.IsDemo)
}

func TestGenerateDemoResultStrengthsFallbacks(t *testing.T) {
	result := GenerateDemoResult(GuidedAssessment{}, "Liam", "Goalkeeper", "U11")
	assert.Equal(t, []string{
		"Shows willingness to engage with the ball",
		"Tries to follow team structure",
		"Demonstrates commitment to attending and participating",
	}, result.Strengths)

	data := GuidedAssessment{Technical: checkedItems(CornerTechnical, 2)}
	result = GenerateDemoResult(data, "Liam", "Goalkeeper", "U11")
	assert.Equal(t, GuideItems[CornerTechnical][0], result.Strengths[0])
}

func TestGenerateDemoResultSummaryBranches(t *testing.T) {
	// all corners at 5 -> total 20 -> above-average
	full := GuidedAssessment{
		Technical:     checkedItems(CornerTechnical, 6),
		Tactical:      checkedItems(CornerTactical, 6),
		Physical:      checkedItems(CornerPhysical, 6),
		Psychological: checkedItems(CornerPsychological, 6),
	}
	result := GenerateDemoResult(full, "Aiden", "Forward", "U11")
	assert.Contains(t, result.Summary, "above-average")

	// all corners at 3 -> total 12 -> solid
	mid := GuidedAssessment{
		Technical:     checkedItems(CornerTechnical, 3),
		Tactical:      checkedItems(CornerTactical, 3),
		Physical:      checkedItems(CornerPhysical, 3),
		Psychological: checkedItems(CornerPsychological, 3),
	}
	result = GenerateDemoResult(mid, "Aiden", "Forward", "U11")
	assert.Contains(t, result.Summary, "solid")

	// nothing checked -> total 4 -> early-stage, with the demo disclaimer
	result = GenerateDemoResult(GuidedAssessment{}, "Aiden", "Forward", "U11")
	assert.Contains(t, result.Summary, "early-stage")
	assert.Contains(t, result.Summary, "DEMO assessment")
}

func TestGenerateDemoResultObservationMentionsNotes(t *testing.T) {
	data := GuidedAssessment{
		Technical: AreaData{
			Checked: GuideItems[CornerTechnical][:1],
			Notes:   "left foot improving",
		},
	}
	result := GenerateDemoResult(data, "Sofia", "Forward", "U11")
	assert.Contains(t, result.Technical.Observation, "Sofia")
	assert.Contains(t, result.Technical.Observation, GuideItems[CornerTechnical][0])
	assert.Contains(t, result.Technical.Observation, "left foot improving")
	assert.Contains(t, result.Tactical.Observation, "Nothing specifically noted.")
}

func TestGenerateDemoResultDrillsFixedCatalog(t *testing.T) {
	result := GenerateDemoResult(GuidedAssessment{}, "Noah", "Defender", "U11")
	assert.Len(t, result.Drills, 3)
	assert.Equal(t, "Rondo (4v2)", result.Drills[0].Name)
}

func TestScoreLabelUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", ScoreLabel(CornerTechnical, 0))
	assert.Equal(t, "Unknown", ScoreLabel(Corner("other"), 3))
}

func TestAgeGroup(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "U11", AgeGroup("2016-03-15", now))
	assert.Equal(t, "U13", AgeGroup("2015-07-22", now))
	assert.Equal(t, "U7", AgeGroup("2021-01-01", now))
	assert.Equal(t, "U17+", AgeGroup("2005-01-01", now))
	assert.Equal(t, "U17+", AgeGroup("not-a-date", now))
}

func TestBuildPromptEmbedsObservations(t *testing.T) {
	data := GuidedAssessment{
		Technical: AreaData{
			Checked: GuideItems[CornerTechnical][:2],
			Notes:   "strong right foot",
		},
	}
	prompt := BuildPrompt(data, "Emma Patel", "Midfielder", "U11")
	assert.Contains(t, prompt, "Emma Patel (Position: Midfielder, Age Group: U11)")
	assert.Contains(t, prompt, strings.Join(GuideItems[CornerTechnical][:2], " | "))
	assert.Contains(t, prompt, "strong right foot")
	assert.Contains(t, prompt, "No specific behaviours were ticked for this area.")
}
