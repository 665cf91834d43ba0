package assessment

import (
	"fmt"
	"strings"

	"pitchside/repository"
)

// areaScore maps the checked/catalog ratio to a 1-5 score. Thresholds are
// inclusive lower bounds; an empty checklist scores 1, never 0.
func areaScore(area AreaData, catalogSize int) int {
	ratio := float64(len(area.Checked)) / float64(catalogSize)
	switch {
	case ratio >= 0.8:
		return 5
	case ratio >= 0.6:
		return 4
	case ratio >= 0.4:
		return 3
	case ratio >= 0.2:
		return 2
	default:
		return 1
	}
}

func checkedPhrase(area AreaData) string {
	if len(area.Checked) > 0 {
		return fmt.Sprintf("Observed: %s.", strings.Join(area.Checked, ", "))
	}
	return "Nothing specifically noted."
}

func notesPhrase(area AreaData) string {
	if area.Notes != "" {
		return fmt.Sprintf(" Coach notes: %q.", area.Notes)
	}
	return ""
}

func pick(condition bool, ifTrue, ifFalse string) string {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// GenerateDemoResult converts a guided checklist into the four-corner result
// shape without touching the network. Purely computational; the result is
// flagged as a demo fallback.
func GenerateDemoResult(data GuidedAssessment, playerName, position, ageGroup string) repository.AssessmentResult {
	t := areaScore(data.Technical, len(GuideItems[CornerTechnical]))
	ta := areaScore(data.Tactical, len(GuideItems[CornerTactical]))
	ph := areaScore(data.Physical, len(GuideItems[CornerPhysical]))
	ps := areaScore(data.Psychological, len(GuideItems[CornerPsychological]))
	total := t + ta + ph + ps

	strengths := []string{
		"Shows willingness to engage with the ball",
		"Tries to follow team structure",
		"Demonstrates commitment to attending and participating",
	}
	if len(data.Technical.Checked) > 0 {
		strengths[0] = data.Technical.Checked[0]
	}
	if len(data.Tactical.Checked) > 0 {
		strengths[1] = data.Tactical.Checked[0]
	}
	if len(data.Psychological.Checked) > 0 {
		strengths[2] = data.Psychological.Checked[0]
	}

	return repository.AssessmentResult{
		Technical: repository.CornerRating{
			Score: t,
			Label: ScoreLabel(CornerTechnical, t),
			Observation: fmt.Sprintf("%s demonstrated %s technical ability for a %s %s. %s%s %s",
				playerName, pick(t >= 3, "solid", "developing"), ageGroup, position,
				checkedPhrase(data.Technical), notesPhrase(data.Technical),
				pick(t >= 4, "Continue building complexity.", "Repetition drills will build consistency.")),
		},
		Tactical: repository.CornerRating{
			Score: ta,
			Label: ScoreLabel(CornerTactical, ta),
			Observation: fmt.Sprintf("Game understanding appears %s for the age group. %s%s %s",
				pick(ta >= 3, "on track", "still emerging"),
				checkedPhrase(data.Tactical), notesPhrase(data.Tactical),
				pick(ta >= 4, "Introduce more complex positional concepts.", "Small-sided games will accelerate game reading.")),
		},
		Physical: repository.CornerRating{
			Score: ph,
			Label: ScoreLabel(CornerPhysical, ph),
			Observation: fmt.Sprintf("Physically %s relative to %s benchmarks. %s%s %s",
				pick(ph >= 3, "developing well", "with areas to target"), ageGroup,
				checkedPhrase(data.Physical), notesPhrase(data.Physical),
				pick(ph >= 4, "Leverage their athleticism with position-specific demands.", "Agility and coordination circuits will help.")),
		},
		Psychological: repository.CornerRating{
			Score: ps,
			Label: ScoreLabel(CornerPsychological, ps),
			Observation: fmt.Sprintf("%s shows a %s mental approach. %s%s %s",
				playerName, pick(ps >= 3, "positive", "growing"),
				checkedPhrase(data.Psychological), notesPhrase(data.Psychological),
				pick(ps >= 4, "Resilience and attitude are clear strengths.", "Build confidence through achievable progressive challenges.")),
		},
		Strengths: strengths,
		AreasToImprove: []string{
			pick(len(data.Technical.Checked) < 3,
				"Develop technical foundations through daily ball work",
				"Polish execution under defensive pressure"),
			pick(len(data.Tactical.Checked) < 3,
				"Build game awareness through small-sided games",
				"Sharpen off-ball movement and positioning"),
			pick(len(data.Psychological.Checked) < 3,
				"Build match confidence through role clarity and encouragement",
				"Challenge with leadership responsibilities in session activities"),
		},
		// The drill list is a fixed catalog for now, not personalized.
		Drills: []repository.DrillRecommendation{
			{Name: "Rondo (4v2)", Description: "Possession circle with 2 defenders. Develops quick passing, decision-making, and pressing habits. 10 minutes per session."},
			{Name: "Coerver Ball Mastery", Description: "Structured skill circuit: toe taps, inside-outside rolls, V-moves. 5–10 minutes at the start of each session to build muscle memory."},
			{Name: "1v1 Box Challenge", Description: "10x10 yard box, attacker vs defender with a small goal. Builds confidence on the ball and defensive shape. Rotate every 60 seconds."},
		},
		Summary: fmt.Sprintf("%s is a %s %s showing %s development across all four pillars. %s %s",
			playerName, ageGroup, position,
			pick(total >= 14, "above-average", pick(total >= 10, "solid", "early-stage")),
			pick(total >= 14,
				"They are tracking ahead of age-group norms — consider introducing more complex challenges.",
				"Consistent training, positive reinforcement, and fun repetition will drive the most growth at this stage."),
			"⚠️ This is a DEMO assessment — add your Claude API key in Settings for real AI-powered analysis."),
		IsDemo: true,
	}
}
