package assessment

import (
	"fmt"
	"strings"
)

// SystemPrompt is the fixed instruction sent with every remote assessment
// request.
const SystemPrompt = `You are an expert youth soccer development coach with deep knowledge of:
- US Soccer Federation Player Development Initiatives (PDI)
- UEFA Youth Coaching methodology
- Long-Term Athlete Development (LTAD) framework
- The 4 Corner Model (Technical, Tactical, Physical, Psychological)
- Age-appropriate benchmarks for youth players (U7 through U17)

You are helping a volunteer/parent coach who is NOT technically trained. They have completed a guided checklist of observable behaviours for one of their players. Your job is to interpret those observations objectively and produce a professional, constructive development report.

Be warm, encouraging, and practical. Write as if addressing a fellow coach. Respond with valid JSON only — no markdown, no extra text.`

func summarizeArea(area AreaData, label string) string {
	observed := "No specific behaviours were ticked for this area."
	if len(area.Checked) > 0 {
		observed = fmt.Sprintf("Observed behaviours: %s", strings.Join(area.Checked, " | "))
	}
	notes := ""
	if area.Notes != "" {
		notes = fmt.Sprintf("\nCoach notes: %q", area.Notes)
	}
	return fmt.Sprintf("%s:\n%s%s", label, observed, notes)
}

// BuildPrompt renders the per-request user message embedding the checklist.
func BuildPrompt(data GuidedAssessment, playerName, position, ageGroup string) string {
	return fmt.Sprintf(`Guided assessment for %s (Position: %s, Age Group: %s).
A non-technical volunteer coach completed the following checklist after observing this player:

%s

%s

%s

%s

Using the 4 Corner Model and LTAD frameworks, produce an objective assessment. Return ONLY a JSON object:
{
  "technical":     { "score": <1-5>, "label": "<brief label>", "observation": "<2 sentences>" },
  "tactical":      { "score": <1-5>, "label": "<brief label>", "observation": "<2 sentences>" },
  "physical":      { "score": <1-5>, "label": "<brief label>", "observation": "<2 sentences>" },
  "psychological": { "score": <1-5>, "label": "<brief label>", "observation": "<2 sentences>" },
  "strengths":     ["<strength>", "<strength>", "<strength>"],
  "areasToImprove":["<actionable area>", "<actionable area>", "<actionable area>"],
  "drills": [
    { "name": "<drill>", "description": "<how to run it and why, 1-2 sentences>" },
    { "name": "<drill>", "description": "<how to run it and why, 1-2 sentences>" },
    { "name": "<drill>", "description": "<how to run it and why, 1-2 sentences>" }
  ],
  "summary": "<2-3 sentence developmental summary benchmarked to age group>"
}

Score: 1=Significant gaps, 2=Early development, 3=Age-appropriate, 4=Above average for age, 5=Exceptional.`,
		playerName, position, ageGroup,
		summarizeArea(data.Technical, "--- TECHNICAL (Ball Skills)"),
		summarizeArea(data.Tactical, "--- TACTICAL (Game Understanding)"),
		summarizeArea(data.Physical, "--- PHYSICAL (Athletic Ability)"),
		summarizeArea(data.Psychological, "--- PSYCHOLOGICAL (Attitude & Mindset)"))
}
