package assessment

import "time"

// AreaData is one corner's worth of coach input: the checked observation
// labels out of the fixed guide catalog, plus optional free-text notes.
type AreaData struct {
	Checked []string `json:"checked"`
	Notes   string   `json:"notes"`
}

// GuidedAssessment is the canonical scorer input, one AreaData per corner.
type GuidedAssessment struct {
	Technical     AreaData `json:"technical"`
	Tactical      AreaData `json:"tactical"`
	Physical      AreaData `json:"physical"`
	Psychological AreaData `json:"psychological"`
}

type Corner string

const (
	CornerTechnical     Corner = "technical"
	CornerTactical      Corner = "tactical"
	CornerPhysical      Corner = "physical"
	CornerPsychological Corner = "psychological"
)

// GuideItems is the fixed catalog of observable behaviours per corner,
// written for a volunteer coach with no technical training.
var GuideItems = map[Corner][]string{
	CornerTechnical: {
		"Controlled the ball cleanly when it was passed or kicked to them",
		"Passed the ball to a teammate with reasonable accuracy",
		"Dribbled with their head up (not just staring at the ball)",
		"Used their weaker foot at least once during the session",
		"Attempted a shot on goal with some technique (not just a wild kick)",
		"Received a ball moving at speed and brought it under control",
	},
	CornerTactical: {
		"Moved to an open space when their team had the ball",
		"Tracked back or helped defend when the other team had the ball",
		"Made a quick decision — passed or moved without holding the ball too long",
		"Showed awareness of where teammates were (looked around before receiving)",
		"Stayed in or near their position/role rather than chasing the ball everywhere",
		"Reacted to what was happening in the game, not just waiting for the ball",
	},
	CornerPhysical: {
		"Kept up with the pace of the game for most of the session",
		"Showed good balance — didn't fall over or stumble often",
		"Changed direction quickly and smoothly",
		"Showed some speed when running with or without the ball",
		"Was physically competitive — didn't shy away from challenges",
		"Maintained energy levels without tiring out too early",
	},
	CornerPsychological: {
		"Reacted positively after making a mistake (got back up, tried again)",
		"Communicated with teammates — called for the ball, encouraged others",
		"Listened to coaching instructions and made an effort to apply them",
		"Showed confidence — tried things, took on opponents, didn't always play safe",
		"Stayed engaged and focused throughout (didn't switch off or get distracted)",
		"Showed enjoyment — smiled, was enthusiastic, wanted to be involved",
	},
}

var scoreLabels = map[Corner][5]string{
	CornerTechnical:     {"Needs Fundamentals", "Early Developer", "Competent", "Proficient", "Technically Strong"},
	CornerTactical:      {"Unaware", "Reads Basic Play", "Situationally Aware", "Smart Player", "Tactically Excellent"},
	CornerPhysical:      {"Needs Conditioning", "Developing Athleticism", "Age-Appropriate", "Above Average", "Outstanding Athlete"},
	CornerPsychological: {"Needs Encouragement", "Building Confidence", "Consistent Attitude", "Mentally Strong", "Elite Mentality"},
}

// ScoreLabel maps a corner and a 1-5 score to its qualitative label.
func ScoreLabel(corner Corner, score int) string {
	labels, ok := scoreLabels[corner]
	if !ok || score < 1 || score > 5 {
		return "Unknown"
	}
	return labels[score-1]
}

// AgeGroup buckets a date of birth ("2006-01-02") into the usual youth
// age-group labels, by calendar year.
func AgeGroup(dateOfBirth string, now time.Time) string {
	born, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return "U17+"
	}
	age := now.Year() - born.Year()
	switch {
	case age <= 6:
		return "U7"
	case age <= 8:
		return "U9"
	case age <= 10:
		return "U11"
	case age <= 12:
		return "U13"
	case age <= 14:
		return "U15"
	default:
		return "U17+"
	}
}
