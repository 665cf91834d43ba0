package scoring

import (
	"math"
	"sort"

	"pitchside/repository"
	"pitchside/utils"
)

// AttendanceRate is the percentage of completed events at which the player
// was marked present, rounded to the nearest integer. With zero completed
// events the rate is 100.
func AttendanceRate(playerId string, records []repository.AttendanceRecord, events []repository.CalendarEvent) int {
	completed := make(map[string]bool)
	for _, event := range events {
		if event.IsCompleted {
			completed[event.Id] = true
		}
	}
	if len(completed) == 0 {
		return 100
	}
	present := 0
	for _, record := range records {
		if record.PlayerId == playerId && completed[record.EventId] && record.Status == repository.AttendancePresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(completed)) * 100))
}

type EventAttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Excused int `json:"excused"`
	Total   int `json:"total"`
}

func SummarizeEventAttendance(eventId string, records []repository.AttendanceRecord) EventAttendanceSummary {
	summary := EventAttendanceSummary{}
	for _, record := range records {
		if record.EventId != eventId {
			continue
		}
		summary.Total++
		switch record.Status {
		case repository.AttendancePresent:
			summary.Present++
		case repository.AttendanceAbsent:
			summary.Absent++
		case repository.AttendanceExcused:
			summary.Excused++
		}
	}
	return summary
}

// OverallScore is the mean of the 8 skill values rounded to one decimal.
func OverallScore(rating *repository.SkillRating) float64 {
	sum := 0
	for _, key := range repository.SkillKeys {
		sum += rating.Ratings[key]
	}
	return math.Round(float64(sum)/float64(len(repository.SkillKeys))*10) / 10
}

// LatestRating is the maximum-timestamp rating, nil for an empty slice.
func LatestRating(ratings []repository.SkillRating) *repository.SkillRating {
	if len(ratings) == 0 {
		return nil
	}
	latest := &ratings[0]
	for i := range ratings {
		if ratings[i].AssessedAt.After(latest.AssessedAt) {
			latest = &ratings[i]
		}
	}
	return latest
}

// PreviousRating is the second-most-recent rating by timestamp, nil when
// fewer than two exist. Insensitive to input order.
func PreviousRating(ratings []repository.SkillRating) *repository.SkillRating {
	if len(ratings) < 2 {
		return nil
	}
	sorted := make([]repository.SkillRating, len(ratings))
	copy(sorted, ratings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AssessedAt.After(sorted[j].AssessedAt)
	})
	return &sorted[1]
}

type RadarPoint struct {
	Skill    string `json:"skill"`
	Value    int    `json:"value"`
	Previous *int   `json:"previous,omitempty"`
	FullMark int    `json:"fullMark"`
}

// RadarData reshapes a rating (and optionally its predecessor) into the
// per-skill series the radar chart consumes.
func RadarData(current *repository.SkillRating, previous *repository.SkillRating) []RadarPoint {
	return utils.Map(repository.SkillKeys, func(key repository.SkillKey) RadarPoint {
		point := RadarPoint{
			Skill:    repository.SkillLabels[key],
			Value:    current.Ratings[key],
			FullMark: 5,
		}
		if previous != nil {
			value := previous.Ratings[key]
			point.Previous = &value
		}
		return point
	})
}

type TrendPoint struct {
	Label  string                      `json:"label"`
	Date   string                      `json:"date"`
	Values map[repository.SkillKey]int `json:"values"`
}

// TrendData returns the per-session skill values oldest first.
func TrendData(ratings []repository.SkillRating) []TrendPoint {
	sorted := make([]repository.SkillRating, len(ratings))
	copy(sorted, ratings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AssessedAt.Before(sorted[j].AssessedAt)
	})
	return utils.Map(sorted, func(rating repository.SkillRating) TrendPoint {
		values := make(map[repository.SkillKey]int, len(repository.SkillKeys))
		for _, key := range repository.SkillKeys {
			values[key] = rating.Ratings[key]
		}
		return TrendPoint{
			Label:  rating.SessionLabel,
			Date:   rating.AssessedAt.Format("2006-01-02"),
			Values: values,
		}
	})
}
