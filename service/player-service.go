package service

import (
	"pitchside/repository"
	"pitchside/scoring"
)

type PlayerService struct {
	playerRepository     *repository.PlayerRepository
	eventRepository      *repository.EventRepository
	ratingRepository     *repository.SkillRatingRepository
	attendanceRepository *repository.AttendanceRepository
	assessmentRepository *repository.AssessmentRepository
}

func NewPlayerService(store repository.Store) *PlayerService {
	return &PlayerService{
		playerRepository:     repository.NewPlayerRepository(store),
		eventRepository:      repository.NewEventRepository(store),
		ratingRepository:     repository.NewSkillRatingRepository(store),
		attendanceRepository: repository.NewAttendanceRepository(store),
		assessmentRepository: repository.NewAssessmentRepository(store),
	}
}

func (e *PlayerService) GetPlayers() ([]repository.Player, error) {
	return e.playerRepository.FindAll()
}

func (e *PlayerService) GetPlayerById(playerId string) (*repository.Player, error) {
	return e.playerRepository.GetPlayerById(playerId)
}

func (e *PlayerService) GetPlayerByAccessCode(code string) (*repository.Player, error) {
	return e.playerRepository.GetPlayerByAccessCode(code)
}

func (e *PlayerService) AddPlayer(player *repository.Player) (*repository.Player, error) {
	return e.playerRepository.Add(player)
}

func (e *PlayerService) UpdatePlayer(playerId string, update *repository.PlayerUpdate) (*repository.Player, error) {
	return e.playerRepository.Update(playerId, update)
}

// DeletePlayer cascades: the player's skill ratings, attendance records and
// assessments are removed in the same call.
func (e *PlayerService) DeletePlayer(playerId string) error {
	if err := e.ratingRepository.DeleteForPlayer(playerId); err != nil {
		return err
	}
	if err := e.attendanceRepository.DeleteForPlayer(playerId); err != nil {
		return err
	}
	if err := e.assessmentRepository.DeleteForPlayer(playerId); err != nil {
		return err
	}
	return e.playerRepository.Delete(playerId)
}

type PlayerStats struct {
	Player         *repository.Player      `json:"player"`
	AttendanceRate int                     `json:"attendanceRate"`
	GamesPlayed    int                     `json:"gamesPlayed"`
	LatestRating   *repository.SkillRating `json:"latestRating,omitempty"`
	PreviousRating *repository.SkillRating `json:"previousRating,omitempty"`
	OverallScore   *float64                `json:"overallScore,omitempty"`
	Radar          []scoring.RadarPoint    `json:"radar,omitempty"`
	Trend          []scoring.TrendPoint    `json:"trend,omitempty"`
}

// GetPlayerStats derives the profile view: attendance rate over completed
// events, games played, latest/previous ratings and the chart series.
func (e *PlayerService) GetPlayerStats(playerId string) (*PlayerStats, error) {
	player, err := e.playerRepository.GetPlayerById(playerId)
	if err != nil || player == nil {
		return nil, err
	}
	events, err := e.eventRepository.FindAll()
	if err != nil {
		return nil, err
	}
	records, err := e.attendanceRepository.GetForPlayer(playerId)
	if err != nil {
		return nil, err
	}
	ratings, err := e.ratingRepository.GetRatingsForPlayer(playerId)
	if err != nil {
		return nil, err
	}

	stats := &PlayerStats{
		Player:         player,
		AttendanceRate: scoring.AttendanceRate(playerId, records, events),
		GamesPlayed:    countGamesPlayed(playerId, records, events),
	}
	if latest := scoring.LatestRating(ratings); latest != nil {
		overall := scoring.OverallScore(latest)
		previous := scoring.PreviousRating(ratings)
		stats.LatestRating = latest
		stats.PreviousRating = previous
		stats.OverallScore = &overall
		stats.Radar = scoring.RadarData(latest, previous)
		stats.Trend = scoring.TrendData(ratings)
	}
	return stats, nil
}

func countGamesPlayed(playerId string, records []repository.AttendanceRecord, events []repository.CalendarEvent) int {
	games := make(map[string]bool)
	for _, event := range events {
		if event.Type == repository.EventTypeGame && event.IsCompleted {
			games[event.Id] = true
		}
	}
	played := 0
	for _, record := range records {
		if record.PlayerId == playerId && games[record.EventId] && record.Status == repository.AttendancePresent {
			played++
		}
	}
	return played
}
