package controller

import (
	"time"

	"pitchside/app_error"
	"pitchside/repository"
	"pitchside/service"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

type ParentController struct {
	playerService     *service.PlayerService
	assessmentService *service.AssessmentService
}

func NewParentController(store repository.Store) *ParentController {
	return &ParentController{
		playerService:     service.NewPlayerService(store),
		assessmentService: service.NewAssessmentService(store),
	}
}

func setupParentController(store repository.Store, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewParentController(store)
	return []RouteInfo{
		{
			Method:      "GET",
			Path:        "/parent/:access_code",
			HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.getParentViewHandler()),
		},
	}
}

// ParentView is the read-only summary behind a player's access-code link.
// Parent contact fields and the coach PIN never appear here.
type ParentView struct {
	FirstName        string                   `json:"firstName"`
	LastName         string                   `json:"lastName"`
	JerseyNumber     int                      `json:"jerseyNumber"`
	Position         repository.Position      `json:"position"`
	AttendanceRate   int                      `json:"attendanceRate"`
	GamesPlayed      int                      `json:"gamesPlayed"`
	LatestRating     *repository.SkillRating  `json:"latestRating,omitempty"`
	OverallScore     *float64                 `json:"overallScore,omitempty"`
	LatestAssessment *repository.AIAssessment `json:"latestAssessment,omitempty"`
}

// getParentViewHandler resolves the access code case-insensitively against
// active players only; no other credential is involved.
func (e *ParentController) getParentViewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		player, err := e.playerService.GetPlayerByAccessCode(c.Param("access_code"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if player == nil {
			c.JSON(404, gin.H{"error": "Access code not recognized"})
			return
		}
		stats, err := e.playerService.GetPlayerStats(player.Id)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		latestAssessment, err := e.assessmentService.GetLatestForPlayer(player.Id)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, ParentView{
			FirstName:        player.FirstName,
			LastName:         player.LastName,
			JerseyNumber:     player.JerseyNumber,
			Position:         player.Position,
			AttendanceRate:   stats.AttendanceRate,
			GamesPlayed:      stats.GamesPlayed,
			LatestRating:     stats.LatestRating,
			OverallScore:     stats.OverallScore,
			LatestAssessment: latestAssessment,
		})
	}
}
