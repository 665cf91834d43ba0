package controller

import (
	"time"

	"pitchside/app_error"
	"pitchside/repository"
	"pitchside/scoring"
	"pitchside/service"
	"pitchside/utils"

	"github.com/gin-gonic/gin"
)

type SkillRatingController struct {
	ratingService *service.SkillRatingService
	playerService *service.PlayerService
}

func NewSkillRatingController(store repository.Store) *SkillRatingController {
	return &SkillRatingController{
		ratingService: service.NewSkillRatingService(store),
		playerService: service.NewPlayerService(store),
	}
}

func setupSkillRatingController(store repository.Store) []RouteInfo {
	e := NewSkillRatingController(store)
	basePath := "/players/:player_id/ratings"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getRatingsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createRatingHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:rating_id", HandlerFunc: e.deleteRatingHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type SkillRatingCreate struct {
	AssessedBy   string                      `json:"assessedBy" binding:"required"`
	SessionLabel string                      `json:"sessionLabel" binding:"required"`
	Ratings      map[repository.SkillKey]int `json:"ratings" binding:"required"`
	CoachNotes   string                      `json:"coachNotes"`
}

type SkillRatingResponse struct {
	repository.SkillRating
	OverallScore float64 `json:"overallScore"`
}

func toRatingResponse(rating repository.SkillRating) SkillRatingResponse {
	return SkillRatingResponse{
		SkillRating:  rating,
		OverallScore: scoring.OverallScore(&rating),
	}
}

func (e *SkillRatingController) getRatingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ratings, err := e.ratingService.GetRatingsForPlayer(c.Param("player_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, utils.Map(ratings, toRatingResponse))
	}
}

func (e *SkillRatingController) createRatingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId := c.Param("player_id")
		player, err := e.playerService.GetPlayerById(playerId)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if player == nil {
			c.JSON(404, gin.H{"error": "Player not found"})
			return
		}
		var create SkillRatingCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := validateSkillMap(create.Ratings); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rating, err := e.ratingService.AddRating(&repository.SkillRating{
			PlayerId:     playerId,
			AssessedBy:   create.AssessedBy,
			AssessedAt:   time.Now(),
			SessionLabel: create.SessionLabel,
			Ratings:      create.Ratings,
			CoachNotes:   create.CoachNotes,
		})
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(201, toRatingResponse(*rating))
	}
}

func (e *SkillRatingController) deleteRatingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := e.ratingService.DeleteRating(c.Param("rating_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.Status(204)
	}
}
