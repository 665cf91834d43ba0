package controller

import (
	"pitchside/app_error"
	"pitchside/repository"
	"pitchside/service"

	"github.com/gin-gonic/gin"
)

type PlayerController struct {
	playerService *service.PlayerService
}

func NewPlayerController(store repository.Store) *PlayerController {
	return &PlayerController{
		playerService: service.NewPlayerService(store),
	}
}

func setupPlayerController(store repository.Store) []RouteInfo {
	e := NewPlayerController(store)
	basePath := "/players"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getPlayersHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createPlayerHandler(), Authenticated: true},
		{Method: "GET", Path: "/:player_id", HandlerFunc: e.getPlayerHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:player_id", HandlerFunc: e.updatePlayerHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:player_id", HandlerFunc: e.deletePlayerHandler(), Authenticated: true},
		{Method: "GET", Path: "/:player_id/stats", HandlerFunc: e.getPlayerStatsHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type PlayerCreate struct {
	FirstName    string              `json:"firstName" binding:"required"`
	LastName     string              `json:"lastName" binding:"required"`
	JerseyNumber int                 `json:"jerseyNumber" binding:"required,min=1,max=99"`
	DateOfBirth  string              `json:"dateOfBirth" binding:"required"`
	Position     repository.Position `json:"position" binding:"required"`
	ParentName   string              `json:"parentName"`
	ParentEmail  string              `json:"parentEmail"`
	ParentPhone  string              `json:"parentPhone"`
	PhotoUrl     string              `json:"photoUrl"`
	Notes        string              `json:"notes"`
}

func (e *PlayerCreate) toModel() *repository.Player {
	return &repository.Player{
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		JerseyNumber: e.JerseyNumber,
		DateOfBirth:  e.DateOfBirth,
		Position:     e.Position,
		ParentName:   e.ParentName,
		ParentEmail:  e.ParentEmail,
		ParentPhone:  e.ParentPhone,
		PhotoUrl:     e.PhotoUrl,
		Notes:        e.Notes,
		IsActive:     true,
	}
}

func (e *PlayerController) getPlayersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		players, err := e.playerService.GetPlayers()
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, players)
	}
}

func (e *PlayerController) createPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var player PlayerCreate
		if err := c.BindJSON(&player); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		created, err := e.playerService.AddPlayer(player.toModel())
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(201, created)
	}
}

func (e *PlayerController) getPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		player, err := e.playerService.GetPlayerById(c.Param("player_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if player == nil {
			c.JSON(404, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(200, player)
	}
}

func (e *PlayerController) updatePlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var update repository.PlayerUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.playerService.UpdatePlayer(c.Param("player_id"), &update)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if player == nil {
			c.JSON(404, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(200, player)
	}
}

func (e *PlayerController) deletePlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := e.playerService.DeletePlayer(c.Param("player_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.Status(204)
	}
}

func (e *PlayerController) getPlayerStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := e.playerService.GetPlayerStats(c.Param("player_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if stats == nil {
			c.JSON(404, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(200, stats)
	}
}
