package controller

import (
	"pitchside/app_error"
	"pitchside/auth"
	"pitchside/config"
	"pitchside/repository"
	"pitchside/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	settingsService *service.SettingsService
}

func NewAuthController(store repository.Store) *AuthController {
	return &AuthController{
		settingsService: service.NewSettingsService(store),
	}
}

func setupAuthController(store repository.Store) []RouteInfo {
	e := NewAuthController(store)
	basePath := "/auth"
	routes := []RouteInfo{
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/logout", HandlerFunc: e.logoutHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type LoginRequest struct {
	Pin string `json:"pin" binding:"required"`
}

func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login LoginRequest
		if err := c.BindJSON(&login); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		ok, err := e.settingsService.CheckPasscode(login.Pin)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		if !ok {
			c.JSON(401, gin.H{"error": "Incorrect PIN"})
			return
		}
		authToken, err := auth.CreateCoachToken()
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.SetCookie("auth", authToken, 60*60*24, "/", config.Env().PublicDomain, false, true)
		c.Status(204)
	}
}

func (e *AuthController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", config.Env().PublicDomain, false, true)
		c.Status(204)
	}
}
