package controller

import (
	"pitchside/app_error"
	"pitchside/repository"
	"pitchside/service"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService *service.SettingsService
}

func NewSettingsController(store repository.Store) *SettingsController {
	return &SettingsController{
		settingsService: service.NewSettingsService(store),
	}
}

func setupSettingsController(store repository.Store) []RouteInfo {
	e := NewSettingsController(store)
	basePath := "/settings"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getSettingsHandler(), Authenticated: true},
		{Method: "PATCH", Path: "", HandlerFunc: e.updateSettingsHandler(), Authenticated: true},
		{Method: "PUT", Path: "/apikey", HandlerFunc: e.setAPIKeyHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type SettingsResponse struct {
	repository.TeamSettings
	HasAPIKey bool `json:"hasApiKey"`
}

type APIKeyRequest struct {
	Key string `json:"key"`
}

func (e *SettingsController) getSettingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := e.settingsService.GetSettings()
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		hasKey, err := e.settingsService.HasAPIKey()
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, SettingsResponse{TeamSettings: *settings, HasAPIKey: hasKey})
	}
}

func (e *SettingsController) updateSettingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var update repository.TeamSettingsUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		settings, err := e.settingsService.UpdateSettings(&update)
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, settings)
	}
}

// setAPIKeyHandler stores the remote assessment credential. An empty key
// clears it, switching generation back to the deterministic fallback.
func (e *SettingsController) setAPIKeyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request APIKeyRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.settingsService.SetAPIKey(request.Key); err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.Status(204)
	}
}
