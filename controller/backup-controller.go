package controller

import (
	"encoding/json"

	"pitchside/app_error"
	"pitchside/repository"
	"pitchside/service"

	"github.com/gin-gonic/gin"
)

type BackupController struct {
	backupService *service.BackupService
}

func NewBackupController(store repository.Store) *BackupController {
	return &BackupController{
		backupService: service.NewBackupService(store),
	}
}

func setupBackupController(store repository.Store) []RouteInfo {
	e := NewBackupController(store)
	basePath := "/backup"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.exportHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.importHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

func (e *BackupController) exportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		document, err := e.backupService.Export()
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="pitchside-backup.json"`)
		c.JSON(200, document)
	}
}

// importHandler overwrites all backup keys wholesale; only the JSON envelope
// is validated.
func (e *BackupController) importHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var document map[string]json.RawMessage
		if err := c.BindJSON(&document); err != nil {
			c.JSON(400, gin.H{"error": "Invalid backup file"})
			return
		}
		if err := e.backupService.Import(document); err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.Status(204)
	}
}
