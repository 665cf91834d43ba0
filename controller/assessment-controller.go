package controller

import (
	"pitchside/app_error"
	"pitchside/assessment"
	"pitchside/repository"
	"pitchside/service"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	assessmentService *service.AssessmentService
}

func NewAssessmentController(store repository.Store) *AssessmentController {
	return &AssessmentController{
		assessmentService: service.NewAssessmentService(store),
	}
}

func setupAssessmentController(store repository.Store) []RouteInfo {
	e := NewAssessmentController(store)
	basePath := "/players/:player_id/assessments"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getAssessmentsHandler(), Authenticated: true},
		{Method: "POST", Path: "/generate", HandlerFunc: e.generateAssessmentHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:assessment_id", HandlerFunc: e.deleteAssessmentHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type GenerateAssessmentRequest struct {
	AssessedBy string                      `json:"assessedBy" binding:"required"`
	Data       assessment.GuidedAssessment `json:"data" binding:"required"`
}

func (e *AssessmentController) getAssessmentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		assessments, err := e.assessmentService.GetAssessmentsForPlayer(c.Param("player_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.JSON(200, assessments)
	}
}

// generateAssessmentHandler runs the scorer (or the remote service when a key
// is configured) and persists the result. A remote failure surfaces as 502
// with the transport error; the user retries manually. Errors carrying their
// own status (unknown player) keep it.
func (e *AssessmentController) generateAssessmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request GenerateAssessmentRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		created, err := e.assessmentService.Generate(c.Request.Context(), c.Param("player_id"), request.AssessedBy, request.Data)
		if err != nil {
			app_error.WithHTTPStatus(c, err, app_error.Status(err, 502))
			return
		}
		c.JSON(201, created)
	}
}

func (e *AssessmentController) deleteAssessmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := e.assessmentService.DeleteAssessment(c.Param("assessment_id"))
		if err != nil {
			app_error.WithHTTPStatus(c, err, 500)
			return
		}
		c.Status(204)
	}
}
