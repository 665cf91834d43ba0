package controller

import (
	"pitchside/auth"
	"pitchside/repository"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
}

func SetRoutes(r *gin.Engine, store repository.Store, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAuthController(store)...)
	routes = append(routes, setupPlayerController(store)...)
	routes = append(routes, setupEventController(store)...)
	routes = append(routes, setupSkillRatingController(store)...)
	routes = append(routes, setupAttendanceController(store)...)
	routes = append(routes, setupAssessmentController(store)...)
	routes = append(routes, setupSettingsController(store)...)
	routes = append(routes, setupBackupController(store)...)
	routes = append(routes, setupParentController(store, cacheStore)...)
	api := r.Group("/api")
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware())
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

// AuthMiddleware gates coach routes on the session token issued at PIN login.
func AuthMiddleware() gin.HandlerFunc {
	return func(r *gin.Context) {
		authCookie, err := r.Cookie("auth")
		if err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		token, err := auth.ParseToken(authCookie)
		if err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		if !token.Valid {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		if claims.Role != auth.RoleCoach {
			r.JSON(403, gin.H{"error": "Unauthorized"})
			r.Abort()
			return
		}
		r.Next()
	}
}
