package event

import (
	"github.com/JMaldonado-17/powerfed/config"
	mw "github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/internal/referee"
	"github.com/JMaldonado-17/powerfed/internal/team"
	"github.com/JMaldonado-17/powerfed/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EventRoutes sets up event and roster routes
func EventRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	eventRepo := NewEventRepository(db)
	refereeRepo := referee.NewRefereeRepository(db)
	teamRepo := team.NewTeamRepository(db)
	eventController := NewEventController(eventRepo, refereeRepo, teamRepo, db)

	// Public listings
	router.GET("/events", eventController.GetAllEvents)
	router.GET("/events/:event_id", eventController.GetEventByID)
	router.GET("/events/:event_id/referees", eventController.ListEventReferees)
	router.GET("/events/:event_id/coaches", eventController.ListEventCoaches)

	// Coach accreditation: admins or team managers (scoped inside the handler)
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	authRoutes.Use(rmiddleware.TeamOrAdminMiddleware())
	{
		authRoutes.PUT("/events/:event_id/coaches", eventController.SyncEventCoaches)
	}

	// Admin management
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/events", eventController.CreateEvent)
		adminRoutes.PUT("/events/:event_id", eventController.UpdateEvent)
		adminRoutes.DELETE("/events/:event_id", eventController.DeleteEvent)
		adminRoutes.PUT("/events/:event_id/referees", eventController.SyncEventReferees)
	}
}
