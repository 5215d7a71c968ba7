package tournament

import (
	"github.com/JMaldonado-17/powerfed/config"
	mw "github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TournamentRoutes sets up tournament catalogue and lifecycle routes
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	tournamentRepo := NewTournamentRepository(db)
	tournamentController := NewTournamentController(tournamentRepo)

	// Public catalogue
	router.GET("/tournaments", tournamentController.GetAllTournaments)
	router.GET("/tournaments/:tournament_id", tournamentController.GetTournamentByID)
	router.GET("/tournaments/:tournament_id/eligibility", tournamentController.GetEligibility)

	// Admin management
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/tournaments", tournamentController.CreateTournament)
		adminRoutes.PUT("/tournaments/:tournament_id", tournamentController.UpdateTournament)
		adminRoutes.PUT("/tournaments/:tournament_id/status", tournamentController.TransitionStatus)
		adminRoutes.DELETE("/tournaments/:tournament_id", tournamentController.DeleteTournament)
	}
}
