package registration

import (
	"github.com/JMaldonado-17/powerfed/config"
	mw "github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/internal/team"
	"github.com/JMaldonado-17/powerfed/internal/tournament"
	"github.com/JMaldonado-17/powerfed/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegistrationRoutes sets up registration routes
func RegistrationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	registrationRepo := NewRegistrationRepository(db)
	tournamentRepo := tournament.NewTournamentRepository(db)
	teamRepo := team.NewTeamRepository(db)
	registrationController := NewRegistrationController(registrationRepo, tournamentRepo, teamRepo, db)

	// Public start lists
	router.GET("/tournaments/:tournament_id/registrations", registrationController.GetTournamentRegistrations)

	// Team managers and admins
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	authRoutes.Use(rmiddleware.TeamOrAdminMiddleware())
	{
		authRoutes.POST("/registrations", registrationController.CreateRegistration)
		authRoutes.POST("/registrations/bulk", registrationController.BulkCreateRegistrations)
		authRoutes.PUT("/registrations/:registration_id", registrationController.UpdateRegistration)
		authRoutes.DELETE("/registrations/:registration_id", registrationController.DeleteRegistration)
	}
}
