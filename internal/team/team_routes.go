package team

import (
	"github.com/JMaldonado-17/powerfed/config"
	mw "github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:team_id", teamController.GetTeamByID)
	router.GET("/teams/:team_id/athletes", teamController.GetTeamAthletes)
	router.GET("/teams/:team_id/coaches", teamController.GetTeamCoaches)

	// Authenticated routes; ownership checks happen in the handlers
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/teams", teamController.CreateTeam)
		authRoutes.GET("/my-team", teamController.GetMyTeam)
		authRoutes.PUT("/teams/:team_id", teamController.UpdateTeam)

		authRoutes.POST("/teams/:team_id/athletes", teamController.CreateAthlete)
		authRoutes.PUT("/teams/:team_id/athletes/:athlete_id", teamController.UpdateAthlete)
		authRoutes.DELETE("/teams/:team_id/athletes/:athlete_id", teamController.DeleteAthlete)

		authRoutes.POST("/teams/:team_id/coaches", teamController.CreateCoach)
		authRoutes.DELETE("/teams/:team_id/coaches/:coach_id", teamController.DeleteCoach)
	}

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.PUT("/teams/:team_id/approve", teamController.ApproveTeam)
		adminRoutes.DELETE("/teams/:team_id", teamController.DeleteTeam)
	}
}
