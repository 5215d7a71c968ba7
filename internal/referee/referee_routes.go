package referee

import (
	"github.com/JMaldonado-17/powerfed/config"
	mw "github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RefereeRoutes sets up referee registry routes
func RefereeRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	refereeRepo := NewRefereeRepository(db)
	refereeController := NewRefereeController(refereeRepo)

	// Public listing
	router.GET("/referees", refereeController.GetAllReferees)

	// Admin management
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/referees", refereeController.CreateReferee)
		adminRoutes.PUT("/referees/:referee_id", refereeController.UpdateReferee)
		adminRoutes.DELETE("/referees/:referee_id", refereeController.DeleteReferee)
	}
}
