package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/JMaldonado-17/powerfed/config"
	"github.com/JMaldonado-17/powerfed/internal/auth"
	"github.com/JMaldonado-17/powerfed/internal/event"
	"github.com/JMaldonado-17/powerfed/internal/referee"
	"github.com/JMaldonado-17/powerfed/internal/registration"
	"github.com/JMaldonado-17/powerfed/internal/team"
	"github.com/JMaldonado-17/powerfed/internal/tournament"
)

func SetupRoutes(appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "powerfed",
			"docs":    "/swagger/index.html",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := config.DB
	jwtSecret := appConfig.JWT.AccessTokenSecret

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, appConfig, jwtSecret)
	referee.RefereeRoutes(api, db, appConfig, jwtSecret)
	tournament.TournamentRoutes(api, db, appConfig, jwtSecret)
	event.EventRoutes(api, db, appConfig, jwtSecret)
	registration.RegistrationRoutes(api, db, appConfig, jwtSecret)

	return r
}
