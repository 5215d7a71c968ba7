package main

import (
	"log"

	"github.com/JMaldonado-17/powerfed/config"
	_ "github.com/JMaldonado-17/powerfed/docs"
	"github.com/JMaldonado-17/powerfed/internal/event"
	"github.com/JMaldonado-17/powerfed/internal/referee"
	"github.com/JMaldonado-17/powerfed/internal/registration"
	"github.com/JMaldonado-17/powerfed/internal/team"
	"github.com/JMaldonado-17/powerfed/internal/tournament"
	"github.com/JMaldonado-17/powerfed/internal/user"
	"github.com/JMaldonado-17/powerfed/routes"
)

// @title PowerFed REST API
// @version 1.0
// @description Tournament management backend for a regional powerlifting federation.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&team.Team{}, &team.Athlete{}, &team.Coach{},
		&referee.Referee{},
		&event.Event{}, &event.EventRefereeAssignment{}, &event.EventCoachRegistration{},
		&tournament.Tournament{},
		&registration.Registration{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// Partial unique indexes: one active row per pair; soft-deleted history
	// rows stay behind and must not collide.
	indexStatements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_event_referee
			ON event_referee_assignments (event_id, referee_id) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_event_coach
			ON event_coach_registrations (event_id, coach_id) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_registration
			ON registrations (tournament_id, athlete_id) WHERE deleted_at IS NULL`,
	}
	for _, stmt := range indexStatements {
		if err := config.DB.Exec(stmt).Error; err != nil {
			log.Fatalf("Index creation failed: %v", err)
		}
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
