package team

import (
	"errors"

	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	// Team operations
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamByOwnerID(ownerID uint) (*Team, error)
	GetAllTeams(page, limit int, approvedOnly bool) ([]Team, int64, error)
	UpdateTeam(team *Team) error
	DeleteTeam(id uint) error
	ApproveTeam(id uint) error

	// Athlete operations
	CreateAthlete(athlete *Athlete) error
	GetAthleteByID(id uint) (*Athlete, error)
	GetAthletesByTeamID(teamID uint, page, limit int) ([]Athlete, int64, error)
	GetAthletesByIDs(teamID uint, ids []uint) ([]Athlete, error)
	UpdateAthlete(athlete *Athlete) error
	DeleteAthlete(id uint) error

	// Coach operations
	CreateCoach(coach *Coach) error
	GetCoachByID(id uint) (*Coach, error)
	GetCoachesByTeamID(teamID uint, page, limit int) ([]Coach, int64, error)
	GetCoachesByIDs(teamID uint, ids []uint) ([]Coach, error)
	UpdateCoach(coach *Coach) error
	DeleteCoach(id uint) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// --- Team Operations ---

func (r *teamRepository) CreateTeam(team *Team) error {
	var count int64
	if err := r.db.Model(&Team{}).Where("name = ?", team.Name).Count(&count).Error; err != nil {
		return apperrors.Persistence("check team name", err)
	}
	if count > 0 {
		return apperrors.Conflict("team %q already exists", team.Name)
	}
	if err := r.db.Create(team).Error; err != nil {
		return apperrors.Persistence("create team", err)
	}
	return nil
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team")
		}
		return nil, apperrors.Persistence("get team", err)
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByOwnerID(ownerID uint) (*Team, error) {
	var team Team
	if err := r.db.Where("owner_id = ?", ownerID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team")
		}
		return nil, apperrors.Persistence("get team by owner", err)
	}
	return &team, nil
}

func (r *teamRepository) GetAllTeams(page, limit int, approvedOnly bool) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{})
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&teams).Error; err != nil {
		return nil, 0, apperrors.Persistence("list teams", err)
	}
	return teams, total, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	if err := r.db.Save(team).Error; err != nil {
		return apperrors.Persistence("update team", err)
	}
	return nil
}

func (r *teamRepository) DeleteTeam(id uint) error {
	// Soft delete the team and everything it owns.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&Athlete{}).Error; err != nil {
			return apperrors.Persistence("delete team athletes", err)
		}
		if err := tx.Where("team_id = ?", id).Delete(&Coach{}).Error; err != nil {
			return apperrors.Persistence("delete team coaches", err)
		}
		if err := tx.Delete(&Team{}, id).Error; err != nil {
			return apperrors.Persistence("delete team", err)
		}
		return nil
	})
}

func (r *teamRepository) ApproveTeam(id uint) error {
	result := r.db.Model(&Team{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return apperrors.Persistence("approve team", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("team")
	}
	return nil
}

// --- Athlete Operations ---

func (r *teamRepository) CreateAthlete(athlete *Athlete) error {
	var count int64
	if err := r.db.Model(&Athlete{}).Where("team_id = ? AND dni = ?", athlete.TeamID, athlete.DNI).Count(&count).Error; err != nil {
		return apperrors.Persistence("check athlete dni", err)
	}
	if count > 0 {
		return apperrors.Conflict("athlete with DNI %s already exists in this team", athlete.DNI)
	}
	if err := r.db.Create(athlete).Error; err != nil {
		return apperrors.Persistence("create athlete", err)
	}
	return nil
}

func (r *teamRepository) GetAthleteByID(id uint) (*Athlete, error) {
	var athlete Athlete
	if err := r.db.First(&athlete, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("athlete")
		}
		return nil, apperrors.Persistence("get athlete", err)
	}
	return &athlete, nil
}

func (r *teamRepository) GetAthletesByTeamID(teamID uint, page, limit int) ([]Athlete, int64, error) {
	var athletes []Athlete
	var total int64
	query := r.db.Model(&Athlete{}).Where("team_id = ?", teamID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("last_name asc, first_name asc").Find(&athletes).Error; err != nil {
		return nil, 0, apperrors.Persistence("list athletes", err)
	}
	return athletes, total, nil
}

func (r *teamRepository) GetAthletesByIDs(teamID uint, ids []uint) ([]Athlete, error) {
	var athletes []Athlete
	if err := r.db.Where("team_id = ? AND id IN ?", teamID, ids).Find(&athletes).Error; err != nil {
		return nil, apperrors.Persistence("list athletes by ids", err)
	}
	return athletes, nil
}

func (r *teamRepository) UpdateAthlete(athlete *Athlete) error {
	if err := r.db.Save(athlete).Error; err != nil {
		return apperrors.Persistence("update athlete", err)
	}
	return nil
}

func (r *teamRepository) DeleteAthlete(id uint) error {
	if err := r.db.Delete(&Athlete{}, id).Error; err != nil {
		return apperrors.Persistence("delete athlete", err)
	}
	return nil
}

// --- Coach Operations ---

func (r *teamRepository) CreateCoach(coach *Coach) error {
	var count int64
	if err := r.db.Model(&Coach{}).Where("team_id = ? AND dni = ?", coach.TeamID, coach.DNI).Count(&count).Error; err != nil {
		return apperrors.Persistence("check coach dni", err)
	}
	if count > 0 {
		return apperrors.Conflict("coach with DNI %s already exists in this team", coach.DNI)
	}
	if err := r.db.Create(coach).Error; err != nil {
		return apperrors.Persistence("create coach", err)
	}
	return nil
}

func (r *teamRepository) GetCoachByID(id uint) (*Coach, error) {
	var coach Coach
	if err := r.db.First(&coach, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("coach")
		}
		return nil, apperrors.Persistence("get coach", err)
	}
	return &coach, nil
}

func (r *teamRepository) GetCoachesByTeamID(teamID uint, page, limit int) ([]Coach, int64, error) {
	var coaches []Coach
	var total int64
	query := r.db.Model(&Coach{}).Where("team_id = ?", teamID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("last_name asc, first_name asc").Find(&coaches).Error; err != nil {
		return nil, 0, apperrors.Persistence("list coaches", err)
	}
	return coaches, total, nil
}

func (r *teamRepository) GetCoachesByIDs(teamID uint, ids []uint) ([]Coach, error) {
	var coaches []Coach
	if err := r.db.Where("team_id = ? AND id IN ?", teamID, ids).Find(&coaches).Error; err != nil {
		return nil, apperrors.Persistence("list coaches by ids", err)
	}
	return coaches, nil
}

func (r *teamRepository) UpdateCoach(coach *Coach) error {
	if err := r.db.Save(coach).Error; err != nil {
		return apperrors.Persistence("update coach", err)
	}
	return nil
}

func (r *teamRepository) DeleteCoach(id uint) error {
	if err := r.db.Delete(&Coach{}, id).Error; err != nil {
		return apperrors.Persistence("delete coach", err)
	}
	return nil
}
