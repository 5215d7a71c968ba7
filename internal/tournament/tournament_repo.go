package tournament

import (
	"errors"

	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"gorm.io/gorm"
)

type TournamentRepository interface {
	CreateTournament(t *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetAllTournaments(page, limit int, filters map[string]interface{}) ([]Tournament, int64, error)
	GetTournamentsByEventID(eventID uint) ([]Tournament, error)
	UpdateTournament(t *Tournament) error
	UpdateStatus(id uint, status string) error
	DeleteTournament(id uint) error
}

type tournamentRepository struct {
	db *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(t *Tournament) error {
	if err := r.db.Create(t).Error; err != nil {
		return apperrors.Persistence("create tournament", err)
	}
	return nil
}

func (r *tournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var t Tournament
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("tournament")
		}
		return nil, apperrors.Persistence("get tournament", err)
	}
	return &t, nil
}

func (r *tournamentRepository) GetAllTournaments(page, limit int, filters map[string]interface{}) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{})
	if division, ok := filters["division"]; ok {
		query = query.Where("division = ?", division)
	}
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if eventID, ok := filters["event_id"]; ok {
		query = query.Where("event_id = ?", eventID)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("start_date desc, id desc").Find(&tournaments).Error; err != nil {
		return nil, 0, apperrors.Persistence("list tournaments", err)
	}
	return tournaments, total, nil
}

func (r *tournamentRepository) GetTournamentsByEventID(eventID uint) ([]Tournament, error) {
	var tournaments []Tournament
	if err := r.db.Where("event_id = ?", eventID).Order("start_date asc, id asc").Find(&tournaments).Error; err != nil {
		return nil, apperrors.Persistence("list event tournaments", err)
	}
	return tournaments, nil
}

func (r *tournamentRepository) UpdateTournament(t *Tournament) error {
	if err := r.db.Save(t).Error; err != nil {
		return apperrors.Persistence("update tournament", err)
	}
	return nil
}

func (r *tournamentRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&Tournament{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return apperrors.Persistence("update tournament status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("tournament")
	}
	return nil
}

func (r *tournamentRepository) DeleteTournament(id uint) error {
	if err := r.db.Delete(&Tournament{}, id).Error; err != nil {
		return apperrors.Persistence("delete tournament", err)
	}
	return nil
}
