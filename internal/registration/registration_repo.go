package registration

import (
	"errors"

	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	CreateRegistration(r *Registration) error
	GetRegistrationByID(id uint) (*Registration, error)
	GetRegistrationsByTournamentID(tournamentID uint, page, limit int) ([]Registration, int64, error)
	GetRegistrationsByAthleteID(athleteID uint) ([]Registration, error)
	HasActiveRegistration(tournamentID, athleteID uint) (bool, error)
	UpdateRegistration(r *Registration) error
	DeleteRegistration(id uint) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) CreateRegistration(reg *Registration) error {
	exists, err := r.HasActiveRegistration(reg.TournamentID, reg.AthleteID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.Conflict("athlete %d is already registered in tournament %d", reg.AthleteID, reg.TournamentID)
	}
	if err := r.db.Create(reg).Error; err != nil {
		return apperrors.Persistence("create registration", err)
	}
	return nil
}

func (r *registrationRepository) GetRegistrationByID(id uint) (*Registration, error) {
	var reg Registration
	if err := r.db.Preload("Athlete").First(&reg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("registration")
		}
		return nil, apperrors.Persistence("get registration", err)
	}
	return &reg, nil
}

func (r *registrationRepository) GetRegistrationsByTournamentID(tournamentID uint, page, limit int) ([]Registration, int64, error) {
	var regs []Registration
	var total int64
	query := r.db.Model(&Registration{}).Where("tournament_id = ?", tournamentID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Preload("Athlete").
		Offset(offset).Limit(limit).
		Order("weight_class asc, id asc").
		Find(&regs).Error; err != nil {
		return nil, 0, apperrors.Persistence("list registrations", err)
	}
	return regs, total, nil
}

func (r *registrationRepository) GetRegistrationsByAthleteID(athleteID uint) ([]Registration, error) {
	var regs []Registration
	if err := r.db.Where("athlete_id = ?", athleteID).Order("id asc").Find(&regs).Error; err != nil {
		return nil, apperrors.Persistence("list athlete registrations", err)
	}
	return regs, nil
}

func (r *registrationRepository) HasActiveRegistration(tournamentID, athleteID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Registration{}).
		Where("tournament_id = ? AND athlete_id = ?", tournamentID, athleteID).
		Count(&count).Error; err != nil {
		return false, apperrors.Persistence("check registration", err)
	}
	return count > 0, nil
}

func (r *registrationRepository) UpdateRegistration(reg *Registration) error {
	if err := r.db.Save(reg).Error; err != nil {
		return apperrors.Persistence("update registration", err)
	}
	return nil
}

func (r *registrationRepository) DeleteRegistration(id uint) error {
	if err := r.db.Delete(&Registration{}, id).Error; err != nil {
		return apperrors.Persistence("delete registration", err)
	}
	return nil
}
