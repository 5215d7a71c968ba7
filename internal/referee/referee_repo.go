package referee

import (
	"errors"

	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"gorm.io/gorm"
)

type RefereeRepository interface {
	CreateReferee(referee *Referee) error
	GetRefereeByID(id uint) (*Referee, error)
	GetRefereesByIDs(ids []uint) ([]Referee, error)
	GetAllReferees(page, limit int) ([]Referee, int64, error)
	UpdateReferee(referee *Referee) error
	DeleteReferee(id uint) error
}

type refereeRepository struct {
	db *gorm.DB
}

func NewRefereeRepository(db *gorm.DB) RefereeRepository {
	return &refereeRepository{db: db}
}

func (r *refereeRepository) CreateReferee(referee *Referee) error {
	var count int64
	if err := r.db.Model(&Referee{}).Where("dni = ?", referee.DNI).Count(&count).Error; err != nil {
		return apperrors.Persistence("check referee dni", err)
	}
	if count > 0 {
		return apperrors.Conflict("referee with DNI %s already exists", referee.DNI)
	}
	if err := r.db.Create(referee).Error; err != nil {
		return apperrors.Persistence("create referee", err)
	}
	return nil
}

func (r *refereeRepository) GetRefereeByID(id uint) (*Referee, error) {
	var referee Referee
	if err := r.db.First(&referee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("referee")
		}
		return nil, apperrors.Persistence("get referee", err)
	}
	return &referee, nil
}

func (r *refereeRepository) GetRefereesByIDs(ids []uint) ([]Referee, error) {
	var referees []Referee
	if err := r.db.Where("id IN ?", ids).Find(&referees).Error; err != nil {
		return nil, apperrors.Persistence("list referees by ids", err)
	}
	return referees, nil
}

func (r *refereeRepository) GetAllReferees(page, limit int) ([]Referee, int64, error) {
	var referees []Referee
	var total int64
	query := r.db.Model(&Referee{})
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("last_name asc, first_name asc").Find(&referees).Error; err != nil {
		return nil, 0, apperrors.Persistence("list referees", err)
	}
	return referees, total, nil
}

func (r *refereeRepository) UpdateReferee(referee *Referee) error {
	if err := r.db.Save(referee).Error; err != nil {
		return apperrors.Persistence("update referee", err)
	}
	return nil
}

func (r *refereeRepository) DeleteReferee(id uint) error {
	if err := r.db.Delete(&Referee{}, id).Error; err != nil {
		return apperrors.Persistence("delete referee", err)
	}
	return nil
}
