package event

import (
	"errors"

	"github.com/JMaldonado-17/powerfed/internal/roster"
	"github.com/JMaldonado-17/powerfed/internal/team"
	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"gorm.io/gorm"
)

type EventRepository interface {
	CreateEvent(e *Event) error
	GetEventByID(id uint) (*Event, error)
	GetAllEvents(page, limit int) ([]Event, int64, error)
	UpdateEvent(e *Event) error
	DeleteEvent(id uint) error

	ListRefereeAssignments(eventID uint) ([]EventRefereeAssignment, error)
	ListCoachRegistrations(eventID uint) ([]EventCoachRegistration, error)
	CountCoaches(ids []uint) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(e *Event) error {
	if err := r.db.Create(e).Error; err != nil {
		return apperrors.Persistence("create event", err)
	}
	return nil
}

func (r *eventRepository) GetEventByID(id uint) (*Event, error) {
	var e Event
	if err := r.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("event")
		}
		return nil, apperrors.Persistence("get event", err)
	}
	return &e, nil
}

func (r *eventRepository) GetAllEvents(page, limit int) ([]Event, int64, error) {
	var events []Event
	var total int64
	query := r.db.Model(&Event{})
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("start_date desc, id desc").Find(&events).Error; err != nil {
		return nil, 0, apperrors.Persistence("list events", err)
	}
	return events, total, nil
}

func (r *eventRepository) UpdateEvent(e *Event) error {
	if err := r.db.Save(e).Error; err != nil {
		return apperrors.Persistence("update event", err)
	}
	return nil
}

// DeleteEvent soft-deletes the event together with its referee assignments
// and coach registrations.
func (r *eventRepository) DeleteEvent(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&EventRefereeAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&EventCoachRegistration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Event{}, id).Error
	})
	if err != nil {
		return apperrors.Persistence("delete event", err)
	}
	return nil
}

func (r *eventRepository) ListRefereeAssignments(eventID uint) ([]EventRefereeAssignment, error) {
	var assignments []EventRefereeAssignment
	if err := r.db.Preload("Referee").
		Where("event_id = ?", eventID).
		Order("referee_id asc").
		Find(&assignments).Error; err != nil {
		return nil, apperrors.Persistence("list referee assignments", err)
	}
	return assignments, nil
}

func (r *eventRepository) ListCoachRegistrations(eventID uint) ([]EventCoachRegistration, error) {
	var registrations []EventCoachRegistration
	if err := r.db.Preload("Coach").
		Where("event_id = ?", eventID).
		Order("coach_id asc").
		Find(&registrations).Error; err != nil {
		return nil, apperrors.Persistence("list coach registrations", err)
	}
	return registrations, nil
}

func (r *eventRepository) CountCoaches(ids []uint) (int64, error) {
	var count int64
	if err := r.db.Model(&team.Coach{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, apperrors.Persistence("count coaches", err)
	}
	return count, nil
}

// refereeAssignmentStore adapts the referee panel table to the roster engine.
type refereeAssignmentStore struct {
	db *gorm.DB
}

// NewRefereeAssignmentStore returns a store over event_referee_assignments.
// Pass the transaction handle when the sync must be atomic.
func NewRefereeAssignmentStore(db *gorm.DB) roster.Store {
	return &refereeAssignmentStore{db: db}
}

func (s *refereeAssignmentStore) FindActive(parentID uint) ([]roster.Association, error) {
	var rows []EventRefereeAssignment
	if err := s.db.Where("event_id = ?", parentID).Find(&rows).Error; err != nil {
		return nil, apperrors.Persistence("find referee assignments", err)
	}
	out := make([]roster.Association, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Association{ID: row.ID, ChildID: row.RefereeID, Role: row.Role})
	}
	return out, nil
}

func (s *refereeAssignmentStore) Insert(parentID, childID uint, role string) error {
	row := EventRefereeAssignment{EventID: parentID, RefereeID: childID, Role: role}
	if err := s.db.Create(&row).Error; err != nil {
		return apperrors.Persistence("insert referee assignment", err)
	}
	return nil
}

func (s *refereeAssignmentStore) SoftDelete(id uint) error {
	if err := s.db.Delete(&EventRefereeAssignment{}, id).Error; err != nil {
		return apperrors.Persistence("remove referee assignment", err)
	}
	return nil
}

func (s *refereeAssignmentStore) UpdateRole(id uint, role string) error {
	if err := s.db.Model(&EventRefereeAssignment{}).Where("id = ?", id).Update("role", role).Error; err != nil {
		return apperrors.Persistence("update referee assignment", err)
	}
	return nil
}

// coachRegistrationStore adapts the coach accreditation table to the roster
// engine. A non-zero teamID narrows every read and write to coaches of that
// team, so a team manager's sync can never touch another team's rows.
type coachRegistrationStore struct {
	db     *gorm.DB
	teamID uint
}

// NewCoachRegistrationStore returns a store over event_coach_registrations.
// teamID 0 means unscoped (admin caller).
func NewCoachRegistrationStore(db *gorm.DB, teamID uint) roster.Store {
	return &coachRegistrationStore{db: db, teamID: teamID}
}

func (s *coachRegistrationStore) FindActive(parentID uint) ([]roster.Association, error) {
	var rows []EventCoachRegistration
	query := s.db.Where("event_coach_registrations.event_id = ?", parentID)
	if s.teamID != 0 {
		query = query.
			Joins("JOIN coaches ON coaches.id = event_coach_registrations.coach_id").
			Where("coaches.team_id = ?", s.teamID)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, apperrors.Persistence("find coach registrations", err)
	}
	out := make([]roster.Association, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Association{ID: row.ID, ChildID: row.CoachID, Role: row.Role})
	}
	return out, nil
}

func (s *coachRegistrationStore) Insert(parentID, childID uint, role string) error {
	row := EventCoachRegistration{EventID: parentID, CoachID: childID, Role: role}
	if err := s.db.Create(&row).Error; err != nil {
		return apperrors.Persistence("insert coach registration", err)
	}
	return nil
}

func (s *coachRegistrationStore) SoftDelete(id uint) error {
	if err := s.db.Delete(&EventCoachRegistration{}, id).Error; err != nil {
		return apperrors.Persistence("remove coach registration", err)
	}
	return nil
}

func (s *coachRegistrationStore) UpdateRole(id uint, role string) error {
	if err := s.db.Model(&EventCoachRegistration{}).Where("id = ?", id).Update("role", role).Error; err != nil {
		return apperrors.Persistence("update coach registration", err)
	}
	return nil
}
