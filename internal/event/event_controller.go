package event

import (
	"net/http"
	"strconv"
	"time"

	mw "github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/internal/referee"
	"github.com/JMaldonado-17/powerfed/internal/roster"
	"github.com/JMaldonado-17/powerfed/internal/team"
	"github.com/JMaldonado-17/powerfed/internal/user"
	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"github.com/JMaldonado-17/powerfed/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventController struct {
	repo        EventRepository
	refereeRepo referee.RefereeRepository
	teamRepo    team.TeamRepository
	db          *gorm.DB
}

func NewEventController(repo EventRepository, refereeRepo referee.RefereeRepository, teamRepo team.TeamRepository, db *gorm.DB) *EventController {
	return &EventController{repo: repo, refereeRepo: refereeRepo, teamRepo: teamRepo, db: db}
}

type CreateEventRequest struct {
	Name      string    `json:"name" binding:"required,min=3,max=150"`
	Venue     string    `json:"venue" binding:"max=150"`
	City      string    `json:"city" binding:"max=100"`
	Province  string    `json:"province" binding:"max=100"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date"`
}

type UpdateEventRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=3,max=150"`
	Venue     *string    `json:"venue" binding:"omitempty,max=150"`
	City      *string    `json:"city" binding:"omitempty,max=100"`
	Province  *string    `json:"province" binding:"omitempty,max=100"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// SyncRosterRequest is the full desired membership for one event roster.
// The server reconciles stored rows against it; anything absent is removed.
type SyncRosterRequest struct {
	Entries []roster.Entry `json:"entries" binding:"required"`
}

func parseEventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid event_id")
		return 0, false
	}
	return uint(id), true
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a physical competition event. Admin only.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event details"
// @Success 201 {object} Event
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/events [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	e := &Event{
		Name:      req.Name,
		Venue:     req.Venue,
		City:      req.City,
		Province:  req.Province,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if e.EndDate.IsZero() {
		e.EndDate = e.StartDate
	}
	if err := ec.repo.CreateEvent(e); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Event created", e)
}

// GetAllEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /events [get]
func (ec *EventController) GetAllEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	events, total, err := ec.repo.GetAllEvents(page, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", events, total, page, limit)
}

// GetEventByID godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} Event
// @Failure 404 {object} responses.ErrorResponse
// @Router /events/{event_id} [get]
func (ec *EventController) GetEventByID(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	e, err := ec.repo.GetEventByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", e)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event_id path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to update"
// @Success 200 {object} Event
// @Router /admin/events/{event_id} [put]
func (ec *EventController) UpdateEvent(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	e, err := ec.repo.GetEventByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Venue != nil {
		e.Venue = *req.Venue
	}
	if req.City != nil {
		e.City = *req.City
	}
	if req.Province != nil {
		e.Province = *req.Province
	}
	if req.StartDate != nil {
		e.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		e.EndDate = *req.EndDate
	}

	if err := ec.repo.UpdateEvent(e); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event updated", e)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Soft-deletes the event and its roster rows. Admin only.
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param event_id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/events/{event_id} [delete]
func (ec *EventController) DeleteEvent(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	if _, err := ec.repo.GetEventByID(id); err != nil {
		responses.FromError(c, err)
		return
	}
	if err := ec.repo.DeleteEvent(id); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event deleted", nil)
}

// ListEventReferees godoc
// @Summary List an event's referee panel
// @Tags Events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} EventRefereeAssignment
// @Router /events/{event_id}/referees [get]
func (ec *EventController) ListEventReferees(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	if _, err := ec.repo.GetEventByID(id); err != nil {
		responses.FromError(c, err)
		return
	}
	assignments, err := ec.repo.ListRefereeAssignments(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", assignments)
}

// SyncEventReferees godoc
// @Summary Replace an event's referee panel
// @Description Reconciles the panel to exactly the submitted set: missing referees are assigned, absent ones unassigned, changed roles updated. Idempotent. Admin only.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event_id path int true "Event ID"
// @Param roster body SyncRosterRequest true "Desired panel"
// @Success 200 {object} roster.Result
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/events/{event_id}/referees [put]
func (ec *EventController) SyncEventReferees(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	if _, err := ec.repo.GetEventByID(id); err != nil {
		responses.FromError(c, err)
		return
	}

	var req SyncRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}
	for _, entry := range req.Entries {
		if err := ValidateRefereeRole(entry.Role); err != nil {
			responses.FromError(c, err)
			return
		}
	}
	if err := ec.checkRefereesExist(req.Entries); err != nil {
		responses.FromError(c, err)
		return
	}

	var result roster.Result
	err := ec.db.Transaction(func(tx *gorm.DB) error {
		var syncErr error
		result, syncErr = roster.Sync(NewRefereeAssignmentStore(tx), id, req.Entries)
		return syncErr
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Referee panel updated", result)
}

// ListEventCoaches godoc
// @Summary List an event's accredited coaches
// @Tags Events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} EventCoachRegistration
// @Router /events/{event_id}/coaches [get]
func (ec *EventController) ListEventCoaches(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	if _, err := ec.repo.GetEventByID(id); err != nil {
		responses.FromError(c, err)
		return
	}
	registrations, err := ec.repo.ListCoachRegistrations(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", registrations)
}

// SyncEventCoaches godoc
// @Summary Replace an event's coach accreditations
// @Description Reconciles coach registrations to the submitted set. Admins operate on the whole event; team managers only on their own team's coaches, leaving other teams' registrations untouched.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event_id path int true "Event ID"
// @Param roster body SyncRosterRequest true "Desired accreditations"
// @Success 200 {object} roster.Result
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /events/{event_id}/coaches [put]
func (ec *EventController) SyncEventCoaches(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	if _, err := ec.repo.GetEventByID(id); err != nil {
		responses.FromError(c, err)
		return
	}

	var req SyncRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}
	for _, entry := range req.Entries {
		if err := ValidateCoachRole(entry.Role); err != nil {
			responses.FromError(c, err)
			return
		}
	}

	role, err := mw.GetUserRoleFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Authentication required")
		return
	}

	var scopeTeamID uint
	if role != user.RoleAdmin {
		userID, err := mw.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "Authentication required")
			return
		}
		t, err := ec.teamRepo.GetTeamByOwnerID(userID)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		scopeTeamID = t.ID
		if err := ec.checkCoachesBelongToTeam(scopeTeamID, req.Entries); err != nil {
			responses.FromError(c, err)
			return
		}
	} else if err := ec.checkCoachesExist(req.Entries); err != nil {
		responses.FromError(c, err)
		return
	}

	var result roster.Result
	err = ec.db.Transaction(func(tx *gorm.DB) error {
		var syncErr error
		result, syncErr = roster.Sync(NewCoachRegistrationStore(tx, scopeTeamID), id, req.Entries)
		return syncErr
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Coach accreditations updated", result)
}

func entryIDs(entries []roster.Entry) []uint {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ChildID)
	}
	return ids
}

func (ec *EventController) checkRefereesExist(entries []roster.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	found, err := ec.refereeRepo.GetRefereesByIDs(entryIDs(entries))
	if err != nil {
		return err
	}
	known := make(map[uint]bool, len(found))
	for _, r := range found {
		known[r.ID] = true
	}
	for _, e := range entries {
		if !known[e.ChildID] {
			return apperrors.Validation("referee %d is not in the registry", e.ChildID)
		}
	}
	return nil
}

func (ec *EventController) checkCoachesExist(entries []roster.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	ids := entryIDs(entries)
	unique := make(map[uint]bool, len(ids))
	for _, id := range ids {
		unique[id] = true
	}
	count, err := ec.repo.CountCoaches(ids)
	if err != nil {
		return err
	}
	if count != int64(len(unique)) {
		return apperrors.Validation("one or more coach ids do not exist")
	}
	return nil
}

func (ec *EventController) checkCoachesBelongToTeam(teamID uint, entries []roster.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	found, err := ec.teamRepo.GetCoachesByIDs(teamID, entryIDs(entries))
	if err != nil {
		return err
	}
	known := make(map[uint]bool, len(found))
	for _, coach := range found {
		known[coach.ID] = true
	}
	for _, e := range entries {
		if !known[e.ChildID] {
			return apperrors.Validation("coach %d does not belong to your team", e.ChildID)
		}
	}
	return nil
}
