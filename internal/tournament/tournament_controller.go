package tournament

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JMaldonado-17/powerfed/internal/eligibility"
	"github.com/JMaldonado-17/powerfed/pkg/responses"
	"github.com/gin-gonic/gin"
)

type TournamentController struct {
	repo TournamentRepository
}

func NewTournamentController(repo TournamentRepository) *TournamentController {
	return &TournamentController{repo: repo}
}

type CreateTournamentRequest struct {
	EventID   uint      `json:"event_id" binding:"required"`
	Name      string    `json:"name" binding:"required,min=3,max=150"`
	Division  string    `json:"division" binding:"required"`
	Modality  string    `json:"modality" binding:"required"`
	Equipment string    `json:"equipment" binding:"required"`
	StartDate time.Time `json:"start_date"`
}

type UpdateTournamentRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=3,max=150"`
	Modality  *string    `json:"modality"`
	Equipment *string    `json:"equipment"`
	StartDate *time.Time `json:"start_date"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// CreateTournament godoc
// @Summary Create a tournament
// @Description Announces a tournament under an event. Admin only. Starts in draft.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament body CreateTournamentRequest true "Tournament details"
// @Success 201 {object} Tournament
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/tournaments [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if _, err := eligibility.ParseTournamentDivision(req.Division); err != nil {
		responses.FromError(c, err)
		return
	}
	if err := ValidateModality(req.Modality); err != nil {
		responses.FromError(c, err)
		return
	}
	if err := ValidateEquipment(req.Equipment); err != nil {
		responses.FromError(c, err)
		return
	}

	t := &Tournament{
		EventID:   req.EventID,
		Name:      req.Name,
		Division:  req.Division,
		Modality:  req.Modality,
		Equipment: req.Equipment,
		Status:    StatusDraft,
		StartDate: req.StartDate,
	}
	if err := tc.repo.CreateTournament(t); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Tournament created", t)
}

// GetAllTournaments godoc
// @Summary List tournaments
// @Tags Tournaments
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param division query string false "Filter by division"
// @Param status query string false "Filter by status"
// @Param event_id query int false "Filter by event"
// @Success 200 {object} responses.PaginatedResponse
// @Router /tournaments [get]
func (tc *TournamentController) GetAllTournaments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filters := map[string]interface{}{}
	if division := c.Query("division"); division != "" {
		filters["division"] = division
	}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if eventID := c.Query("event_id"); eventID != "" {
		filters["event_id"] = eventID
	}

	tournaments, total, err := tc.repo.GetAllTournaments(page, limit, filters)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", tournaments, total, page, limit)
}

// GetTournamentByID godoc
// @Summary Get a tournament
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} Tournament
// @Failure 404 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id} [get]
func (tc *TournamentController) GetTournamentByID(c *gin.Context) {
	id, ok := parseID(c, "tournament_id")
	if !ok {
		return
	}
	t, err := tc.repo.GetTournamentByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", t)
}

// GetEligibility godoc
// @Summary Resolve athlete eligibility for a tournament
// @Description Computes the athlete division, age eligibility and the legal weight classes for a gender/birth-year pair under this tournament's division. Used by registration forms to constrain the weight-class selector.
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param gender query string true "Gender (M or F)"
// @Param birth_year query int true "Birth year"
// @Success 200 {object} eligibility.Result
// @Failure 400 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id}/eligibility [get]
func (tc *TournamentController) GetEligibility(c *gin.Context) {
	id, ok := parseID(c, "tournament_id")
	if !ok {
		return
	}
	t, err := tc.repo.GetTournamentByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	birthYear, err := strconv.Atoi(c.Query("birth_year"))
	if err != nil {
		responses.BadRequest(c, "birth_year must be an integer")
		return
	}

	result, rerr := eligibility.Resolve(
		eligibility.Gender(c.Query("gender")),
		birthYear,
		eligibility.TournamentDivision(t.Division),
		time.Now().Year(),
	)
	if rerr != nil {
		responses.FromError(c, rerr)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", result)
}

// UpdateTournament godoc
// @Summary Update a tournament
// @Description Admin only. Division cannot change once announced; delete and recreate instead.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament_id path int true "Tournament ID"
// @Param tournament body UpdateTournamentRequest true "Fields to update"
// @Success 200 {object} Tournament
// @Router /admin/tournaments/{tournament_id} [put]
func (tc *TournamentController) UpdateTournament(c *gin.Context) {
	id, ok := parseID(c, "tournament_id")
	if !ok {
		return
	}
	t, err := tc.repo.GetTournamentByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Modality != nil {
		if err := ValidateModality(*req.Modality); err != nil {
			responses.FromError(c, err)
			return
		}
		t.Modality = *req.Modality
	}
	if req.Equipment != nil {
		if err := ValidateEquipment(*req.Equipment); err != nil {
			responses.FromError(c, err)
			return
		}
		t.Equipment = *req.Equipment
	}
	if req.StartDate != nil {
		t.StartDate = *req.StartDate
	}

	if err := tc.repo.UpdateTournament(t); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament updated", t)
}

// TransitionStatus godoc
// @Summary Transition tournament status
// @Description Moves the tournament along its lifecycle (draft, preliminary_open, preliminary_closed, finished). Admin only.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament_id path int true "Tournament ID"
// @Param transition body TransitionRequest true "Target status"
// @Success 200 {object} Tournament
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id}/status [put]
func (tc *TournamentController) TransitionStatus(c *gin.Context) {
	id, ok := parseID(c, "tournament_id")
	if !ok {
		return
	}
	t, err := tc.repo.GetTournamentByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if err := ValidateStatus(req.Status); err != nil {
		responses.FromError(c, err)
		return
	}
	if !CanTransition(t.Status, req.Status) {
		responses.BadRequest(c, "Cannot transition from "+t.Status+" to "+req.Status)
		return
	}

	if err := tc.repo.UpdateStatus(id, req.Status); err != nil {
		responses.FromError(c, err)
		return
	}
	t.Status = req.Status
	responses.SendSuccess(c, http.StatusOK, "Tournament status updated", t)
}

// DeleteTournament godoc
// @Summary Delete a tournament
// @Tags Tournaments
// @Produce json
// @Security BearerAuth
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/tournaments/{tournament_id} [delete]
func (tc *TournamentController) DeleteTournament(c *gin.Context) {
	id, ok := parseID(c, "tournament_id")
	if !ok {
		return
	}
	if _, err := tc.repo.GetTournamentByID(id); err != nil {
		responses.FromError(c, err)
		return
	}
	if err := tc.repo.DeleteTournament(id); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament deleted", nil)
}
