package registration

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JMaldonado-17/powerfed/internal/eligibility"
	mw "github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/internal/team"
	"github.com/JMaldonado-17/powerfed/internal/tournament"
	"github.com/JMaldonado-17/powerfed/internal/user"
	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"github.com/JMaldonado-17/powerfed/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationController struct {
	repo           RegistrationRepository
	tournamentRepo tournament.TournamentRepository
	teamRepo       team.TeamRepository
	db             *gorm.DB
}

func NewRegistrationController(repo RegistrationRepository, tournamentRepo tournament.TournamentRepository, teamRepo team.TeamRepository, db *gorm.DB) *RegistrationController {
	return &RegistrationController{repo: repo, tournamentRepo: tournamentRepo, teamRepo: teamRepo, db: db}
}

type CreateRegistrationRequest struct {
	TournamentID   uint    `json:"tournament_id" binding:"required"`
	AthleteID      uint    `json:"athlete_id" binding:"required"`
	WeightClass    string  `json:"weight_class" binding:"required"`
	SquatOpener    float64 `json:"squat_opener" binding:"omitempty,gt=0"`
	BenchOpener    float64 `json:"bench_opener" binding:"omitempty,gt=0"`
	DeadliftOpener float64 `json:"deadlift_opener" binding:"omitempty,gt=0"`
}

type UpdateRegistrationRequest struct {
	WeightClass    *string  `json:"weight_class"`
	SquatOpener    *float64 `json:"squat_opener" binding:"omitempty,gt=0"`
	BenchOpener    *float64 `json:"bench_opener" binding:"omitempty,gt=0"`
	DeadliftOpener *float64 `json:"deadlift_opener" binding:"omitempty,gt=0"`
}

type BulkRegistrationRequest struct {
	Registrations []CreateRegistrationRequest `json:"registrations" binding:"required,min=1,dive"`
}

// callerTeamID resolves the acting team for non-admin callers. Admins get 0,
// meaning no ownership restriction.
func (rc *RegistrationController) callerTeamID(c *gin.Context) (uint, bool) {
	role, err := mw.GetUserRoleFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Authentication required")
		return 0, false
	}
	if role == user.RoleAdmin {
		return 0, true
	}
	userID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Authentication required")
		return 0, false
	}
	t, err := rc.teamRepo.GetTeamByOwnerID(userID)
	if err != nil {
		responses.FromError(c, err)
		return 0, false
	}
	return t.ID, true
}

// validate checks tournament state, athlete ownership and eligibility, and
// returns the registration ready to persist.
func (rc *RegistrationController) validate(req CreateRegistrationRequest, scopeTeamID uint) (*Registration, error) {
	t, err := rc.tournamentRepo.GetTournamentByID(req.TournamentID)
	if err != nil {
		return nil, err
	}
	if t.Status != tournament.StatusPreliminaryOpen {
		return nil, apperrors.Conflict("tournament %d is not open for registration", t.ID)
	}

	athlete, err := rc.teamRepo.GetAthleteByID(req.AthleteID)
	if err != nil {
		return nil, err
	}
	if scopeTeamID != 0 && athlete.TeamID != scopeTeamID {
		return nil, apperrors.Validation("athlete %d does not belong to your team", athlete.ID)
	}

	gender, err := eligibility.ParseGender(athlete.Gender)
	if err != nil {
		return nil, err
	}
	result, err := eligibility.Resolve(gender, athlete.BirthYear, eligibility.TournamentDivision(t.Division), time.Now().Year())
	if err != nil {
		return nil, err
	}
	if !result.AgeEligible {
		return nil, apperrors.Validation("athlete %d is not age-eligible for the %s division", athlete.ID, t.Division)
	}

	wc, err := eligibility.ParseWeightClass(req.WeightClass, gender)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, legal := range result.WeightClasses {
		if legal == wc {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.Validation("weight class %s is not available to athlete %d in this tournament", req.WeightClass, athlete.ID)
	}

	return &Registration{
		TournamentID:    req.TournamentID,
		AthleteID:       req.AthleteID,
		WeightClass:     string(wc),
		AthleteDivision: string(result.AthleteDivision),
		SquatOpener:     req.SquatOpener,
		BenchOpener:     req.BenchOpener,
		DeadliftOpener:  req.DeadliftOpener,
		ReceiptNumber:   uuid.NewString(),
	}, nil
}

// CreateRegistration godoc
// @Summary Register an athlete into a tournament
// @Description Validates age eligibility and weight class against the tournament division before persisting. Team managers may only register their own athletes.
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registration body CreateRegistrationRequest true "Registration details"
// @Success 201 {object} Registration
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /registrations [post]
func (rc *RegistrationController) CreateRegistration(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	scopeTeamID, ok := rc.callerTeamID(c)
	if !ok {
		return
	}
	reg, err := rc.validate(req, scopeTeamID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if err := rc.repo.CreateRegistration(reg); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Registration created", reg)
}

// BulkCreateRegistrations godoc
// @Summary Register several athletes at once
// @Description Validates every entry first, then persists all of them in one transaction. Any invalid or duplicate entry rejects the whole batch.
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registrations body BulkRegistrationRequest true "Batch of registrations"
// @Success 201 {array} Registration
// @Failure 400 {object} responses.ErrorResponse
// @Router /registrations/bulk [post]
func (rc *RegistrationController) BulkCreateRegistrations(c *gin.Context) {
	var req BulkRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	scopeTeamID, ok := rc.callerTeamID(c)
	if !ok {
		return
	}

	regs := make([]*Registration, 0, len(req.Registrations))
	for _, entry := range req.Registrations {
		reg, err := rc.validate(entry, scopeTeamID)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		regs = append(regs, reg)
	}

	err := rc.db.Transaction(func(tx *gorm.DB) error {
		txRepo := NewRegistrationRepository(tx)
		for _, reg := range regs {
			if err := txRepo.CreateRegistration(reg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Registrations created", regs)
}

// GetTournamentRegistrations godoc
// @Summary List registrations of a tournament
// @Tags Registrations
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /tournaments/{tournament_id}/registrations [get]
func (rc *RegistrationController) GetTournamentRegistrations(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil || tournamentID == 0 {
		responses.BadRequest(c, "Invalid tournament_id")
		return
	}
	if _, err := rc.tournamentRepo.GetTournamentByID(uint(tournamentID)); err != nil {
		responses.FromError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	regs, total, err := rc.repo.GetRegistrationsByTournamentID(uint(tournamentID), page, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", regs, total, page, limit)
}

// registrationForWrite loads a registration and checks the caller may modify
// it. The tournament must still be open for preliminaries.
func (rc *RegistrationController) registrationForWrite(c *gin.Context) (*Registration, bool) {
	id, err := strconv.ParseUint(c.Param("registration_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid registration_id")
		return nil, false
	}
	reg, rerr := rc.repo.GetRegistrationByID(uint(id))
	if rerr != nil {
		responses.FromError(c, rerr)
		return nil, false
	}

	scopeTeamID, ok := rc.callerTeamID(c)
	if !ok {
		return nil, false
	}
	if scopeTeamID != 0 && reg.Athlete.TeamID != scopeTeamID {
		responses.Forbidden(c, "Registration belongs to another team")
		return nil, false
	}

	t, terr := rc.tournamentRepo.GetTournamentByID(reg.TournamentID)
	if terr != nil {
		responses.FromError(c, terr)
		return nil, false
	}
	if t.Status != tournament.StatusPreliminaryOpen {
		responses.Conflict(c, "Tournament is not open for registration changes")
		return nil, false
	}
	return reg, true
}

// UpdateRegistration godoc
// @Summary Update a registration
// @Description Changes weight class or opener attempts while preliminaries are open. Weight class is re-validated against eligibility.
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registration_id path int true "Registration ID"
// @Param registration body UpdateRegistrationRequest true "Fields to update"
// @Success 200 {object} Registration
// @Router /registrations/{registration_id} [put]
func (rc *RegistrationController) UpdateRegistration(c *gin.Context) {
	reg, ok := rc.registrationForWrite(c)
	if !ok {
		return
	}

	var req UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if req.WeightClass != nil {
		t, err := rc.tournamentRepo.GetTournamentByID(reg.TournamentID)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		gender, err := eligibility.ParseGender(reg.Athlete.Gender)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		result, err := eligibility.Resolve(gender, reg.Athlete.BirthYear, eligibility.TournamentDivision(t.Division), time.Now().Year())
		if err != nil {
			responses.FromError(c, err)
			return
		}
		wc, err := eligibility.ParseWeightClass(*req.WeightClass, gender)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		allowed := false
		for _, legal := range result.WeightClasses {
			if legal == wc {
				allowed = true
				break
			}
		}
		if !allowed {
			responses.BadRequest(c, "Weight class not available to this athlete")
			return
		}
		reg.WeightClass = string(wc)
	}
	if req.SquatOpener != nil {
		reg.SquatOpener = *req.SquatOpener
	}
	if req.BenchOpener != nil {
		reg.BenchOpener = *req.BenchOpener
	}
	if req.DeadliftOpener != nil {
		reg.DeadliftOpener = *req.DeadliftOpener
	}

	if err := rc.repo.UpdateRegistration(reg); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registration updated", reg)
}

// DeleteRegistration godoc
// @Summary Withdraw a registration
// @Description Soft-deletes the registration. Re-registering later creates a fresh entry with a new receipt number.
// @Tags Registrations
// @Produce json
// @Security BearerAuth
// @Param registration_id path int true "Registration ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /registrations/{registration_id} [delete]
func (rc *RegistrationController) DeleteRegistration(c *gin.Context) {
	reg, ok := rc.registrationForWrite(c)
	if !ok {
		return
	}
	if err := rc.repo.DeleteRegistration(reg.ID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registration withdrawn", nil)
}
