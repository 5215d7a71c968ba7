package team

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JMaldonado-17/powerfed/internal/eligibility"
	"github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/internal/user"
	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"github.com/JMaldonado-17/powerfed/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TeamController handles team, athlete and coach HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	City     string `json:"city" binding:"max=100"`
	Province string `json:"province" binding:"max=100"`
}

type UpdateTeamRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=3,max=100"`
	City     *string `json:"city" binding:"omitempty,max=100"`
	Province *string `json:"province" binding:"omitempty,max=100"`
}

type CreateAthleteRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	DNI       string `json:"dni" binding:"required,min=7,max=10"`
	Gender    string `json:"gender" binding:"required"`
	BirthYear int    `json:"birth_year" binding:"required"`
}

type UpdateAthleteRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	DNI       *string `json:"dni" binding:"omitempty,min=7,max=10"`
	Gender    *string `json:"gender"`
	BirthYear *int    `json:"birth_year"`
}

type CreateCoachRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	DNI       string `json:"dni" binding:"required,min=7,max=10"`
}

// --- Authorization helpers ---

// teamForWrite resolves the team the caller may modify: admins may touch any
// team by id, team accounts only their own.
func (tc *TeamController) teamForWrite(c *gin.Context, teamID uint) (*Team, bool) {
	role, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return nil, false
	}
	team, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.FromError(c, err)
		return nil, false
	}
	if role == user.RoleAdmin {
		return team, true
	}
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return nil, false
	}
	if team.OwnerID != userID {
		responses.Forbidden(c, "You can only manage your own team")
		return nil, false
	}
	return team, true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func paginationParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// --- Team Handlers ---

// CreateTeam godoc
// @Summary Create a team
// @Description Creates the caller's team. One team per account; approval is granted by an admin.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team body CreateTeamRequest true "Team details"
// @Success 201 {object} Team
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if _, err := tc.repo.GetTeamByOwnerID(userID); err == nil {
		responses.Conflict(c, "You already manage a team")
		return
	} else if !apperrors.IsNotFound(err) {
		responses.FromError(c, err)
		return
	}

	team := &Team{
		Name:     req.Name,
		City:     req.City,
		Province: req.Province,
		OwnerID:  userID,
	}
	if err := tc.repo.CreateTeam(team); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created, pending federation approval", team)
}

// GetAllTeams godoc
// @Summary List teams
// @Description Lists approved teams. Admins may pass all=true to include unapproved ones.
// @Tags Teams
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param all query bool false "Include unapproved teams (admin only)"
// @Success 200 {object} responses.PaginatedResponse
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, limit := paginationParams(c)

	approvedOnly := true
	if c.Query("all") == "true" {
		role, _ := middleware.GetUserRoleFromContext(c)
		if role == user.RoleAdmin {
			approvedOnly = false
		}
	}

	teams, total, err := tc.repo.GetAllTeams(page, limit, approvedOnly)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", teams, total, page, limit)
}

// GetTeamByID godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} Team
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	team, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", team)
}

// GetMyTeam godoc
// @Summary Get the caller's team
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Team
// @Failure 404 {object} responses.ErrorResponse
// @Router /my-team [get]
func (tc *TeamController) GetMyTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	team, err := tc.repo.GetTeamByOwnerID(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team_id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} Team
// @Failure 403 {object} responses.ErrorResponse
// @Router /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	team, ok := tc.teamForWrite(c, teamID)
	if !ok {
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.City != nil {
		team.City = *req.City
	}
	if req.Province != nil {
		team.Province = *req.Province
	}

	if err := tc.repo.UpdateTeam(team); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Soft-deletes the team and everything it owns. Admin only.
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	if _, err := tc.repo.GetTeamByID(teamID); err != nil {
		responses.FromError(c, err)
		return
	}
	if err := tc.repo.DeleteTeam(teamID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted", nil)
}

// ApproveTeam godoc
// @Summary Approve a team
// @Description Marks a team as federation-approved. Admin only.
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/teams/{team_id}/approve [put]
func (tc *TeamController) ApproveTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	if err := tc.repo.ApproveTeam(teamID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team approved", nil)
}

// --- Athlete Handlers ---

// CreateAthlete godoc
// @Summary Add an athlete to a team
// @Tags Athletes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team_id path int true "Team ID"
// @Param athlete body CreateAthleteRequest true "Athlete details"
// @Success 201 {object} Athlete
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /teams/{team_id}/athletes [post]
func (tc *TeamController) CreateAthlete(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	if _, ok := tc.teamForWrite(c, teamID); !ok {
		return
	}

	var req CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	gender, err := eligibility.ParseGender(req.Gender)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if req.BirthYear < 1900 || req.BirthYear > time.Now().Year() {
		responses.BadRequest(c, "birth_year out of range")
		return
	}

	athlete := &Athlete{
		TeamID:    teamID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
		Gender:    string(gender),
		BirthYear: req.BirthYear,
	}
	if err := tc.repo.CreateAthlete(athlete); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Athlete created", athlete)
}

// GetTeamAthletes godoc
// @Summary List a team's athletes
// @Tags Athletes
// @Produce json
// @Param team_id path int true "Team ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /teams/{team_id}/athletes [get]
func (tc *TeamController) GetTeamAthletes(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	page, limit := paginationParams(c)
	athletes, total, err := tc.repo.GetAthletesByTeamID(teamID, page, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", athletes, total, page, limit)
}

// UpdateAthlete godoc
// @Summary Update an athlete
// @Tags Athletes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team_id path int true "Team ID"
// @Param athlete_id path int true "Athlete ID"
// @Param athlete body UpdateAthleteRequest true "Fields to update"
// @Success 200 {object} Athlete
// @Router /teams/{team_id}/athletes/{athlete_id} [put]
func (tc *TeamController) UpdateAthlete(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	athleteID, ok := parseIDParam(c, "athlete_id")
	if !ok {
		return
	}
	if _, ok := tc.teamForWrite(c, teamID); !ok {
		return
	}

	athlete, err := tc.repo.GetAthleteByID(athleteID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if athlete.TeamID != teamID {
		responses.NotFound(c, "Athlete")
		return
	}

	var req UpdateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if req.FirstName != nil {
		athlete.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		athlete.LastName = *req.LastName
	}
	if req.DNI != nil {
		athlete.DNI = *req.DNI
	}
	if req.Gender != nil {
		gender, err := eligibility.ParseGender(*req.Gender)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		athlete.Gender = string(gender)
	}
	if req.BirthYear != nil {
		if *req.BirthYear < 1900 || *req.BirthYear > time.Now().Year() {
			responses.BadRequest(c, "birth_year out of range")
			return
		}
		athlete.BirthYear = *req.BirthYear
	}

	if err := tc.repo.UpdateAthlete(athlete); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete updated", athlete)
}

// DeleteAthlete godoc
// @Summary Remove an athlete from a team
// @Tags Athletes
// @Produce json
// @Security BearerAuth
// @Param team_id path int true "Team ID"
// @Param athlete_id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /teams/{team_id}/athletes/{athlete_id} [delete]
func (tc *TeamController) DeleteAthlete(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	athleteID, ok := parseIDParam(c, "athlete_id")
	if !ok {
		return
	}
	if _, ok := tc.teamForWrite(c, teamID); !ok {
		return
	}

	athlete, err := tc.repo.GetAthleteByID(athleteID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if athlete.TeamID != teamID {
		responses.NotFound(c, "Athlete")
		return
	}

	if err := tc.repo.DeleteAthlete(athleteID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete deleted", nil)
}

// --- Coach Handlers ---

// CreateCoach godoc
// @Summary Add a coach to a team
// @Tags Coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team_id path int true "Team ID"
// @Param coach body CreateCoachRequest true "Coach details"
// @Success 201 {object} Coach
// @Failure 409 {object} responses.ErrorResponse
// @Router /teams/{team_id}/coaches [post]
func (tc *TeamController) CreateCoach(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	if _, ok := tc.teamForWrite(c, teamID); !ok {
		return
	}

	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	coach := &Coach{
		TeamID:    teamID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
	}
	if err := tc.repo.CreateCoach(coach); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Coach created", coach)
}

// GetTeamCoaches godoc
// @Summary List a team's coaches
// @Tags Coaches
// @Produce json
// @Param team_id path int true "Team ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /teams/{team_id}/coaches [get]
func (tc *TeamController) GetTeamCoaches(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	page, limit := paginationParams(c)
	coaches, total, err := tc.repo.GetCoachesByTeamID(teamID, page, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", coaches, total, page, limit)
}

// DeleteCoach godoc
// @Summary Remove a coach from a team
// @Tags Coaches
// @Produce json
// @Security BearerAuth
// @Param team_id path int true "Team ID"
// @Param coach_id path int true "Coach ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /teams/{team_id}/coaches/{coach_id} [delete]
func (tc *TeamController) DeleteCoach(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}
	coachID, ok := parseIDParam(c, "coach_id")
	if !ok {
		return
	}
	if _, ok := tc.teamForWrite(c, teamID); !ok {
		return
	}

	coach, err := tc.repo.GetCoachByID(coachID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if coach.TeamID != teamID {
		responses.NotFound(c, "Coach")
		return
	}

	if err := tc.repo.DeleteCoach(coachID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Coach deleted", nil)
}
