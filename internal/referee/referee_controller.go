package referee

import (
	"net/http"
	"strconv"

	"github.com/JMaldonado-17/powerfed/pkg/responses"
	"github.com/gin-gonic/gin"
)

type RefereeController struct {
	repo RefereeRepository
}

func NewRefereeController(repo RefereeRepository) *RefereeController {
	return &RefereeController{repo: repo}
}

type CreateRefereeRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	DNI       string `json:"dni" binding:"required,min=7,max=10"`
	Category  string `json:"category" binding:"omitempty,oneof=national regional"`
}

type UpdateRefereeRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Category  *string `json:"category" binding:"omitempty,oneof=national regional"`
}

// CreateReferee godoc
// @Summary Register a referee
// @Description Adds a referee to the federation registry. Admin only.
// @Tags Referees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param referee body CreateRefereeRequest true "Referee details"
// @Success 201 {object} Referee
// @Failure 409 {object} responses.ErrorResponse
// @Router /admin/referees [post]
func (rc *RefereeController) CreateReferee(c *gin.Context) {
	var req CreateRefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	category := req.Category
	if category == "" {
		category = CategoryRegional
	}

	referee := &Referee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
		Category:  category,
	}
	if err := rc.repo.CreateReferee(referee); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Referee registered", referee)
}

// GetAllReferees godoc
// @Summary List referees
// @Tags Referees
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /referees [get]
func (rc *RefereeController) GetAllReferees(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	referees, total, err := rc.repo.GetAllReferees(page, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", referees, total, page, limit)
}

// UpdateReferee godoc
// @Summary Update a referee
// @Tags Referees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param referee_id path int true "Referee ID"
// @Param referee body UpdateRefereeRequest true "Fields to update"
// @Success 200 {object} Referee
// @Router /admin/referees/{referee_id} [put]
func (rc *RefereeController) UpdateReferee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("referee_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid referee_id")
		return
	}

	referee, rerr := rc.repo.GetRefereeByID(uint(id))
	if rerr != nil {
		responses.FromError(c, rerr)
		return
	}

	var req UpdateRefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if req.FirstName != nil {
		referee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		referee.LastName = *req.LastName
	}
	if req.Category != nil {
		referee.Category = *req.Category
	}

	if err := rc.repo.UpdateReferee(referee); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Referee updated", referee)
}

// DeleteReferee godoc
// @Summary Remove a referee
// @Description Soft-deletes the referee; past event assignments keep their rows.
// @Tags Referees
// @Produce json
// @Security BearerAuth
// @Param referee_id path int true "Referee ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/referees/{referee_id} [delete]
func (rc *RefereeController) DeleteReferee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("referee_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid referee_id")
		return
	}

	if _, err := rc.repo.GetRefereeByID(uint(id)); err != nil {
		responses.FromError(c, err)
		return
	}

	if err := rc.repo.DeleteReferee(uint(id)); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Referee removed", nil)
}
