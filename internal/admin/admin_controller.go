package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/validator"
)

// AdminController exposes the back-office endpoints that cut across resources.
type AdminController struct {
	repo    AdminRepository
	recruit *RecruitService
}

// NewAdminController creates a new admin controller.
func NewAdminController(repo AdminRepository) *AdminController {
	return &AdminController{repo: repo, recruit: NewRecruitService(repo)}
}

// Recruit godoc
// @Summary Recruit a tryout candidate
// @Description Atomically creates/updates the candidate's player profile on the destination team, approves the request, and elevates the account to the player role. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body RecruitRequest true "Recruitment data"
// @Success 200 {object} responses.SuccessResponse{data=player.Player}
// @Failure 400 {object} responses.ErrorResponse "Candidate has no linked account"
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "In-game name taken or request rejected"
// @Security ApiKeyAuth
// @Router /admin/recruit [post]
func (ac *AdminController) Recruit(c *gin.Context) {
	var req RecruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	p, err := ac.recruit.Recruit(req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTryoutNotFound), errors.Is(err, ErrTeamNotFound):
			responses.NotFound(c, "Recruitment target")
		case errors.Is(err, ErrNoLinkedAccount):
			responses.BadRequest(c, err.Error())
		case errors.Is(err, ErrNameTaken), errors.Is(err, ErrRequestRejected):
			responses.Conflict(c, err.Error())
		default:
			responses.InternalServerError(c, "Recruitment failed")
		}
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Candidate recruited", p)
}

// GetStats godoc
// @Summary Back-office dashboard counters
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Stats}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/stats [get]
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.repo.Stats()
	if err != nil {
		responses.InternalServerError(c, "Failed to compute stats")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", stats)
}
