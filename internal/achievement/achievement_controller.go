package achievement

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/validator"
)

// AchievementController handles achievement-related HTTP requests.
type AchievementController struct {
	repo AchievementRepository
}

// NewAchievementController creates a new achievement controller.
func NewAchievementController(repo AchievementRepository) *AchievementController {
	return &AchievementController{repo: repo}
}

// GetAllAchievements godoc
// @Summary List achievements
// @Tags Achievements
// @Produce json
// @Param team_id query int false "Filter by team"
// @Success 200 {object} responses.SuccessResponse{data=[]Achievement}
// @Router /achievements [get]
func (ac *AchievementController) GetAllAchievements(c *gin.Context) {
	var teamID *uint
	if raw := c.Query("team_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid team_id filter")
			return
		}
		v := uint(id)
		teamID = &v
	}

	achievements, err := ac.repo.GetAll(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch achievements")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", achievements)
}

// CreateAchievement godoc
// @Summary Create an achievement
// @Tags Achievements
// @Accept json
// @Produce json
// @Param body body CreateAchievementRequest true "Achievement data"
// @Success 201 {object} responses.SuccessResponse{data=Achievement}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /achievements [post]
func (ac *AchievementController) CreateAchievement(c *gin.Context) {
	var req CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	ok, err := ac.repo.TeamExists(req.TeamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check team")
		return
	}
	if !ok {
		responses.BadRequest(c, "Referenced team does not exist")
		return
	}

	a := Achievement{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		TeamID:      req.TeamID,
	}
	if err := ac.repo.Create(&a); err != nil {
		responses.InternalServerError(c, "Failed to create achievement")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Achievement created", a)
}

// UpdateAchievement godoc
// @Summary Update an achievement
// @Tags Achievements
// @Accept json
// @Produce json
// @Param achievement_id path int true "Achievement ID"
// @Param body body UpdateAchievementRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Achievement}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /achievements/{achievement_id} [patch]
func (ac *AchievementController) UpdateAchievement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("achievement_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid achievement ID")
		return
	}

	var req UpdateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	a, err := ac.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch achievement")
		return
	}
	if a == nil {
		responses.NotFound(c, "Achievement")
		return
	}

	if req.TeamID != nil {
		ok, err := ac.repo.TeamExists(*req.TeamID)
		if err != nil {
			responses.InternalServerError(c, "Failed to check team")
			return
		}
		if !ok {
			responses.BadRequest(c, "Referenced team does not exist")
			return
		}
		a.TeamID = *req.TeamID
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Date != nil {
		a.Date = *req.Date
	}

	if err := ac.repo.Update(a); err != nil {
		responses.InternalServerError(c, "Failed to update achievement")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Achievement updated", a)
}

// DeleteAchievement godoc
// @Summary Delete an achievement
// @Tags Achievements
// @Produce json
// @Param achievement_id path int true "Achievement ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /achievements/{achievement_id} [delete]
func (ac *AchievementController) DeleteAchievement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("achievement_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid achievement ID")
		return
	}

	a, err := ac.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch achievement")
		return
	}
	if a == nil {
		responses.NotFound(c, "Achievement")
		return
	}

	if err := ac.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete achievement")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Achievement deleted", nil)
}
