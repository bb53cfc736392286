package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/uploader"
	"github.com/exoesports/exo-backend/pkg/validator"
)

// PlayerController handles player-related HTTP requests.
type PlayerController struct {
	repo    PlayerRepository
	uploads uploader.Uploader
}

// NewPlayerController creates a new player controller.
func NewPlayerController(repo PlayerRepository, uploads uploader.Uploader) *PlayerController {
	return &PlayerController{repo: repo, uploads: uploads}
}

// GetAllPlayers godoc
// @Summary List players
// @Description Lists player profiles; optionally filtered by team.
// @Tags Players
// @Produce json
// @Param team_id query int false "Filter by team"
// @Success 200 {object} responses.SuccessResponse{data=[]Player}
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
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

	players, err := pc.repo.GetAll(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", players)
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Description Edits profile fields or reassigns the roster slot. Admin or manager.
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param body body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "In-game name already taken"
// @Security ApiKeyAuth
// @Router /players/{player_id} [patch]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if req.IGN != nil && *req.IGN != p.IGN {
		dup, err := pc.repo.GetByIGN(*req.IGN)
		if err != nil {
			responses.InternalServerError(c, "Failed to check in-game name")
			return
		}
		if dup != nil {
			responses.Conflict(c, "In-game name is already taken")
			return
		}
		p.IGN = *req.IGN
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Role != nil {
		p.Role = *req.Role
	}
	if req.Avatar != nil {
		url, err := uploader.ResolveImage(pc.uploads, *req.Avatar)
		if err != nil {
			responses.BadRequest(c, "Failed to store avatar: "+err.Error())
			return
		}
		p.Avatar = url
	}
	if req.TeamID != nil {
		if *req.TeamID == 0 {
			p.TeamID = nil // back to the unassigned state
		} else {
			ok, err := pc.repo.TeamExists(*req.TeamID)
			if err != nil {
				responses.InternalServerError(c, "Failed to check team")
				return
			}
			if !ok {
				responses.BadRequest(c, "Referenced team does not exist")
				return
			}
			p.TeamID = req.TeamID
		}
	}

	if err := pc.repo.Update(p); err != nil {
		responses.InternalServerError(c, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Description Removes a player profile. The owning account keeps its role. Admin or manager.
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if err := pc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted", nil)
}
