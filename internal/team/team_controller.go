package team

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/uploader"
	"github.com/exoesports/exo-backend/pkg/validator"
)

// TeamController handles team-related HTTP requests.
type TeamController struct {
	repo    TeamRepository
	uploads uploader.Uploader
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository, uploads uploader.Uploader) *TeamController {
	return &TeamController{repo: repo, uploads: uploads}
}

// GetAllTeams godoc
// @Summary List teams
// @Description Lists teams with roster sizes; optionally filtered by game.
// @Tags Teams
// @Produce json
// @Param game_id query int false "Filter by game"
// @Success 200 {object} responses.SuccessResponse{data=[]TeamWithCount}
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	var gameID *uint
	if raw := c.Query("game_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid game_id filter")
			return
		}
		v := uint(id)
		gameID = &v
	}

	teams, err := tc.repo.GetAll(gameID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", teams)
}

// GetTeamByID godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamWithCount}
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", t)
}

// CreateTeam godoc
// @Summary Create a team
// @Description Creates a team under a game. The logo may be a base64 payload, a hosted URL, or a multipart file. Admin or manager.
// @Tags Teams
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param body body CreateTeamRequest true "Team data"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Name already exists"
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	var logo string
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var form CreateTeamForm
		if err := c.ShouldBind(&form); err != nil {
			responses.SendValidationError(c, "Invalid form payload", validator.ParseError(err))
			return
		}
		req = CreateTeamRequest{
			Name:      form.Name,
			GameID:    form.GameID,
			Rank:      form.Rank,
			Readiness: form.Readiness,
			Wins:      form.Wins,
		}
		if file, err := c.FormFile("logo"); err == nil {
			url, err := uploader.SaveMultipart(tc.uploads, file)
			if err != nil {
				responses.BadRequest(c, "Failed to store logo: "+err.Error())
				return
			}
			logo = url
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
			return
		}
		url, err := uploader.ResolveImage(tc.uploads, req.Logo)
		if err != nil {
			responses.BadRequest(c, "Failed to store logo: "+err.Error())
			return
		}
		logo = url
	}

	existing, err := tc.repo.GetByName(req.Name)
	if err != nil {
		responses.InternalServerError(c, "Failed to check team name")
		return
	}
	if existing != nil {
		responses.Conflict(c, "A team with this name already exists")
		return
	}

	ok, err := tc.repo.GameExists(req.GameID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check game")
		return
	}
	if !ok {
		responses.BadRequest(c, "Referenced game does not exist")
		return
	}

	t := Team{
		Name:      req.Name,
		Logo:      logo,
		GameID:    req.GameID,
		Rank:      req.Rank,
		Readiness: req.Readiness,
		Wins:      req.Wins,
	}
	if err := tc.repo.Create(&t); err != nil {
		responses.InternalServerError(c, "Failed to create team")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created", t)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param team_id path int true "Team ID"
// @Param body body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id} [patch]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req UpdateTeamRequest
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var form UpdateTeamForm
		if err := c.ShouldBind(&form); err != nil {
			responses.SendValidationError(c, "Invalid form payload", validator.ParseError(err))
			return
		}
		req.Name = form.Name
		req.GameID = form.GameID
		req.Rank = form.Rank
		req.Readiness = form.Readiness
		req.Wins = form.Wins

		if file, err := c.FormFile("logo"); err == nil {
			url, err := uploader.SaveMultipart(tc.uploads, file)
			if err != nil {
				responses.BadRequest(c, "Failed to store logo: "+err.Error())
				return
			}
			req.Logo = &url
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	existing, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if existing == nil {
		responses.NotFound(c, "Team")
		return
	}
	t := existing.Team

	if req.Name != nil && *req.Name != t.Name {
		dup, err := tc.repo.GetByName(*req.Name)
		if err != nil {
			responses.InternalServerError(c, "Failed to check team name")
			return
		}
		if dup != nil {
			responses.Conflict(c, "A team with this name already exists")
			return
		}
		t.Name = *req.Name
	}
	if req.GameID != nil {
		ok, err := tc.repo.GameExists(*req.GameID)
		if err != nil {
			responses.InternalServerError(c, "Failed to check game")
			return
		}
		if !ok {
			responses.BadRequest(c, "Referenced game does not exist")
			return
		}
		t.GameID = *req.GameID
	}
	if req.Logo != nil {
		logo, err := uploader.ResolveImage(tc.uploads, *req.Logo)
		if err != nil {
			responses.BadRequest(c, "Failed to store logo: "+err.Error())
			return
		}
		t.Logo = logo
	}
	if req.Rank != nil {
		t.Rank = *req.Rank
	}
	if req.Readiness != nil {
		t.Readiness = *req.Readiness
	}
	if req.Wins != nil {
		t.Wins = *req.Wins
	}

	if err := tc.repo.Update(&t); err != nil {
		responses.InternalServerError(c, "Failed to update team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated", t)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Deletes a team; its achievements go with it and its players become unassigned. Admin only.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	existing, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if existing == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := tc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted", nil)
}
