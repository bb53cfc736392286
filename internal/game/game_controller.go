package game

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/validator"
)

// GameController handles game-related HTTP requests.
type GameController struct {
	repo GameRepository
}

// NewGameController creates a new game controller.
func NewGameController(repo GameRepository) *GameController {
	return &GameController{repo: repo}
}

// GetAllGames godoc
// @Summary List games
// @Tags Games
// @Produce json
// @Param type query string false "mobile | pc"
// @Success 200 {object} responses.SuccessResponse{data=[]Game}
// @Failure 400 {object} responses.ErrorResponse
// @Router /games [get]
func (gc *GameController) GetAllGames(c *gin.Context) {
	var gameType *GameType
	if raw := c.Query("type"); raw != "" {
		t := GameType(raw)
		if !t.Valid() {
			responses.BadRequest(c, "Invalid type filter")
			return
		}
		gameType = &t
	}

	games, err := gc.repo.GetAll(gameType)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch games")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", games)
}

// GetGameByID godoc
// @Summary Get a game
// @Tags Games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=Game}
// @Failure 404 {object} responses.ErrorResponse
// @Router /games/{game_id} [get]
func (gc *GameController) GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("game_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid game ID")
		return
	}

	g, err := gc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch game")
		return
	}
	if g == nil {
		responses.NotFound(c, "Game")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", g)
}

// CreateGame godoc
// @Summary Create a game
// @Description Adds a title to the organization's roster. Admin only.
// @Tags Games
// @Accept json
// @Produce json
// @Param body body CreateGameRequest true "Game data"
// @Success 201 {object} responses.SuccessResponse{data=Game}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Name already exists"
// @Security ApiKeyAuth
// @Router /games [post]
func (gc *GameController) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	existing, err := gc.repo.GetByName(req.Name)
	if err != nil {
		responses.InternalServerError(c, "Failed to check game name")
		return
	}
	if existing != nil {
		responses.Conflict(c, "A game with this name already exists")
		return
	}

	g := Game{Name: req.Name, Type: GameType(req.Type)}
	if err := gc.repo.Create(&g); err != nil {
		responses.InternalServerError(c, "Failed to create game")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Game created", g)
}
