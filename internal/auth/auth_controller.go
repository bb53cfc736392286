package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/config"
	"github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/internal/models"
	"github.com/exoesports/exo-backend/internal/user"
	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/token"
	"github.com/exoesports/exo-backend/pkg/validator"
	"github.com/exoesports/exo-backend/utils"
)

// AuthController issues and clears the session cookie. Social login and email
// verification live with the external auth provider, not here.
type AuthController struct {
	users     user.UserRepository
	appConfig *config.Config
}

// NewAuthController creates a new auth controller.
func NewAuthController(users user.UserRepository, appConfig *config.Config) *AuthController {
	return &AuthController{users: users, appConfig: appConfig}
}

// Register godoc
// @Summary Register a new account
// @Description Creates an account with the unprivileged role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	existing, err := ac.users.GetByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to check email")
		return
	}
	if existing != nil {
		responses.Conflict(c, "Email is already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash password")
		return
	}

	u := user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleUnprivileged,
	}
	if err := ac.users.Create(&u); err != nil {
		responses.InternalServerError(c, "Failed to create account")
		return
	}

	ac.issueSession(c, &u, http.StatusCreated, "Account created")
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials, sets the session cookie, and returns the token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	u, err := ac.users.GetByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up account")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	ac.issueSession(c, u, http.StatusOK, "Logged in")
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ac.appConfig.App.Env == "production", true)
	responses.SendSuccess(c, http.StatusOK, "Logged out", nil)
}

func (ac *AuthController) issueSession(c *gin.Context, u *user.User, status int, message string) {
	tok, err := token.Generate(u.ID, u.Role.String(), ac.appConfig.JWT.SessionSecret, ac.appConfig.JWT.SessionExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue session")
		return
	}

	maxAge := ac.appConfig.JWT.SessionExpiryMinutes * 60
	c.SetCookie(middleware.SessionCookieName, tok, maxAge, "/", "", ac.appConfig.App.Env == "production", true)

	responses.SendSuccess(c, status, message, AuthResponse{
		Token: tok,
		User:  user.FilterUserRecord(u),
	})
}
