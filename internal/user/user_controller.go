package user

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/config"
	"github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/uploader"
	"github.com/exoesports/exo-backend/pkg/validator"
)

// UserController handles account listing/removal and the /me dashboard.
type UserController struct {
	repo      UserRepository
	appConfig *config.Config
	uploads   uploader.Uploader
}

// NewUserController creates a new user controller.
func NewUserController(repo UserRepository, appConfig *config.Config, uploads uploader.Uploader) *UserController {
	return &UserController{repo: repo, appConfig: appConfig, uploads: uploads}
}

// GetAllUsers godoc
// @Summary List accounts
// @Description Lists all registered accounts. Admin only.
// @Tags Users
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} responses.SuccessResponse{data=[]UserResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /users [get]
func (uc *UserController) GetAllUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := uc.repo.GetAll(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FilterUserRecord(&users[i]))
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"users": out, "total": total})
}

// DeleteUser godoc
// @Summary Delete an account
// @Description Deletes an account, its player profile, and unlinks its tryout requests. Admin only.
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{user_id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	callerID, _ := middleware.GetUserIDFromContext(c)
	if callerID == uint(id) {
		responses.BadRequest(c, "You cannot delete your own account")
		return
	}

	existing, err := uc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}
	if existing == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := uc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete user")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User deleted", nil)
}

// GetMe godoc
// @Summary Current account profile
// @Description Returns the caller's account and, when present, their player profile.
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=ProfileResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /me [get]
func (uc *UserController) GetMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := uc.repo.GetByID(userID)
	if err != nil || u == nil {
		responses.InternalServerError(c, "Failed to load profile")
		return
	}

	info, err := uc.repo.GetPlayerInfo(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load player profile")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", ProfileResponse{
		UserResponse: FilterUserRecord(u),
		Player:       info,
	})
}

// UpdateMe godoc
// @Summary Update current account profile
// @Description Updates display name, avatar (file, base64, or URL), and player profile fields. Accepts JSON or multipart form. Role and team assignment are never editable here.
// @Tags Users
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=ProfileResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "In-game name already taken"
// @Security ApiKeyAuth
// @Router /me [patch]
func (uc *UserController) UpdateMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := uc.repo.GetByID(userID)
	if err != nil || u == nil {
		responses.InternalServerError(c, "Failed to load profile")
		return
	}

	var req UpdateProfileRequest
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var form UpdateProfileForm
		if err := c.ShouldBind(&form); err != nil {
			responses.SendValidationError(c, "Invalid form payload", validator.ParseError(err))
			return
		}
		req.Name = form.Name
		req.IGN = form.IGN
		req.Position = form.Position

		if file, err := c.FormFile("avatar"); err == nil {
			url, err := uploader.SaveMultipart(uc.uploads, file)
			if err != nil {
				responses.BadRequest(c, "Failed to store avatar: "+err.Error())
				return
			}
			req.Avatar = &url
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
			return
		}
		if req.Avatar != nil {
			url, err := uploader.ResolveImage(uc.uploads, *req.Avatar)
			if err != nil {
				responses.BadRequest(c, "Failed to store avatar: "+err.Error())
				return
			}
			req.Avatar = &url
		}
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if err := uc.repo.Update(u); err != nil {
		responses.InternalServerError(c, "Failed to update profile")
		return
	}

	// Player profile completion: merge with the existing row, keyed on the
	// account. Team assignment stays untouched.
	if req.IGN != nil || req.Position != nil {
		existing, err := uc.repo.GetPlayerInfo(userID)
		if err != nil {
			responses.InternalServerError(c, "Failed to load player profile")
			return
		}

		ign := ""
		position := ""
		if existing != nil {
			ign = existing.IGN
			position = existing.Role
		}
		if req.IGN != nil {
			ign = *req.IGN
		}
		if req.Position != nil {
			position = *req.Position
		}
		if ign == "" {
			responses.BadRequest(c, "An in-game name is required to create a player profile")
			return
		}

		ownerID, taken, err := uc.repo.GetPlayerOwnerByIGN(ign)
		if err != nil {
			responses.InternalServerError(c, "Failed to check in-game name")
			return
		}
		if taken && ownerID != userID {
			responses.Conflict(c, "In-game name is already taken")
			return
		}

		if err := uc.repo.UpsertPlayerProfile(userID, ign, u.Name, position, u.Avatar); err != nil {
			responses.InternalServerError(c, "Failed to update player profile")
			return
		}
	}

	info, _ := uc.repo.GetPlayerInfo(userID)
	responses.SendSuccess(c, http.StatusOK, "Profile updated", ProfileResponse{
		UserResponse: FilterUserRecord(u),
		Player:       info,
	})
}
