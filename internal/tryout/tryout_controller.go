package tryout

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/responses"
	"github.com/exoesports/exo-backend/pkg/validator"
)

// TryoutController handles tryout request HTTP endpoints.
type TryoutController struct {
	repo TryoutRepository
}

// NewTryoutController creates a new tryout controller.
func NewTryoutController(repo TryoutRepository) *TryoutController {
	return &TryoutController{repo: repo}
}

// CreateTryout godoc
// @Summary Submit a tryout request
// @Description Public submission. If the visitor is signed in, the request is linked to their account; anonymous submissions get user_id = null.
// @Tags Tryouts
// @Accept json
// @Produce json
// @Param body body CreateTryoutRequest true "Application data"
// @Success 201 {object} responses.SuccessResponse{data=TryoutRequest}
// @Failure 400 {object} responses.ErrorResponse
// @Router /tryouts [post]
func (tc *TryoutController) CreateTryout(c *gin.Context) {
	var req CreateTryoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	t := TryoutRequest{
		Name:    req.Name,
		Email:   req.Email,
		IGN:     req.IGN,
		Discord: req.Discord,
		Game:    req.Game,
		Role:    req.Role,
		Status:  StatusPending,
	}

	// OptionalAuth ran before us; link the submitter's account when present.
	if userID, err := middleware.GetUserIDFromContext(c); err == nil {
		t.UserID = &userID
	}

	if err := tc.repo.Create(&t); err != nil {
		responses.InternalServerError(c, "Failed to submit tryout request")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Tryout request submitted", t)
}

// GetAllTryouts godoc
// @Summary List tryout requests
// @Description Lists applications, optionally filtered by status. Admin or manager.
// @Tags Tryouts
// @Produce json
// @Param status query string false "pending | approved | rejected"
// @Success 200 {object} responses.SuccessResponse{data=[]TryoutRequest}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /tryouts [get]
func (tc *TryoutController) GetAllTryouts(c *gin.Context) {
	var status *Status
	if raw := c.Query("status"); raw != "" {
		s := Status(raw)
		if !s.Valid() {
			responses.BadRequest(c, "Invalid status filter")
			return
		}
		status = &s
	}

	requests, err := tc.repo.GetAll(status)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tryout requests")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", requests)
}

// UpdateTryoutStatus godoc
// @Summary Update a tryout request's status
// @Description Moves a pending request to approved or rejected. Approved and rejected are terminal. Admin only.
// @Tags Tryouts
// @Accept json
// @Produce json
// @Param tryout_id path int true "Tryout request ID"
// @Param body body UpdateTryoutStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse{data=TryoutRequest}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Request already processed"
// @Security ApiKeyAuth
// @Router /tryouts/{tryout_id} [patch]
func (tc *TryoutController) UpdateTryoutStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("tryout_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tryout request ID")
		return
	}

	// Validation happens before any storage access.
	var req UpdateTryoutStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	newStatus := Status(req.Status)

	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tryout request")
		return
	}
	if t == nil {
		responses.NotFound(c, "Tryout request")
		return
	}

	if newStatus == t.Status {
		// Re-asserting the current state is a no-op, not a transition.
		responses.SendSuccess(c, http.StatusOK, "", t)
		return
	}
	if t.Status.Terminal() {
		responses.Conflict(c, "Tryout request has already been processed")
		return
	}

	if err := tc.repo.UpdateStatus(uint(id), newStatus); err != nil {
		responses.InternalServerError(c, "Failed to update tryout request")
		return
	}
	t.Status = newStatus
	responses.SendSuccess(c, http.StatusOK, "Tryout request updated", t)
}
