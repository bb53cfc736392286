package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/internal/models"
)

// User is an account (identity). Role elevation to "player" happens only
// through recruitment, never through self-service profile edits.
type User struct {
	gorm.Model
	Name     string      `json:"name" gorm:"not null"`
	Email    string      `json:"email" gorm:"uniqueIndex;not null"`
	Password string      `json:"-" gorm:"not null"`
	Role     models.Role `json:"role" gorm:"type:varchar(20);not null;default:'unprivileged';index"`
	Avatar   string      `json:"avatar"`
}

// PlayerInfo is the slice of the owned player profile shown on the dashboard.
// Scanned from the players table directly; the player package owns the model.
type PlayerInfo struct {
	ID     uint   `json:"id"`
	IGN    string `json:"ign"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	TeamID *uint  `json:"team_id"`
}

// UpdateProfileRequest is the JSON shape of PATCH /me. IGN and Position
// complete or update the caller's player profile; account role and team
// assignment are deliberately absent.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Avatar   *string `json:"avatar,omitempty"` // base64, data URI, or hosted URL
	IGN      *string `json:"ign,omitempty" binding:"omitempty,min=2,max=50"`
	Position *string `json:"position,omitempty" binding:"omitempty,max=50"`
}

// UpdateProfileForm is the multipart shape of PATCH /me.
type UpdateProfileForm struct {
	Name     *string `form:"name" binding:"omitempty,min=2,max=100"`
	IGN      *string `form:"ign" binding:"omitempty,min=2,max=50"`
	Position *string `form:"position" binding:"omitempty,max=50"`
}

type UserResponse struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Avatar    string      `json:"avatar"`
	CreatedAt time.Time   `json:"created_at"`
}

// ProfileResponse is the /me payload: the account plus the owned player
// profile, when one exists.
type ProfileResponse struct {
	UserResponse
	Player *PlayerInfo `json:"player,omitempty"`
}

func FilterUserRecord(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
