// player/model.go
package player

import (
	"gorm.io/gorm"
)

// Player is the in-game persona linked to exactly one account. TeamID is
// nullable: an unassigned player is a valid state.
type Player struct {
	gorm.Model
	IGN    string `json:"ign" gorm:"uniqueIndex;not null"`
	Name   string `json:"name" gorm:"not null"`
	Role   string `json:"role"` // position label, e.g. "IGL", "Entry Fragger"
	Avatar string `json:"avatar"`
	TeamID *uint  `json:"team_id" gorm:"index"`
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`
}

// UpdatePlayerRequest is the PATCH shape. TeamID 0 clears the assignment.
type UpdatePlayerRequest struct {
	IGN    *string `json:"ign" binding:"omitempty,min=2,max=50"`
	Name   *string `json:"name" binding:"omitempty,min=2,max=100"`
	Role   *string `json:"role" binding:"omitempty,max=50"`
	Avatar *string `json:"avatar"` // base64, data URI, or hosted URL
	TeamID *uint   `json:"team_id"`
}
