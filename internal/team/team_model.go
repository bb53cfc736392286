// team/model.go
package team

import (
	"gorm.io/gorm"
)

// Team represents a competitive roster for one game.
type Team struct {
	gorm.Model
	Name      string `json:"name" gorm:"uniqueIndex;not null"`
	Logo      string `json:"logo"`
	Wins      int    `json:"wins" gorm:"default:0"`
	Rank      string `json:"rank"`
	Readiness int    `json:"readiness" gorm:"default:0"` // tournament readiness, 0-100
	GameID    uint   `json:"game_id" gorm:"index;not null"`
}

// TeamWithCount carries the roster size computed at query time; the count is
// never maintained incrementally.
type TeamWithCount struct {
	Team
	PlayerCount int64 `json:"player_count"`
}

type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Logo      string `json:"logo"` // base64, data URI, or hosted URL
	GameID    uint   `json:"game_id" binding:"required"`
	Rank      string `json:"rank" binding:"max=50"`
	Readiness int    `json:"readiness" binding:"gte=0,lte=100"`
	Wins      int    `json:"wins" binding:"gte=0"`
}

type UpdateTeamRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	Logo      *string `json:"logo"`
	GameID    *uint   `json:"game_id"`
	Rank      *string `json:"rank" binding:"omitempty,max=50"`
	Readiness *int    `json:"readiness" binding:"omitempty,gte=0,lte=100"`
	Wins      *int    `json:"wins" binding:"omitempty,gte=0"`
}

// CreateTeamForm is the multipart shape of POST /teams; the logo arrives as a
// form file instead of a string payload.
type CreateTeamForm struct {
	Name      string `form:"name" binding:"required,min=2,max=100"`
	GameID    uint   `form:"game_id" binding:"required"`
	Rank      string `form:"rank" binding:"max=50"`
	Readiness int    `form:"readiness" binding:"gte=0,lte=100"`
	Wins      int    `form:"wins" binding:"gte=0"`
}

// UpdateTeamForm is the multipart shape of PATCH /teams/:team_id.
type UpdateTeamForm struct {
	Name      *string `form:"name" binding:"omitempty,min=2,max=100"`
	GameID    *uint   `form:"game_id"`
	Rank      *string `form:"rank" binding:"omitempty,max=50"`
	Readiness *int    `form:"readiness" binding:"omitempty,gte=0,lte=100"`
	Wins      *int    `form:"wins" binding:"omitempty,gte=0"`
}
