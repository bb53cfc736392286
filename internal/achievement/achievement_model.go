// achievement/model.go
package achievement

import (
	"time"

	"gorm.io/gorm"
)

// Achievement is a tournament placement or trophy belonging to one team.
type Achievement struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	TeamID      uint      `json:"team_id" gorm:"index;not null"`
}

type CreateAchievementRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"max=1000"`
	Date        time.Time `json:"date"`
	TeamID      uint      `json:"team_id" binding:"required"`
}

type UpdateAchievementRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	Date        *time.Time `json:"date"`
	TeamID      *uint      `json:"team_id"`
}
