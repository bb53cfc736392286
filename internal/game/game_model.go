// game/model.go
package game

import (
	"gorm.io/gorm"
)

// GameType is the platform a game runs on.
type GameType string

const (
	GameTypeMobile GameType = "mobile"
	GameTypePC     GameType = "pc"
)

func (t GameType) Valid() bool {
	return t == GameTypeMobile || t == GameTypePC
}

// Game represents a title the organization fields teams for.
type Game struct {
	gorm.Model
	Name string   `json:"name" gorm:"uniqueIndex;not null"`
	Type GameType `json:"type" gorm:"type:varchar(10);not null"`
}

type CreateGameRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Type string `json:"type" binding:"required,oneof=mobile pc"`
}
