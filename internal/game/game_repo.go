package game

import (
	"errors"

	"gorm.io/gorm"
)

// GameRepository defines the interface for game data operations.
type GameRepository interface {
	Create(g *Game) error
	GetByID(id uint) (*Game, error)
	GetByName(name string) (*Game, error)
	GetAll(gameType *GameType) ([]Game, error)
}

type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new instance of GameRepository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(g *Game) error {
	return r.db.Create(g).Error
}

func (r *gameRepository) GetByID(id uint) (*Game, error) {
	var g Game
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) GetByName(name string) (*Game, error) {
	var g Game
	if err := r.db.Where("name = ?", name).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) GetAll(gameType *GameType) ([]Game, error) {
	var games []Game
	query := r.db.Model(&Game{})
	if gameType != nil {
		query = query.Where("type = ?", *gameType)
	}
	if err := query.Order("name asc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
