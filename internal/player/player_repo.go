package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations.
type PlayerRepository interface {
	GetAll(teamID *uint) ([]Player, error)
	GetByID(id uint) (*Player, error)
	GetByIGN(ign string) (*Player, error)
	Update(p *Player) error
	Delete(id uint) error
	TeamExists(id uint) (bool, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) GetAll(teamID *uint) ([]Player, error) {
	var players []Player
	query := r.db.Model(&Player{})
	if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	}
	if err := query.Order("ign asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetByIGN(ign string) (*Player, error) {
	var p Player
	if err := r.db.Where("ign = ?", ign).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) Update(p *Player) error {
	return r.db.Save(p).Error
}

func (r *playerRepository) Delete(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}

func (r *playerRepository) TeamExists(id uint) (bool, error) {
	var count int64
	err := r.db.Table("teams").Where("id = ? AND deleted_at IS NULL", id).Count(&count).Error
	return count > 0, err
}
