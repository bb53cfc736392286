package team

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(t *Team) error
	GetByID(id uint) (*TeamWithCount, error)
	GetByName(name string) (*Team, error)
	GetAll(gameID *uint) ([]TeamWithCount, error)
	Update(t *Team) error
	Delete(id uint) error
	GameExists(id uint) (bool, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(t *Team) error {
	return r.db.Create(t).Error
}

func (r *teamRepository) GetByID(id uint) (*TeamWithCount, error) {
	var t TeamWithCount
	err := r.withPlayerCount().Where("teams.id = ?", id).Take(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetByName(name string) (*Team, error) {
	var t Team
	if err := r.db.Where("name = ?", name).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetAll(gameID *uint) ([]TeamWithCount, error) {
	var teams []TeamWithCount
	query := r.withPlayerCount()
	if gameID != nil {
		query = query.Where("teams.game_id = ?", *gameID)
	}
	if err := query.Order("teams.created_at desc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// withPlayerCount joins the roster size into team rows at query time.
func (r *teamRepository) withPlayerCount() *gorm.DB {
	return r.db.Model(&Team{}).
		Select("teams.*, count(players.id) AS player_count").
		Joins("LEFT JOIN players ON players.team_id = teams.id AND players.deleted_at IS NULL").
		Group("teams.id")
}

func (r *teamRepository) Update(t *Team) error {
	return r.db.Save(t).Error
}

// Delete removes a team and its dependents in one transaction: achievements
// are soft-deleted with it, players stay but drop to the unassigned state.
func (r *teamRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("achievements").
			Where("team_id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", time.Now()).Error; err != nil {
			return err
		}
		if err := tx.Table("players").
			Where("team_id = ? AND deleted_at IS NULL", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, id).Error
	})
}

func (r *teamRepository) GameExists(id uint) (bool, error) {
	var count int64
	err := r.db.Table("games").Where("id = ? AND deleted_at IS NULL", id).Count(&count).Error
	return count > 0, err
}
