package achievement

import (
	"errors"

	"gorm.io/gorm"
)

// AchievementRepository defines the interface for achievement data operations.
type AchievementRepository interface {
	Create(a *Achievement) error
	GetByID(id uint) (*Achievement, error)
	GetAll(teamID *uint) ([]Achievement, error)
	Update(a *Achievement) error
	Delete(id uint) error
	TeamExists(id uint) (bool, error)
}

type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new instance of AchievementRepository.
func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(a *Achievement) error {
	return r.db.Create(a).Error
}

func (r *achievementRepository) GetByID(id uint) (*Achievement, error) {
	var a Achievement
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *achievementRepository) GetAll(teamID *uint) ([]Achievement, error) {
	var achievements []Achievement
	query := r.db.Model(&Achievement{})
	if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	}
	if err := query.Order("date desc").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) Update(a *Achievement) error {
	return r.db.Save(a).Error
}

func (r *achievementRepository) Delete(id uint) error {
	return r.db.Delete(&Achievement{}, id).Error
}

func (r *achievementRepository) TeamExists(id uint) (bool, error) {
	var count int64
	err := r.db.Table("teams").Where("id = ? AND deleted_at IS NULL", id).Count(&count).Error
	return count > 0, err
}
