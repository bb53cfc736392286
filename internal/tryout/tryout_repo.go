package tryout

import (
	"errors"

	"gorm.io/gorm"
)

// TryoutRepository defines the interface for tryout request data operations.
type TryoutRepository interface {
	Create(t *TryoutRequest) error
	GetByID(id uint) (*TryoutRequest, error)
	GetAll(status *Status) ([]TryoutRequest, error)
	UpdateStatus(id uint, status Status) error
}

type tryoutRepository struct {
	db *gorm.DB
}

// NewTryoutRepository creates a new instance of TryoutRepository.
func NewTryoutRepository(db *gorm.DB) TryoutRepository {
	return &tryoutRepository{db: db}
}

func (r *tryoutRepository) Create(t *TryoutRequest) error {
	return r.db.Create(t).Error
}

func (r *tryoutRepository) GetByID(id uint) (*TryoutRequest, error) {
	var t TryoutRequest
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tryoutRepository) GetAll(status *Status) ([]TryoutRequest, error) {
	var requests []TryoutRequest
	query := r.db.Model(&TryoutRequest{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *tryoutRepository) UpdateStatus(id uint, status Status) error {
	return r.db.Model(&TryoutRequest{}).Where("id = ?", id).Update("status", status).Error
}
