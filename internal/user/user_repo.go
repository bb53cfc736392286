package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/exoesports/exo-backend/internal/models"
)

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	Create(u *User) error
	GetByID(id uint) (*User, error)
	GetByEmail(email string) (*User, error)
	GetAll(page, limit int) ([]User, int64, error)
	Update(u *User) error
	UpdateRole(id uint, role models.Role) error
	Delete(id uint) error

	// Player profile access for the dashboard. Raw table queries keep this
	// package from importing the player package.
	GetPlayerInfo(userID uint) (*PlayerInfo, error)
	GetPlayerOwnerByIGN(ign string) (uint, bool, error)
	UpsertPlayerProfile(userID uint, ign, name, position, avatar string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) GetByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(email string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetAll(page, limit int) ([]User, int64, error) {
	var users []User
	var total int64

	query := r.db.Model(&User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Update(u *User) error {
	return r.db.Save(u).Error
}

func (r *userRepository) UpdateRole(id uint, role models.Role) error {
	return r.db.Model(&User{}).Where("id = ?", id).Update("role", role).Error
}

// Delete removes the account and its dependents in one transaction: the owned
// player profile is soft-deleted and tryout requests keep their history with
// user_id set to NULL.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Table("players").
			Where("user_id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", now).Error; err != nil {
			return err
		}
		if err := tx.Table("tryout_requests").
			Where("user_id = ?", id).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
}

func (r *userRepository) GetPlayerInfo(userID uint) (*PlayerInfo, error) {
	var info PlayerInfo
	err := r.db.Table("players").
		Select("id, ign, name, role, avatar, team_id").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Take(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// GetPlayerOwnerByIGN reports which account holds an in-game name. Removed
// rows count too: they still occupy the ign unique index.
func (r *userRepository) GetPlayerOwnerByIGN(ign string) (uint, bool, error) {
	var row struct{ UserID uint }
	err := r.db.Table("players").
		Select("user_id").
		Where("ign = ?", ign).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return row.UserID, true, nil
}

// UpsertPlayerProfile completes or updates the caller's player profile, keyed
// on user_id. It never touches team_id, so self-service edits cannot move a
// player between rosters. A soft-deleted profile still holds the user_id
// unique index slot; completing the profile again restores it.
func (r *userRepository) UpsertPlayerProfile(userID uint, ign, name, position, avatar string) error {
	now := time.Now()
	return r.db.Table("players").Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"ign":        ign,
			"name":       name,
			"role":       position,
			"avatar":     avatar,
			"updated_at": now,
			"deleted_at": nil,
		}),
	}).Create(map[string]interface{}{
		"user_id":    userID,
		"ign":        ign,
		"name":       name,
		"role":       position,
		"avatar":     avatar,
		"created_at": now,
		"updated_at": now,
	}).Error
}
