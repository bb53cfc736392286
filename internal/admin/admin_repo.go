package admin

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/exoesports/exo-backend/internal/achievement"
	"github.com/exoesports/exo-backend/internal/game"
	"github.com/exoesports/exo-backend/internal/models"
	"github.com/exoesports/exo-backend/internal/player"
	"github.com/exoesports/exo-backend/internal/team"
	"github.com/exoesports/exo-backend/internal/tryout"
	"github.com/exoesports/exo-backend/internal/user"
)

// Stats are the back-office dashboard counters, computed at query time.
type Stats struct {
	Users          int64 `json:"users"`
	Players        int64 `json:"players"`
	Teams          int64 `json:"teams"`
	Games          int64 `json:"games"`
	Achievements   int64 `json:"achievements"`
	PendingTryouts int64 `json:"pending_tryouts"`
}

// AdminRepository bundles the cross-entity operations the back-office needs.
// Recruitment runs every mutation through WithTransaction so a failure
// partway leaves zero mutated rows.
type AdminRepository interface {
	GetTryout(id uint) (*tryout.TryoutRequest, error)
	GetTeam(id uint) (*team.Team, error)
	GetUser(id uint) (*user.User, error)
	GetPlayerByIGN(ign string) (*player.Player, error)
	UpsertPlayer(p *player.Player) error
	UpdateTryoutStatus(id uint, status tryout.Status) error
	UpdateUserRole(userID uint, role models.Role) error
	Stats() (*Stats, error)
	WithTransaction(txFunc func(AdminRepository) error) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetTryout(id uint) (*tryout.TryoutRequest, error) {
	var t tryout.TryoutRequest
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *adminRepository) GetTeam(id uint) (*team.Team, error) {
	var t team.Team
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *adminRepository) GetUser(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetPlayerByIGN looks up the profile holding an in-game name. Unscoped: a
// soft-deleted row still occupies the ign unique index, so it still blocks.
func (r *adminRepository) GetPlayerByIGN(ign string) (*player.Player, error) {
	var p player.Player
	if err := r.db.Unscoped().Where("ign = ?", ign).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpsertPlayer creates or updates the profile keyed on the owning account, so
// recruiting the same candidate twice updates one row instead of duplicating.
// deleted_at is in the assignment set: a soft-deleted profile still holds the
// user_id unique index slot, and recruiting that account must restore it.
func (r *adminRepository) UpsertPlayer(p *player.Player) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"ign", "name", "role", "avatar", "team_id", "updated_at", "deleted_at"}),
	}).Create(p).Error
}

func (r *adminRepository) UpdateTryoutStatus(id uint, status tryout.Status) error {
	return r.db.Model(&tryout.TryoutRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (r *adminRepository) UpdateUserRole(userID uint, role models.Role) error {
	return r.db.Model(&user.User{}).Where("id = ?", userID).Update("role", role).Error
}

func (r *adminRepository) Stats() (*Stats, error) {
	var s Stats
	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{r.db.Model(&user.User{}), &s.Users},
		{r.db.Model(&player.Player{}), &s.Players},
		{r.db.Model(&team.Team{}), &s.Teams},
		{r.db.Model(&game.Game{}), &s.Games},
		{r.db.Model(&achievement.Achievement{}), &s.Achievements},
		{r.db.Model(&tryout.TryoutRequest{}).Where("status = ?", tryout.StatusPending), &s.PendingTryouts},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *adminRepository) WithTransaction(txFunc func(AdminRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&adminRepository{db: tx})
	})
}
