package admin

import (
	"errors"

	"github.com/exoesports/exo-backend/internal/models"
	"github.com/exoesports/exo-backend/internal/player"
	"github.com/exoesports/exo-backend/internal/tryout"
)

var (
	// ErrTryoutNotFound means the request id references nothing.
	ErrTryoutNotFound = errors.New("tryout request not found")
	// ErrTeamNotFound means the destination team does not exist.
	ErrTeamNotFound = errors.New("destination team not found")
	// ErrNoLinkedAccount means the candidate applied anonymously; there is no
	// account to attach the profile to or elevate.
	ErrNoLinkedAccount = errors.New("tryout request has no linked account")
	// ErrRequestRejected means the request was already turned down.
	ErrRequestRejected = errors.New("tryout request was rejected")
	// ErrNameTaken means the resolved in-game name belongs to a different
	// account's player profile.
	ErrNameTaken = errors.New("in-game name is already taken by another player")
)

// RecruitRequest converts a tryout request into a roster slot. Overrides win
// over the values stored on the request.
type RecruitRequest struct {
	TryoutID uint    `json:"tryout_id" binding:"required"`
	TeamID   uint    `json:"team_id" binding:"required"`
	IGN      *string `json:"ign" binding:"omitempty,min=2,max=50"`
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Role     *string `json:"role" binding:"omitempty,max=50"`
}

// RecruitService runs the recruitment workflow: upsert the player profile,
// approve the request, elevate the account. All three land or none do.
type RecruitService struct {
	repo AdminRepository
}

// NewRecruitService creates a new recruit service.
func NewRecruitService(repo AdminRepository) *RecruitService {
	return &RecruitService{repo: repo}
}

// Recruit executes the workflow inside a single transaction. Re-invoking it
// with the same tryout request updates the existing profile (upsert keyed on
// the account) instead of duplicating it.
func (s *RecruitService) Recruit(req RecruitRequest) (*player.Player, error) {
	var result *player.Player

	err := s.repo.WithTransaction(func(tx AdminRepository) error {
		t, err := tx.GetTryout(req.TryoutID)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrTryoutNotFound
		}
		if t.UserID == nil {
			return ErrNoLinkedAccount
		}
		if t.Status == tryout.StatusRejected {
			return ErrRequestRejected
		}

		destTeam, err := tx.GetTeam(req.TeamID)
		if err != nil {
			return err
		}
		if destTeam == nil {
			return ErrTeamNotFound
		}

		ign := t.IGN
		if req.IGN != nil {
			ign = *req.IGN
		}
		name := t.Name
		if req.Name != nil {
			name = *req.Name
		}
		roleLabel := t.Role
		if req.Role != nil {
			roleLabel = *req.Role
		}

		existing, err := tx.GetPlayerByIGN(ign)
		if err != nil {
			return err
		}
		if existing != nil && existing.UserID != *t.UserID {
			return ErrNameTaken
		}

		owner, err := tx.GetUser(*t.UserID)
		if err != nil {
			return err
		}
		if owner == nil {
			return ErrNoLinkedAccount
		}

		teamID := req.TeamID
		p := &player.Player{
			IGN:    ign,
			Name:   name,
			Role:   roleLabel,
			Avatar: owner.Avatar,
			TeamID: &teamID,
			UserID: owner.ID,
		}
		if err := tx.UpsertPlayer(p); err != nil {
			return err
		}
		if err := tx.UpdateTryoutStatus(t.ID, tryout.StatusApproved); err != nil {
			return err
		}
		if err := tx.UpdateUserRole(owner.ID, models.RolePlayer); err != nil {
			return err
		}

		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
