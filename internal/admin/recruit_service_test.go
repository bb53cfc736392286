package admin_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/internal/admin"
	"github.com/exoesports/exo-backend/internal/models"
	"github.com/exoesports/exo-backend/internal/player"
	"github.com/exoesports/exo-backend/internal/team"
	"github.com/exoesports/exo-backend/internal/tryout"
	"github.com/exoesports/exo-backend/internal/user"
)

// fakeAdminRepo is an in-memory AdminRepository. WithTransaction snapshots
// state and restores it on error, mirroring a database rollback. Soft-deleted
// players keep their unique-index slots, as they do in the real schema.
type fakeAdminRepo struct {
	tryouts map[uint]*tryout.TryoutRequest
	teams   map[uint]*team.Team
	users   map[uint]*user.User
	players map[uint]*player.Player
	nextID  uint
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		tryouts: make(map[uint]*tryout.TryoutRequest),
		teams:   make(map[uint]*team.Team),
		users:   make(map[uint]*user.User),
		players: make(map[uint]*player.Player),
		nextID:  100,
	}
}

func (f *fakeAdminRepo) clone() *fakeAdminRepo {
	c := newFakeAdminRepo()
	c.nextID = f.nextID
	for id, t := range f.tryouts {
		v := *t
		c.tryouts[id] = &v
	}
	for id, t := range f.teams {
		v := *t
		c.teams[id] = &v
	}
	for id, u := range f.users {
		v := *u
		c.users[id] = &v
	}
	for id, p := range f.players {
		v := *p
		if p.TeamID != nil {
			tid := *p.TeamID
			v.TeamID = &tid
		}
		c.players[id] = &v
	}
	return c
}

func (f *fakeAdminRepo) restore(snapshot *fakeAdminRepo) {
	f.tryouts = snapshot.tryouts
	f.teams = snapshot.teams
	f.users = snapshot.users
	f.players = snapshot.players
	f.nextID = snapshot.nextID
}

func (f *fakeAdminRepo) GetTryout(id uint) (*tryout.TryoutRequest, error) {
	return f.tryouts[id], nil
}

func (f *fakeAdminRepo) GetTeam(id uint) (*team.Team, error) {
	return f.teams[id], nil
}

func (f *fakeAdminRepo) GetUser(id uint) (*user.User, error) {
	return f.users[id], nil
}

func (f *fakeAdminRepo) GetPlayerByIGN(ign string) (*player.Player, error) {
	for _, p := range f.players {
		if p.IGN == ign {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) UpsertPlayer(p *player.Player) error {
	for _, existing := range f.players {
		if existing.UserID == p.UserID {
			existing.IGN = p.IGN
			existing.Name = p.Name
			existing.Role = p.Role
			existing.Avatar = p.Avatar
			existing.TeamID = p.TeamID
			existing.DeletedAt = gorm.DeletedAt{}
			*p = *existing
			return nil
		}
	}
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.players[p.ID] = &cp
	return nil
}

func (f *fakeAdminRepo) UpdateTryoutStatus(id uint, status tryout.Status) error {
	if t, ok := f.tryouts[id]; ok {
		t.Status = status
	}
	return nil
}

func (f *fakeAdminRepo) UpdateUserRole(userID uint, role models.Role) error {
	if u, ok := f.users[userID]; ok {
		u.Role = role
	}
	return nil
}

func (f *fakeAdminRepo) Stats() (*admin.Stats, error) {
	return &admin.Stats{}, nil
}

func (f *fakeAdminRepo) WithTransaction(txFunc func(admin.AdminRepository) error) error {
	snapshot := f.clone()
	if err := txFunc(f); err != nil {
		f.restore(snapshot)
		return err
	}
	return nil
}

func uintPtr(v uint) *uint { return &v }

func seedRepo() *fakeAdminRepo {
	repo := newFakeAdminRepo()
	repo.users[1] = &user.User{Name: "John Doe", Email: "john@example.com", Role: models.RoleUnprivileged}
	repo.users[1].ID = 1
	repo.teams[10] = &team.Team{Name: "Exo Strikers", GameID: 1}
	repo.teams[10].ID = 10
	repo.tryouts[5] = &tryout.TryoutRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		IGN:     "Exo_John",
		Discord: "john#1234",
		Game:    "PUBG Mobile",
		Role:    "IGL",
		Status:  tryout.StatusPending,
		UserID:  uintPtr(1),
	}
	repo.tryouts[5].ID = 5
	return repo
}

func TestRecruit_CreatesPlayerApprovesElevates(t *testing.T) {
	repo := seedRepo()
	svc := admin.NewRecruitService(repo)

	p, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Exo_John", p.IGN)
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, "IGL", p.Role)
	require.NotNil(t, p.TeamID)
	assert.Equal(t, uint(10), *p.TeamID)
	assert.Equal(t, uint(1), p.UserID)

	assert.Equal(t, tryout.StatusApproved, repo.tryouts[5].Status)
	assert.Equal(t, models.RolePlayer, repo.users[1].Role)
	assert.Len(t, repo.players, 1)
}

func TestRecruit_OverridesWinOverStoredValues(t *testing.T) {
	repo := seedRepo()
	svc := admin.NewRecruitService(repo)

	ign := "Exo_Johnny"
	role := "Support"
	p, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10, IGN: &ign, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "Exo_Johnny", p.IGN)
	assert.Equal(t, "Support", p.Role)
}

func TestRecruit_IdempotentOnRepeatedCalls(t *testing.T) {
	repo := seedRepo()
	repo.teams[11] = &team.Team{Name: "Exo Academy", GameID: 1}
	repo.teams[11].ID = 11
	svc := admin.NewRecruitService(repo)

	_, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10})
	require.NoError(t, err)

	// Second call with the same request updates the existing profile; here it
	// moves the player to another team instead of duplicating the row.
	p, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 11})
	require.NoError(t, err)

	assert.Len(t, repo.players, 1)
	require.NotNil(t, p.TeamID)
	assert.Equal(t, uint(11), *p.TeamID)
}

func TestRecruit_NameConflictLeavesNothingMutated(t *testing.T) {
	repo := seedRepo()
	// Another account already owns the in-game name.
	repo.users[2] = &user.User{Name: "Jane", Email: "jane@example.com", Role: models.RolePlayer}
	repo.users[2].ID = 2
	taken := &player.Player{IGN: "Exo_John", Name: "Jane", UserID: 2}
	taken.ID = 50
	repo.players[50] = taken

	svc := admin.NewRecruitService(repo)
	_, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10})
	require.ErrorIs(t, err, admin.ErrNameTaken)

	// Rollback: no new player row, request still pending, role untouched.
	assert.Len(t, repo.players, 1)
	assert.Equal(t, tryout.StatusPending, repo.tryouts[5].Status)
	assert.Equal(t, models.RoleUnprivileged, repo.users[1].Role)
}

func TestRecruit_ReclaimingOwnNameIsNotAConflict(t *testing.T) {
	repo := seedRepo()
	mine := &player.Player{IGN: "Exo_John", Name: "John Doe", UserID: 1}
	mine.ID = 51
	repo.players[51] = mine

	svc := admin.NewRecruitService(repo)
	_, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10})
	require.NoError(t, err)
	assert.Len(t, repo.players, 1)
}

func TestRecruit_RestoresRemovedProfile(t *testing.T) {
	repo := seedRepo()
	removed := &player.Player{IGN: "Old_John", Name: "John Doe", UserID: 1}
	removed.ID = 52
	removed.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	repo.players[52] = removed

	svc := admin.NewRecruitService(repo)
	p, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10})
	require.NoError(t, err)

	// The removed row still held the account's unique slot; recruiting must
	// bring it back as the live profile, not leave an invisible one.
	assert.Len(t, repo.players, 1)
	assert.False(t, repo.players[52].DeletedAt.Valid)
	assert.Equal(t, "Exo_John", p.IGN)
	require.NotNil(t, p.TeamID)
	assert.Equal(t, uint(10), *p.TeamID)
	assert.Equal(t, tryout.StatusApproved, repo.tryouts[5].Status)
	assert.Equal(t, models.RolePlayer, repo.users[1].Role)
}

func TestRecruit_NameHeldByRemovedProfileStillConflicts(t *testing.T) {
	repo := seedRepo()
	repo.users[2] = &user.User{Name: "Jane", Email: "jane@example.com", Role: models.RolePlayer}
	repo.users[2].ID = 2
	ghost := &player.Player{IGN: "Exo_John", Name: "Jane", UserID: 2}
	ghost.ID = 53
	ghost.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	repo.players[53] = ghost

	svc := admin.NewRecruitService(repo)
	_, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10})
	require.ErrorIs(t, err, admin.ErrNameTaken)

	assert.Len(t, repo.players, 1)
	assert.True(t, repo.players[53].DeletedAt.Valid)
	assert.Equal(t, tryout.StatusPending, repo.tryouts[5].Status)
	assert.Equal(t, models.RoleUnprivileged, repo.users[1].Role)
}

func TestRecruit_AnonymousRequestFailsValidation(t *testing.T) {
	repo := seedRepo()
	repo.tryouts[5].UserID = nil

	svc := admin.NewRecruitService(repo)
	_, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10})
	require.ErrorIs(t, err, admin.ErrNoLinkedAccount)
	assert.Equal(t, tryout.StatusPending, repo.tryouts[5].Status)
}

func TestRecruit_RejectedRequestCannotBeRecruited(t *testing.T) {
	repo := seedRepo()
	repo.tryouts[5].Status = tryout.StatusRejected

	svc := admin.NewRecruitService(repo)
	_, err := svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 10})
	require.ErrorIs(t, err, admin.ErrRequestRejected)
}

func TestRecruit_MissingTargets(t *testing.T) {
	repo := seedRepo()
	svc := admin.NewRecruitService(repo)

	_, err := svc.Recruit(admin.RecruitRequest{TryoutID: 99, TeamID: 10})
	require.ErrorIs(t, err, admin.ErrTryoutNotFound)

	_, err = svc.Recruit(admin.RecruitRequest{TryoutID: 5, TeamID: 99})
	require.ErrorIs(t, err, admin.ErrTeamNotFound)
	assert.Equal(t, tryout.StatusPending, repo.tryouts[5].Status)
}
