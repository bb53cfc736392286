package user

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoesports/exo-backend/config"
	"github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/internal/models"
)

type profileUpsert struct {
	userID   uint
	ign      string
	name     string
	position string
	avatar   string
}

type fakeUserRepo struct {
	users   map[uint]*User
	players map[uint]*PlayerInfo // keyed by owning user id
	owners  map[string]uint      // ign -> owning user id, removed rows included
	listErr error
	upserts []profileUpsert
	deleted []uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[uint]*User),
		players: make(map[uint]*PlayerInfo),
		owners:  make(map[string]uint),
	}
}

func (f *fakeUserRepo) Create(u *User) error { f.users[u.ID] = u; return nil }

func (f *fakeUserRepo) GetByID(id uint) (*User, error) { return f.users[id], nil }

func (f *fakeUserRepo) GetByEmail(email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll(page, limit int) ([]User, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var out []User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(u *User) error { f.users[u.ID] = u; return nil }

func (f *fakeUserRepo) UpdateRole(id uint, role models.Role) error {
	if u, ok := f.users[id]; ok {
		u.Role = role
	}
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUserRepo) GetPlayerInfo(userID uint) (*PlayerInfo, error) {
	return f.players[userID], nil
}

func (f *fakeUserRepo) GetPlayerOwnerByIGN(ign string) (uint, bool, error) {
	owner, ok := f.owners[ign]
	return owner, ok, nil
}

func (f *fakeUserRepo) UpsertPlayerProfile(userID uint, ign, name, position, avatar string) error {
	f.upserts = append(f.upserts, profileUpsert{userID, ign, name, position, avatar})
	f.players[userID] = &PlayerInfo{ID: userID, IGN: ign, Name: name, Role: position, Avatar: avatar}
	f.owners[ign] = userID
	return nil
}

type noopUploader struct{}

func (noopUploader) Store(ext string, data []byte) (string, error) {
	return "/public/uploads/stored" + ext, nil
}

func setupUserRouter(repo UserRepository, sessionUserID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewUserController(repo, &config.Config{}, noopUploader{})
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if sessionUserID != 0 {
			c.Set(middleware.AuthUserIDKey, sessionUserID)
		}
		c.Next()
	})
	r.GET("/users", controller.GetAllUsers)
	r.DELETE("/users/:user_id", controller.DeleteUser)
	r.GET("/me", controller.GetMe)
	r.PATCH("/me", controller.UpdateMe)
	return r
}

func seedAccount(repo *fakeUserRepo, id uint, name string) *User {
	u := &User{Name: name, Email: name + "@example.com", Role: models.RoleUnprivileged}
	u.ID = id
	repo.users[id] = u
	return u
}

func patchMe(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/me", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAllUsers_RepoFailurePropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.listErr = errors.New("connection refused")
	r := setupUserRouter(repo, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDeleteUser_SelfDeleteBlocked(t *testing.T) {
	repo := newFakeUserRepo()
	seedAccount(repo, 1, "admin")
	r := setupUserRouter(repo, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.deleted)
}

func TestUpdateMe_CompletesPlayerProfile(t *testing.T) {
	repo := newFakeUserRepo()
	seedAccount(repo, 1, "john")
	r := setupUserRouter(repo, 1)

	w := patchMe(r, `{"ign":"Exo_John","position":"IGL"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, repo.upserts, 1)
	assert.Equal(t, uint(1), repo.upserts[0].userID)
	assert.Equal(t, "Exo_John", repo.upserts[0].ign)
	assert.Equal(t, "IGL", repo.upserts[0].position)
}

func TestUpdateMe_NameHeldByAnotherAccountConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	seedAccount(repo, 1, "john")
	seedAccount(repo, 2, "jane")
	// Includes names held by removed profiles: the slot is still occupied.
	repo.owners["Exo_John"] = 2
	r := setupUserRouter(repo, 1)

	w := patchMe(r, `{"ign":"Exo_John"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, repo.upserts)
}

func TestUpdateMe_ReclaimingOwnNameSucceeds(t *testing.T) {
	repo := newFakeUserRepo()
	seedAccount(repo, 1, "john")
	repo.owners["Exo_John"] = 1
	r := setupUserRouter(repo, 1)

	w := patchMe(r, `{"ign":"Exo_John"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, repo.upserts, 1)
}

func TestUpdateMe_PositionAloneNeedsExistingIGN(t *testing.T) {
	repo := newFakeUserRepo()
	seedAccount(repo, 1, "john")
	r := setupUserRouter(repo, 1)

	w := patchMe(r, `{"position":"Support"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.upserts)
}
