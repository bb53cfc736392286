package team

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTeamRepo struct {
	teams   map[uint]*Team
	games   map[uint]bool
	players map[uint]int64 // team id -> roster size
	nextID  uint
	deleted []uint
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:   make(map[uint]*Team),
		games:   make(map[uint]bool),
		players: make(map[uint]int64),
		nextID:  1,
	}
}

func (f *fakeTeamRepo) Create(t *Team) error {
	t.ID = f.nextID
	f.nextID++
	f.teams[t.ID] = t
	return nil
}

func (f *fakeTeamRepo) GetByID(id uint) (*TeamWithCount, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, nil
	}
	return &TeamWithCount{Team: *t, PlayerCount: f.players[id]}, nil
}

func (f *fakeTeamRepo) GetByName(name string) (*Team, error) {
	for _, t := range f.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTeamRepo) GetAll(gameID *uint) ([]TeamWithCount, error) {
	var out []TeamWithCount
	for id, t := range f.teams {
		if gameID == nil || t.GameID == *gameID {
			out = append(out, TeamWithCount{Team: *t, PlayerCount: f.players[id]})
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) Update(t *Team) error {
	f.teams[t.ID] = t
	return nil
}

func (f *fakeTeamRepo) Delete(id uint) error {
	delete(f.teams, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeTeamRepo) GameExists(id uint) (bool, error) {
	return f.games[id], nil
}

type noopUploader struct{}

func (noopUploader) Store(ext string, data []byte) (string, error) {
	return "/public/uploads/stored" + ext, nil
}

func setupTeamRouter(repo TeamRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewTeamController(repo, noopUploader{})
	r := gin.New()
	r.GET("/teams", controller.GetAllTeams)
	r.GET("/teams/:team_id", controller.GetTeamByID)
	r.POST("/teams", controller.CreateTeam)
	r.PATCH("/teams/:team_id", controller.UpdateTeam)
	r.DELETE("/teams/:team_id", controller.DeleteTeam)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTeam_Success(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.games[1] = true
	r := setupTeamRouter(repo)

	w := postJSON(t, r, http.MethodPost, "/teams", gin.H{
		"name":    "Exo Strikers",
		"game_id": 1,
		"logo":    "https://cdn.example.com/strikers.png",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.teams, 1)
	assert.Equal(t, "https://cdn.example.com/strikers.png", repo.teams[1].Logo)
}

func TestCreateTeam_DuplicateName(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.games[1] = true
	repo.Create(&Team{Name: "Exo Strikers", GameID: 1})
	r := setupTeamRouter(repo)

	w := postJSON(t, r, http.MethodPost, "/teams", gin.H{"name": "Exo Strikers", "game_id": 1})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, repo.teams, 1)
}

func TestCreateTeam_UnknownGame(t *testing.T) {
	repo := newFakeTeamRepo()
	r := setupTeamRouter(repo)

	w := postJSON(t, r, http.MethodPost, "/teams", gin.H{"name": "Exo Strikers", "game_id": 9})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.teams)
}

func TestCreateTeam_ReadinessOutOfRange(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.games[1] = true
	r := setupTeamRouter(repo)

	w := postJSON(t, r, http.MethodPost, "/teams", gin.H{"name": "Exo Strikers", "game_id": 1, "readiness": 150})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTeamByID_IncludesRosterSize(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.games[1] = true
	repo.Create(&Team{Name: "Exo Strikers", GameID: 1})
	repo.players[1] = 5
	r := setupTeamRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/teams/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data TeamWithCount `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Data.PlayerCount)
}

func TestGetTeamByID_NotFound(t *testing.T) {
	repo := newFakeTeamRepo()
	r := setupTeamRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/teams/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTeam_RenameToTakenNameConflicts(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.games[1] = true
	repo.Create(&Team{Name: "Exo Strikers", GameID: 1})
	repo.Create(&Team{Name: "Exo Academy", GameID: 1})
	r := setupTeamRouter(repo)

	w := postJSON(t, r, http.MethodPatch, "/teams/2", gin.H{"name": "Exo Strikers"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Exo Academy", repo.teams[2].Name)
}

func TestDeleteTeam(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.games[1] = true
	repo.Create(&Team{Name: "Exo Strikers", GameID: 1})
	r := setupTeamRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/teams/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{1}, repo.deleted)

	req = httptest.NewRequest(http.MethodDelete, "/teams/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
