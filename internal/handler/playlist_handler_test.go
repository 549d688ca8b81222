package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egasa21/open-music-api-v2/internal/domain"
	"github.com/egasa21/open-music-api-v2/internal/service"
)

// 内存仓储桩，固定一份数据：playlist-1 属于 user-owner，
// user-collab 是协作者，song-1 存在。

type memPlaylists struct {
	byID map[string]*domain.Playlist
}

func (m *memPlaylists) Create(ctx context.Context, p *domain.Playlist) (string, error) {
	m.byID[p.ID] = p
	return p.ID, nil
}

func (m *memPlaylists) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	return p, nil
}

func (m *memPlaylists) GetInfo(ctx context.Context, id string) (*domain.PlaylistInfo, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	return &domain.PlaylistInfo{ID: p.ID, Name: p.Name, Username: "owner"}, nil
}

func (m *memPlaylists) ListForUser(ctx context.Context, userID string) ([]*domain.PlaylistInfo, error) {
	var infos []*domain.PlaylistInfo
	for _, p := range m.byID {
		if p.OwnerID == userID {
			infos = append(infos, &domain.PlaylistInfo{ID: p.ID, Name: p.Name, Username: "owner"})
		}
	}
	return infos, nil
}

func (m *memPlaylists) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrPlaylistNotFound
	}
	delete(m.byID, id)
	return nil
}

type memPlaylistSongs struct {
	rows []*domain.PlaylistSong
}

func (m *memPlaylistSongs) Insert(ctx context.Context, tx pgx.Tx, ps *domain.PlaylistSong) (string, error) {
	m.rows = append(m.rows, ps)
	return ps.ID, nil
}

func (m *memPlaylistSongs) Delete(ctx context.Context, tx pgx.Tx, playlistID, songID string) (int64, error) {
	var kept []*domain.PlaylistSong
	var deleted int64
	for _, row := range m.rows {
		if row.PlaylistID == playlistID && row.SongID == songID {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	m.rows = kept
	return deleted, nil
}

func (m *memPlaylistSongs) ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.SongEntry, error) {
	entries := []*domain.SongEntry{}
	for _, row := range m.rows {
		if row.PlaylistID == playlistID {
			entries = append(entries, &domain.SongEntry{ID: row.SongID, Title: "Life in Technicolor", Performer: "Coldplay"})
		}
	}
	return entries, nil
}

type memActivities struct {
	rows []*domain.Activity
}

func (m *memActivities) Insert(ctx context.Context, tx pgx.Tx, a *domain.Activity) (string, error) {
	m.rows = append(m.rows, a)
	return a.ID, nil
}

func (m *memActivities) ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.ActivityEntry, error) {
	entries := []*domain.ActivityEntry{}
	for _, row := range m.rows {
		if row.PlaylistID == playlistID {
			entries = append(entries, &domain.ActivityEntry{
				Username: row.UserID,
				Title:    row.SongID,
				Action:   row.Action,
				Time:     row.Time,
			})
		}
	}
	return entries, nil
}

type stubSongVerifier struct {
	known map[string]bool
}

func (s *stubSongVerifier) VerifyExists(ctx context.Context, songID string) error {
	if !s.known[songID] {
		return domain.ErrSongNotFound
	}
	return nil
}

type stubCollaboratorVerifier struct {
	collabs map[string]bool // playlistID:userID
}

func (s *stubCollaboratorVerifier) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	if !s.collabs[playlistID+":"+userID] {
		return domain.ErrNotCollaborator
	}
	return nil
}

type passthroughTx struct{}

func (passthroughTx) ExecTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

func newTestRouter(t *testing.T) (*gin.Engine, *memActivities) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	playlists := &memPlaylists{byID: map[string]*domain.Playlist{
		"playlist-1": {ID: "playlist-1", Name: "Mixtape", OwnerID: "user-owner"},
	}}
	activities := &memActivities{}
	svc := service.NewPlaylistService(
		playlists,
		&memPlaylistSongs{},
		activities,
		&stubSongVerifier{known: map[string]bool{"song-1": true}},
		&stubCollaboratorVerifier{collabs: map[string]bool{"playlist-1:user-collab": true}},
		passthroughTx{},
	)
	h := NewPlaylistHandler(svc)

	r := gin.New()
	// 测试路由直接从请求头注入用户身份，绕过JWT校验
	r.Use(func(c *gin.Context) {
		c.Set("user_id", c.GetHeader("X-Test-User"))
	})
	r.POST("/playlists", h.CreatePlaylist)
	r.GET("/playlists", h.ListPlaylists)
	r.DELETE("/playlists/:id", h.DeletePlaylist)
	r.POST("/playlists/:id/songs", h.AddSong)
	r.GET("/playlists/:id/songs", h.ListSongs)
	r.DELETE("/playlists/:id/songs", h.RemoveSong)
	r.GET("/playlists/:id/activities", h.ListActivities)
	return r, activities
}

func doJSON(t *testing.T, r *gin.Engine, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", userID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPlaylistHandler_AddSong_Owner(t *testing.T) {
	r, activities := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists/playlist-1/songs", "user-owner", gin.H{"songId": "song-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	require.Len(t, activities.rows, 1)
	assert.Equal(t, domain.ActivityAdd, activities.rows[0].Action)
	assert.Equal(t, "user-owner", activities.rows[0].UserID)
}

func TestPlaylistHandler_AddSong_Collaborator(t *testing.T) {
	r, activities := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists/playlist-1/songs", "user-collab", gin.H{"songId": "song-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	// 活动记录归属于操作者而非所有者
	require.Len(t, activities.rows, 1)
	assert.Equal(t, "user-collab", activities.rows[0].UserID)
}

func TestPlaylistHandler_AddSong_Forbidden(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists/playlist-1/songs", "user-stranger", gin.H{"songId": "song-1"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "fail", body["status"])
	assert.Equal(t, "you have no access to this playlist", body["message"])
}

func TestPlaylistHandler_AddSong_PlaylistNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists/playlist-missing/songs", "user-owner", gin.H{"songId": "song-1"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "fail", decodeBody(t, w)["status"])
}

func TestPlaylistHandler_AddSong_SongNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists/playlist-1/songs", "user-owner", gin.H{"songId": "song-missing"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaylistHandler_AddSong_MissingBody(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists/playlist-1/songs", "user-owner", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "fail", decodeBody(t, w)["status"])
}

func TestPlaylistHandler_RemoveSong_NotInPlaylist(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/playlists/playlist-1/songs", "user-owner", gin.H{"songId": "song-1"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaylistHandler_AddThenRemoveSong(t *testing.T) {
	r, activities := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists/playlist-1/songs", "user-owner", gin.H{"songId": "song-1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/playlists/playlist-1/songs", "user-collab", gin.H{"songId": "song-1"})
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, activities.rows, 2)
	assert.Equal(t, domain.ActivityDelete, activities.rows[1].Action)
	assert.Equal(t, "user-collab", activities.rows[1].UserID)
}

func TestPlaylistHandler_ListSongs(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists/playlist-1/songs", "user-owner", gin.H{"songId": "song-1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/playlists/playlist-1/songs", "user-owner", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	playlist := data["playlist"].(map[string]any)
	assert.Equal(t, "playlist-1", playlist["id"])
	assert.Len(t, playlist["songs"], 1)
}

func TestPlaylistHandler_ListActivities_Empty(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/playlists/playlist-1/activities", "user-owner", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, "playlist-1", data["playlistId"])
	assert.Empty(t, data["activities"])
}

func TestPlaylistHandler_DeletePlaylist_CollaboratorForbidden(t *testing.T) {
	r, _ := newTestRouter(t)

	// 协作者不是所有者，无权删除歌单
	w := doJSON(t, r, http.MethodDelete, "/playlists/playlist-1", "user-collab", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlaylistHandler_CreateAndList(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/playlists", "user-owner", gin.H{"name": "Lagu Indie Hits Indonesia"})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["playlistId"])

	w = doJSON(t, r, http.MethodGet, "/playlists", "user-owner", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody(t, w)["data"].(map[string]any)
	assert.Len(t, list["playlists"], 2)
}
