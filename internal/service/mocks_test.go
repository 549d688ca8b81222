package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/egasa21/open-music-api-v2/internal/domain"
)

// MockPlaylistRepository 歌单仓储Mock
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) (string, error) {
	args := m.Called(ctx, playlist)
	return args.String(0), args.Error(1)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetInfo(ctx context.Context, id string) (*domain.PlaylistInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistInfo), args.Error(1)
}

func (m *MockPlaylistRepository) ListForUser(ctx context.Context, userID string) ([]*domain.PlaylistInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlaylistInfo), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlaylistSongRepository 歌单歌曲仓储Mock
type MockPlaylistSongRepository struct {
	mock.Mock
}

func (m *MockPlaylistSongRepository) Insert(ctx context.Context, tx pgx.Tx, ps *domain.PlaylistSong) (string, error) {
	args := m.Called(ctx, tx, ps)
	return args.String(0), args.Error(1)
}

func (m *MockPlaylistSongRepository) Delete(ctx context.Context, tx pgx.Tx, playlistID, songID string) (int64, error) {
	args := m.Called(ctx, tx, playlistID, songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlaylistSongRepository) ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.SongEntry, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SongEntry), args.Error(1)
}

// MockActivityRepository 歌单活动仓储Mock
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Insert(ctx context.Context, tx pgx.Tx, activity *domain.Activity) (string, error) {
	args := m.Called(ctx, tx, activity)
	return args.String(0), args.Error(1)
}

func (m *MockActivityRepository) ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.ActivityEntry, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ActivityEntry), args.Error(1)
}

// MockCollaborationRepository 协作授权仓储Mock
type MockCollaborationRepository struct {
	mock.Mock
}

func (m *MockCollaborationRepository) Create(ctx context.Context, collab *domain.Collaboration) (string, error) {
	args := m.Called(ctx, collab)
	return args.String(0), args.Error(1)
}

func (m *MockCollaborationRepository) Delete(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockCollaborationRepository) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}

// MockSongRepository 歌曲仓储Mock
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *domain.Song) (string, error) {
	args := m.Called(ctx, song)
	return args.String(0), args.Error(1)
}

func (m *MockSongRepository) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongRepository) List(ctx context.Context) ([]*domain.SongEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SongEntry), args.Error(1)
}

func (m *MockSongRepository) Update(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository 用户仓储Mock
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockAuthenticationRepository 刷新令牌仓储Mock
type MockAuthenticationRepository struct {
	mock.Mock
}

func (m *MockAuthenticationRepository) AddToken(ctx context.Context, tok string) error {
	args := m.Called(ctx, tok)
	return args.Error(0)
}

func (m *MockAuthenticationRepository) TokenExists(ctx context.Context, tok string) (bool, error) {
	args := m.Called(ctx, tok)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthenticationRepository) DeleteToken(ctx context.Context, tok string) error {
	args := m.Called(ctx, tok)
	return args.Error(0)
}

func (m *MockAuthenticationRepository) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// MockSongVerifier 歌曲存在性校验Mock
type MockSongVerifier struct {
	mock.Mock
}

func (m *MockSongVerifier) VerifyExists(ctx context.Context, songID string) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}

// MockCollaboratorVerifier 协作授权校验Mock
type MockCollaboratorVerifier struct {
	mock.Mock
}

func (m *MockCollaboratorVerifier) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

// fakeTransaction 直接执行函数的事务桩，不经过真实连接。
// 回滚语义由仓储层的事务执行器单独测试。
type fakeTransaction struct{}

func (fakeTransaction) ExecTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}
