package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/egasa21/open-music-api-v2/internal/logger"
	"github.com/egasa21/open-music-api-v2/internal/service"
)

// Manager 定时任务管理器
type Manager struct {
	cron *cron.Cron
	auth *service.AuthService
	log  logger.Logger
}

// NewManager 创建定时任务管理器
func NewManager(auth *service.AuthService, log logger.Logger) *Manager {
	return &Manager{
		cron: cron.New(cron.WithLocation(time.Local)),
		auth: auth,
		log:  log,
	}
}

// Start 启动定时任务。每天凌晨2点清理过期的刷新令牌。
func (m *Manager) Start() error {
	_, err := m.cron.AddFunc("0 2 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		start := time.Now()
		deleted, err := m.auth.PurgeExpiredTokens(ctx)
		if err != nil {
			m.log.Error("Token cleanup job failed", logger.Err(err))
			return
		}
		m.log.Info("Token cleanup job completed",
			logger.Int64("deleted", deleted),
			logger.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
	if err != nil {
		return err
	}

	m.cron.Start()
	m.log.Info("Cron manager started - token cleanup scheduled at 02:00 daily")
	return nil
}

// Stop 停止定时任务并等待运行中的任务完成
func (m *Manager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info("Cron manager stopped")
}
