package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler は定期ジョブの起動と停止を束ねる
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// Add は指定間隔でジョブを登録する
func (s *Scheduler) Add(interval time.Duration, job cron.Job) error {
	_, err := s.cron.AddJob(fmt.Sprintf("@every %s", interval), job)
	return err
}

func (s *Scheduler) Start() {
	s.logger.Info("scheduler started")
	s.cron.Start()
}

// Stop は実行中のジョブ完了を待って止める
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}
