package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"anke-go-api/model"
	"anke-go-api/pkg/config"
	"anke-go-api/services/keyword_service"
)

// Scheduler owns the nightly batch jobs: keyword linking and the point
// balance aggregation audit.
type Scheduler struct {
	cron   *cron.Cron
	db     *gorm.DB
	linker *keyword_service.Linker
	cfg    *config.SchedulerConfig
}

func New(db *gorm.DB, linker *keyword_service.Linker, cfg *config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		// specs carry a seconds field
		cron:   cron.New(cron.WithSeconds()),
		db:     db,
		linker: linker,
		cfg:    cfg,
	}
}

// Start registers and launches the enabled jobs.
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		log.Println("scheduler disabled")
		return nil
	}

	if s.cfg.KeywordLinkOn {
		if _, err := s.cron.AddFunc(s.cfg.KeywordLinkSpec, s.runKeywordLink); err != nil {
			return fmt.Errorf("register keyword link job: %w", err)
		}
	}
	if s.cfg.PointAggregateOn {
		if _, err := s.cron.AddFunc(s.cfg.PointAggregateSpec, s.runPointAggregate); err != nil {
			return fmt.Errorf("register point aggregate job: %w", err)
		}
	}

	s.cron.Start()
	log.Println("scheduler started")
	return nil
}

// Stop halts the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("scheduler stopped")
}

func (s *Scheduler) runKeywordLink() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	result, err := s.linker.Run(ctx)
	if err != nil {
		log.Printf("keyword link job failed: %v", err)
		return
	}
	log.Printf("keyword link job: linked=%d skipped=%d failed=%d",
		result.Linked, result.Skipped, result.Failed)
}

// runPointAggregate recomputes every user's balance and records the run.
// Skipped when the previous successful run is too recent, so a manual
// trigger near the schedule does not double-run.
func (s *Scheduler) runPointAggregate() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	minGap := time.Duration(s.cfg.AggregateMinGapMins) * time.Minute
	var last model.PointsAggregateLog
	err := s.db.WithContext(ctx).
		Where("status = ?", "success").
		Order("executed_at DESC").
		First(&last).Error
	if err == nil && minGap > 0 && time.Since(last.ExecutedAt) < minGap {
		log.Printf("point aggregate job: skipped, last run %s", last.ExecutedAt.Format(time.RFC3339))
		return
	}

	entry := model.PointsAggregateLog{
		ExecutionType: "scheduled",
		ExecutedAt:    time.Now(),
	}

	count, err := s.aggregate(ctx)
	if err != nil {
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
	} else {
		entry.Status = "success"
		entry.Message = fmt.Sprintf("aggregated %d users", count)
		entry.AggregatedUsers = count
	}

	if logErr := s.db.WithContext(ctx).Create(&entry).Error; logErr != nil {
		log.Printf("point aggregate job: write log: %v", logErr)
	}
	if err != nil {
		log.Printf("point aggregate job failed: %v", err)
	} else {
		log.Printf("point aggregate job: %s", entry.Message)
	}
}

// aggregate sums every user's ledger in one pass. Balances are always
// derived, so the job is an audit of ledger consistency rather than a
// writeback.
func (s *Scheduler) aggregate(ctx context.Context) (int, error) {
	type row struct {
		UserID  int
		Balance int
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&model.PointRecord{}).
		Select("user_id, COALESCE(SUM(amount),0) AS balance").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return 0, err
	}

	for _, r := range rows {
		if r.Balance < 0 {
			log.Printf("point aggregate job: user %d has negative balance %d", r.UserID, r.Balance)
		}
	}
	return len(rows), nil
}
