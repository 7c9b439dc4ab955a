package service

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gayaldassanayake/portfolio-manager/internal/config"
)

// Scheduler runs the recurring background jobs: the daily provider price
// refresh and the maturity notification sweep.
type Scheduler struct {
	cron                *cron.Cron
	priceService        *PriceService
	notificationService *NotificationService
	cfg                 config.SchedulerConfig
}

// NewScheduler creates a scheduler wired to the given services. Jobs are
// registered but not started.
func NewScheduler(priceService *PriceService, notificationService *NotificationService, cfg config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		cron:                cron.New(),
		priceService:        priceService,
		notificationService: notificationService,
		cfg:                 cfg,
	}
}

// Start registers the cron entries and begins running them. Returns an
// error if either cron spec fails to parse.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.PriceRefreshSpec, s.refreshPrices); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.NotificationSpec, s.generateNotifications); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("scheduler started: price refresh %q, notifications %q",
		s.cfg.PriceRefreshSpec, s.cfg.NotificationSpec)
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refreshPrices() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	results, err := s.priceService.RefreshAllPrices(ctx)
	if err != nil {
		log.Printf("price refresh failed: %v", err)
		return
	}
	inserted := 0
	failures := 0
	for _, r := range results {
		inserted += r.Inserted
		if r.Error != "" {
			failures++
			log.Printf("price refresh for %s failed: %s", r.Symbol, r.Error)
		}
	}
	log.Printf("price refresh done: %d trusts, %d new prices, %d failures",
		len(results), inserted, failures)
}

func (s *Scheduler) generateNotifications() {
	created, err := s.notificationService.GenerateNotifications(time.Now().UTC())
	if err != nil {
		log.Printf("notification generation failed: %v", err)
		return
	}
	if created > 0 {
		log.Printf("notification generation done: %d created", created)
	}
}
