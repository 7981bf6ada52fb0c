package cronjob

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/erp-civi/erp-backend/internal/dashboard/service"
	"github.com/erp-civi/erp-backend/internal/storage"
)

const snapshotKey = "dashboard_kpis"

// Snapshot is the persisted nightly KPI capture. Reading the snapshot gives
// yesterday's numbers without recomputing the aggregates.
type Snapshot struct {
	KPIs       service.KPIs `json:"kpis"`
	CapturedAt time.Time    `json:"capturedAt"`
}

type Scheduler struct {
	svc   *service.Service
	store *storage.Store
	cron  *cron.Cron
}

func NewScheduler(svc *service.Service, store *storage.Store) *Scheduler {
	return &Scheduler{svc: svc, store: store}
}

// Start schedules the nightly KPI snapshot (12:00 AM) and takes an initial
// one so the key exists from first boot.
func (s *Scheduler) Start() {
	s.cron = cron.New(cron.WithSeconds())

	_, err := s.cron.AddFunc("0 0 0 * * *", s.capture)
	if err != nil {
		slog.Error("failed to create cron job", "error", err)
		return
	}

	s.capture()
	s.cron.Start()
	slog.Info("cron scheduler started", "job", "kpi snapshot", "schedule", "nightly 12:00AM")
}

// Stop halts the scheduler, waiting for a running capture to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) capture() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap := Snapshot{
		KPIs:       s.svc.KPIs(ctx),
		CapturedAt: time.Now().UTC(),
	}
	s.store.Set(ctx, snapshotKey, snap)
	slog.Info("kpi snapshot captured", "totalProjects", snap.KPIs.TotalProjects, "totalBilled", snap.KPIs.TotalBilled)
}

// Latest returns the most recent persisted snapshot.
func Latest(ctx context.Context, store *storage.Store) (Snapshot, bool) {
	var snap Snapshot
	ok := store.Get(ctx, snapshotKey, &snap)
	return snap, ok
}
