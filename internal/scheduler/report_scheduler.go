package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/ikkim/shop-api/internal/report"
	"github.com/ikkim/shop-api/internal/storage"
	"github.com/ikkim/shop-api/pkg/logger"
	"github.com/robfig/cron/v3"
)

const reportTimeout = 30 * time.Second

// CatalogSource provides the state written into each report.
type CatalogSource interface {
	Snapshot() (*service.CatalogSnapshot, error)
}

// ReportScheduler periodically saves a catalog report.
type ReportScheduler struct {
	cron    *cron.Cron
	spec    string
	source  CatalogSource
	storage storage.ReportStorage
}

func NewReportScheduler(spec string, source CatalogSource, reportStorage storage.ReportStorage) *ReportScheduler {
	return &ReportScheduler{
		cron:    cron.New(),
		spec:    spec,
		source:  source,
		storage: reportStorage,
	}
}

// ReportName returns the file name used for a report taken at t.
func ReportName(t time.Time) string {
	return fmt.Sprintf("catalog-%s.xlsx", t.UTC().Format("20060102-150405"))
}

// Start registers the cron job. An empty spec leaves the scheduler disabled.
func (s *ReportScheduler) Start() error {
	if s.spec == "" {
		logger.Info("Report scheduler disabled", nil)
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		if _, err := s.RunOnce(ctx); err != nil {
			logger.Error("Scheduled catalog report failed", err)
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for catalog report", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Report scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// RunOnce builds and stores a report immediately.
func (s *ReportScheduler) RunOnce(ctx context.Context) (string, error) {
	snapshot, err := s.source.Snapshot()
	if err != nil {
		return "", fmt.Errorf("failed to snapshot catalog: %w", err)
	}

	data, err := report.BuildCatalogWorkbook(snapshot.Items, snapshot.Carts)
	if err != nil {
		return "", err
	}

	location, err := s.storage.Save(ctx, ReportName(snapshot.TakenAt), data)
	if err != nil {
		return "", err
	}

	logger.Info("Catalog report saved", map[string]interface{}{
		"location": location,
		"items":    len(snapshot.Items),
		"carts":    len(snapshot.Carts),
	})
	return location, nil
}

// Stop waits for a running job to finish.
func (s *ReportScheduler) Stop() {
	logger.Info("Stopping report scheduler...", nil)
	<-s.cron.Stop().Done()
	logger.Info("Report scheduler stopped", nil)
}
