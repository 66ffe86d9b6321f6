package background

import (
	"context"
	"log"
	"time"

	"staffnotes/internal/repositories"
	"staffnotes/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the periodic export archive job: every interval it renders
// each company's notes CSV and stores it in the object store, so tenants keep
// a history of exports without hitting the download endpoint.
type JobScheduler struct {
	scheduler   gocron.Scheduler
	companyRepo repositories.CompanyRepository
	exportSvc   services.ExportService
	interval    time.Duration
}

// NewJobScheduler creates a scheduler with the archive job registered.
func NewJobScheduler(companyRepo repositories.CompanyRepository, exportSvc services.ExportService, interval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:   scheduler,
		companyRepo: companyRepo,
		exportSvc:   exportSvc,
		interval:    interval,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(js.archiveAllCompanies, context.Background()),
		gocron.WithName("notes-export-archive"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler (archive interval %s)", js.interval)
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) archiveAllCompanies(ctx context.Context) {
	const pageSize = 100

	for offset := 0; ; offset += pageSize {
		companies, err := js.companyRepo.List(ctx, pageSize, offset)
		if err != nil {
			log.Printf("Export archive: failed to list companies: %v", err)
			return
		}
		if len(companies) == 0 {
			return
		}

		for _, company := range companies {
			objectName, err := js.exportSvc.ArchiveNotesCSV(ctx, company.ID)
			if err != nil {
				// One failing tenant must not stop the others.
				log.Printf("Export archive: company %s failed: %v", company.ID, err)
				continue
			}
			log.Printf("Export archive: company %s -> %s", company.ID, objectName)
		}

		if len(companies) < pageSize {
			return
		}
	}
}
