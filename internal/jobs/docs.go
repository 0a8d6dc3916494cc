// Package jobs provides scheduled background tasks for the workshop service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field specs with
// seconds) and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(jobs.NewOverdueReportJob(counter, threshold, spec, logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("Failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OverdueReportJob counts open orders older than the overdue threshold and
// logs the result, at WARN when any exist.
package jobs
