// Package jobs provides scheduled background tasks for the checkout service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// TipExpiryJob fails tip payments that stayed PENDING longer than the
// payment timeout, so buyers polling for a result get a definite answer even
// when the gateway never calls back. It runs every ten seconds by default
// (TIP_EXPIRY_SCHEDULE) and expires at most one batch per run.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewTipExpiryJob(expireTipsHandler, cfg.TipExpirySchedule, cfg.TipPaymentTimeout, 0, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A job that fails to
// start stops the jobs already started.
package jobs
