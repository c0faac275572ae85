// Package jobs runs the storefront's scheduled background work with
// github.com/robfig/cron/v3.
//
// FormSweepJob deletes delivery forms whose session TTL has passed. The Redis
// store also expires keys on its own; the sweep is what cleans the in-memory
// store.
//
// Usage:
//
//	cmd, _ := commands.NewSweepExpiredFormsCommand(ttl)
//	jobManager := jobs.NewJobManager().
//		Add("form sweep", jobs.NewFormSweepJob(sweepHandler, cmd, "", logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules are six-field cron expressions with a leading seconds field.
package jobs
