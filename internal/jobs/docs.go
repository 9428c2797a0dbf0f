// Package jobs provides scheduled background tasks for the pizza ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to move domain events out of the transactional outbox.
//
// # Available Jobs
//
//  1. OutboxRelayJob - Runs every second and publishes up to a batch of pending outbox messages
//  2. OutboxPurgeJob - Runs hourly and deletes published messages older than the retention
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, purgeHandler, jobs.Settings{
//		RelayBatch:      100,
//		OutboxRetention: 7 * 24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Messages are only
// marked published after the publisher accepts them, so a failure never
// loses an event. Invalid settings fail StartAll.
package jobs
