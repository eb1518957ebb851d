package utils

import (
	"log"
	"strconv"
	"time"

	"lmsadmin/config"
	"lmsadmin/draft"
	"lmsadmin/playback"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[SESSION-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepSessions discards editing drafts and playback sessions that have been
// idle past the TTL. A draft abandoned without submit is simply forgotten;
// playback sweeps also stop any stray attempt timers.
func sweepSessions(drafts *draft.Store, players *playback.Store) {
	ttl := time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute

	if dropped := drafts.Sweep(ttl); dropped > 0 {
		logSweeper("Discarded " + strconv.Itoa(dropped) + " idle editing drafts")
	}
	if dropped := players.Sweep(ttl); dropped > 0 {
		logSweeper("Discarded " + strconv.Itoa(dropped) + " idle playback sessions")
	}
}

// InitializeSessionSweeper starts the recurring cleanup of idle in-memory
// sessions. Runs every five minutes.
func InitializeSessionSweeper(drafts *draft.Store, players *playback.Store) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", func() {
		sweepSessions(drafts, players)
	}); err != nil {
		log.Fatalf("Failed to schedule session sweeper: %v", err)
	}

	c.Start()
	logSweeper("Session sweeper started")
	return c
}
