package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/database"
	"github.com/milewise/mile_go_server/internal/repository"
)

var (
	dryRun     = flag.Bool("dry-run", true, "Dry run mode, don't actually delete rows")
	graceHours = flag.Int("grace-hours", 24, "Hours past expiry before a session is purged")
)

// The serving path only rejects expired sessions, it never deletes them.
// This binary is the out-of-band purge.
func main() {
	flag.Parse()

	log.Println("Starting session cleanup...")
	log.Printf("Mode: dry-run=%v grace-hours=%d", *dryRun, *graceHours)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sessionRepo := repository.NewSessionRepository(db)
	cutoff := time.Now().UTC().Add(-time.Duration(*graceHours) * time.Hour)

	var purged int64
	if *dryRun {
		purged, err = sessionRepo.CountExpiredBefore(cutoff)
	} else {
		purged, err = sessionRepo.DeleteExpiredBefore(cutoff)
	}
	if err != nil {
		log.Fatalf("Failed to purge sessions: %v", err)
	}

	log.Println(strings.Repeat("=", 60))
	log.Println("Cleanup Summary")
	log.Println(strings.Repeat("=", 60))
	log.Printf("Cutoff: %s", cutoff.Format(time.RFC3339))
	log.Printf("Expired sessions purged: %d", purged)
	if *dryRun {
		log.Println("DRY RUN MODE - no rows were actually deleted")
		log.Println("Run with -dry-run=false to delete")
	} else {
		log.Println("Cleanup completed")
	}
	log.Println(strings.Repeat("=", 60))
}
