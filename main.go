package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schnose/cmd"
	"schnose/database"

	log "github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		cmd.SetupLogging(os.Getenv("LOG_LEVEL"))
		if err := handleMigrationCommand(); err != nil {
			log.WithError(err).Fatal("Migration failed")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx); err != nil {
		log.WithError(err).Fatal("Application error")
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: schnose migrate [up|down|status] [steps]")
	}

	switch command := os.Args[2]; command {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}
