// Package main provides the iconfix command: it runs a halo-removal job over
// an app's icon assets.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"halo-fixer/internal/config"
	"halo-fixer/internal/fixer"
	"halo-fixer/internal/logging"
	"halo-fixer/internal/version"
)

func main() {
	jobPath := flag.String("config", "config/iconfix.json", "Path to the job file")
	dryRun := flag.Bool("dry-run", false, "Process in memory and print the summary without writing")
	noBackup := flag.Bool("no-backup", false, "Skip the backup copy")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("iconfix %s (%s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logging.NewConsole(level)

	job, err := config.Load(*jobPath)
	if err != nil {
		log.Error().Err(err).Str("config", *jobPath).Msg("failed to load job")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := fixer.NewRunner(job, log, fixer.Options{DryRun: *dryRun, NoBackup: *noBackup})
	results, err := runner.Run(ctx)
	for _, r := range results {
		fmt.Println(r)
	}
	if err != nil {
		if errors.Is(err, fixer.ErrNoTargets) {
			log.Error().Str("root", job.Root).Msg("no target images found")
		} else {
			log.Error().Err(err).Msg("run failed")
		}
		stop()
		os.Exit(1)
	}
	log.Info().Int("steps", len(results)).Bool("dry_run", *dryRun).Msg("done")
}
