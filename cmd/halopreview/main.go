// Command halopreview opens a job in a before/after preview window.
package main

import (
	"flag"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"halo-fixer/internal/app"
	"halo-fixer/internal/logging"
	"halo-fixer/internal/version"
	"halo-fixer/ui/preview"
	"halo-fixer/ui/prefs"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logging.NewConsole(level)
	log.Info().Str("version", version.Version).Msg("starting halopreview")

	a := fyneapp.NewWithID("halo-fixer.preview")
	a.Settings().SetTheme(&app.HaloTheme{})

	p := prefs.Load()
	win := preview.New(a, app.NewState(), p, log)

	jobPath := flag.Arg(0)
	if jobPath == "" {
		jobPath = p.String(prefs.KeyLastJob)
	}
	if jobPath != "" {
		if err := win.Open(jobPath); err != nil {
			log.Error().Err(err).Str("job", jobPath).Msg("failed to open job")
		}
	}

	win.ShowAndRun()
}
