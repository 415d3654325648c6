package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/waypace/waypace/pkg/api"
	"github.com/waypace/waypace/pkg/navigator"
	"github.com/waypace/waypace/pkg/notify"
	"github.com/waypace/waypace/pkg/refresh"
	"github.com/waypace/waypace/pkg/reminders"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("WAYPACE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("WAYPACE_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "waypace",
		Description: "Single binary of truth for waypace - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			navigator.RegisterCLI(),
			reminders.RegisterCLI(),
			notify.RegisterCLI(),
			refresh.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
