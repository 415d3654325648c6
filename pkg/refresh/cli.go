package refresh

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/notify"
	"github.com/waypace/waypace/pkg/recommend"
	"github.com/waypace/waypace/pkg/redis_client"
	"github.com/waypace/waypace/pkg/reminders"
	"github.com/waypace/waypace/pkg/util"
)

// Target cadence - the host scheduler may be coarser
const refreshInterval = 15 * time.Minute

// NewTask wires the production task. Registration is explicit - nothing
// registers itself as an import side effect.
func NewTask() *Task {
	store := kvstore.NewRedisStore(24 * time.Hour)

	return &Task{
		Store:     store,
		Recommend: recommend.NewClient(),
		Scheduler: &reminders.Scheduler{
			Store:    store,
			Notifier: notify.NewScheduledNotifier(),
			Clock:    util.SystemClock{},
		},
		Clock: util.SystemClock{},
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Background task keeping the next class's route and reminders fresh",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the refresh task on its periodic cadence",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					task := NewTask()

					log.Info().Dur("interval", refreshInterval).Msg("Starting background refresh")

					perform(task)
					for range time.Tick(refreshInterval) {
						perform(task)
					}

					return nil
				},
			},
			{
				Name:  "once",
				Usage: "run a single refresh pass",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					perform(NewTask())

					return nil
				},
			},
		},
	}
}

func perform(task *Task) {
	result := task.Perform(context.Background())

	log.Info().Str("result", string(result)).Msg("Refresh pass complete")
}
