package reminders

import (
	"context"
	"time"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
	"github.com/waypace/waypace/pkg/database"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/notify"
	"github.com/waypace/waypace/pkg/redis_client"
	"github.com/waypace/waypace/pkg/util"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "reminders",
		Usage: "Derives leave-by alerts for today's classes from cached route data",
		Subcommands: []*cli.Command{
			{
				Name:  "schedule",
				Usage: "run one scheduling pass over the class list",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "buffer",
						Value: defaultBufferMinutes,
						Usage: "minutes of slack added before the leave-now alert",
					},
					&cli.StringFlag{
						Name:  "user",
						Value: "local-user",
						Usage: "target user identifier",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					store := kvstore.NewRedisStore(24 * time.Hour)

					classes, err := LoadClasses(context.Background(), store)
					if err != nil {
						return err
					}

					scheduler := Scheduler{
						Store:    store,
						Notifier: notify.NewScheduledNotifier(),
						Clock:    util.SystemClock{},

						BufferMinutes: c.Float64("buffer"),
						TargetUser:    c.String("user"),
					}

					return scheduler.Run(context.Background(), classes)
				},
			},
			{
				Name:  "pending",
				Usage: "print the currently scheduled reminder set",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					pending, err := notify.NewScheduledNotifier().Pending(context.Background())
					if err != nil {
						return err
					}

					pretty.Println(pending)

					return nil
				},
			},
		},
	}
}
