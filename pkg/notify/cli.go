package notify

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/consumer"
	"github.com/waypace/waypace/pkg/database"
	"github.com/waypace/waypace/pkg/redis_client"
	"github.com/waypace/waypace/pkg/util"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "notify",
		Usage: "Provides the notification system",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run notify server",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					pushManager := &PushManager{}
					if err := pushManager.Setup(); err != nil {
						return err
					}

					go StartDispatcher(NewScheduledNotifier(), util.SystemClock{})

					redisConsumer := consumer.RedisConsumer{
						QueueName:       "notify-queue",
						NumberConsumers: 5,
						BatchSize:       20,
						Timeout:         2 * time.Second,
						Consumer:        NewBatchConsumer(pushManager),
					}
					redisConsumer.Setup()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
			{
				Name:  "test-notification",
				Usage: "schedule a notification that triggers immediately",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					notifier := NewScheduledNotifier()

					notification := cdm.Notification{
						Identifier: "class-TEST",
						TargetUser: c.String("user"),

						Title: "Time to go",
						Body:  "CS 225 starts soon. Leave by 14:18 to make it.",

						DeepLink:  "waypace://class/TEST",
						TriggerAt: time.Now(),
					}

					if err := notifier.Schedule(context.Background(), notification); err != nil {
						return err
					}

					pretty.Println(notification)

					return nil
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "user",
						Value: "local-user",
						Usage: "target user identifier",
					},
				},
			},
		},
	}
}
