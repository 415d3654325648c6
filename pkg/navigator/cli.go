package navigator

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/waypace/waypace/pkg/activitylog"
	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/consumer"
	"github.com/waypace/waypace/pkg/database"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/recommend"
	"github.com/waypace/waypace/pkg/redis_client"
	"github.com/waypace/waypace/pkg/transitdetail"
	"github.com/waypace/waypace/pkg/util"
)

const queueName = "navigation-queue"

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "navigator",
		Usage: "Live navigation engine - tracks walking & transit trips from device event streams",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the navigation event consumer",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					tracker := &Tracker{
						Clock: util.SystemClock{},
						Store: kvstore.NewRedisStore(24 * time.Hour),

						TransitDetail: transitdetail.NewClient(),
						Encouragement: recommend.NewClient(),
						ActivityLog:   activitylog.NewLog(),
					}

					redisConsumer := consumer.RedisConsumer{
						QueueName: queueName,
						// The tracker is a single logical owner - one
						// consumer guarantees non-overlapping delivery
						NumberConsumers: 1,
						BatchSize:       50,
						Timeout:         1 * time.Second,
						Consumer:        NewBatchConsumer(tracker),
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
				Name:  "test-track",
				Usage: "publish a synthetic walk-only session onto the navigation queue",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					queue, err := redis_client.QueueConnection.OpenQueue(queueName)
					if err != nil {
						log.Fatal().Err(err).Msg("Failed to open navigation queue")
					}

					destination := cdm.NewLocation(40.1092, -88.2272)

					events := []TrackingEvent{
						{
							Type: EventTypeStart,
							Option: &cdm.RouteOption{
								Kind:       cdm.RouteOptionKindWalk,
								Summary:    "Walk to Grainger Library (9 min)",
								ETAMinutes: 9,
								Steps: []cdm.Step{
									{
										Kind:                cdm.StepKindWalkToDest,
										DurationMinutes:     9,
										BuildingID:          "grainger",
										DestinationLocation: destination,
									},
								},
							},
							WalkingMode:     cdm.WalkingModeBrisk,
							DestinationName: "Grainger Library",
						},
						{Type: EventTypePosition, Location: cdm.NewLocation(40.1020, -88.2272)},
						{Type: EventTypePedometer, StepCount: 250},
						{Type: EventTypePosition, Location: cdm.NewLocation(40.1091, -88.2272)},
					}

					for _, event := range events {
						eventBytes, _ := json.Marshal(event)
						queue.PublishBytes(eventBytes)

						pretty.Println(event.Type, "published")
					}

					return nil
				},
			},
		},
	}
}
