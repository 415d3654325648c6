package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/waypace/waypace/pkg/redis_client"
	"github.com/waypace/waypace/pkg/util"
)

const dispatchInterval = 30 * time.Second

// StartDispatcher moves due notifications from the scheduled set onto the
// notify queue for delivery. Runs forever on its tick.
func StartDispatcher(notifier Notifier, clock util.Clock) {
	queue, err := redis_client.QueueConnection.OpenQueue("notify-queue")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open notify queue")
	}

	log.Info().Msg("Starting notification dispatcher")

	for range time.Tick(dispatchInterval) {
		pending, err := notifier.Pending(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("Failed to read pending notifications")
			continue
		}

		now := clock.Now()

		for _, notification := range pending {
			if notification.TriggerAt.After(now) {
				continue
			}

			payload, _ := json.Marshal(notification)
			if err := queue.PublishBytes(payload); err != nil {
				log.Error().Err(err).Str("identifier", notification.Identifier).Msg("Failed to publish notification")
				continue
			}

			// Delivery is handed off - the entry is no longer pending
			if err := notifier.Cancel(context.Background(), notification.Identifier); err != nil {
				log.Error().Err(err).Str("identifier", notification.Identifier).Msg("Failed to clear dispatched notification")
			}

			log.Info().Str("identifier", notification.Identifier).Msg("Dispatched notification")
		}
	}
}
