package notify

import (
	"encoding/json"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/waypace/waypace/pkg/cdm"
)

type BatchConsumer struct {
	pushManager *PushManager
}

func NewBatchConsumer(pushManager *PushManager) *BatchConsumer {
	return &BatchConsumer{pushManager: pushManager}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		var notification *cdm.Notification
		if err := json.Unmarshal([]byte(payload), &notification); err != nil {
			log.Error().Err(err).Msg("Failed to decode notification")
			continue
		}

		if err := consumer.pushManager.SendPush(*notification); err != nil {
			log.Error().Err(err).Str("identifier", notification.Identifier).Msg("Failed to send push notification")
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume notification")
		}
	}
}
