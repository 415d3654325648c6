package navigator

import (
	"encoding/json"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
)

// BatchConsumer feeds tracking events from the navigation queue into the
// tracker. The queue runs exactly one consumer so event handling never
// overlaps.
type BatchConsumer struct {
	tracker *Tracker
}

func NewBatchConsumer(tracker *Tracker) *BatchConsumer {
	return &BatchConsumer{tracker: tracker}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		var event *TrackingEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			log.Error().Err(err).Msg("Failed to decode tracking event")
			continue
		}

		consumer.handle(event)
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume tracking event")
		}
	}
}

func (consumer *BatchConsumer) handle(event *TrackingEvent) {
	switch event.Type {
	case EventTypeStart:
		if event.Option == nil {
			log.Error().Msg("Start event without a route option")
			return
		}

		err := consumer.tracker.Start(*event.Option, event.WalkingMode, event.BodyWeightKg, event.OriginName, event.DestinationName)
		if err != nil {
			log.Error().Err(err).Msg("Failed to start navigation session")
		}
	case EventTypePosition:
		consumer.tracker.HandlePosition(event.Location)
	case EventTypePedometer:
		consumer.tracker.HandleSteps(event.StepCount)
	case EventTypeCancel:
		consumer.tracker.Cancel()
	default:
		log.Error().Str("type", string(event.Type)).Msg("Unknown tracking event type")
	}
}
