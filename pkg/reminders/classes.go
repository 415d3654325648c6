package reminders

import (
	"context"
	"time"

	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/database"
	"github.com/waypace/waypace/pkg/kvstore"
	"go.mongodb.org/mongo-driver/bson"
)

const classCacheExpiration = 7 * 24 * time.Hour

// LoadClasses reads the user's class schedule from the database and mirrors
// it into the shared cache so the background task can keep scheduling when
// the database is unreachable.
func LoadClasses(ctx context.Context, store kvstore.Store) ([]cdm.ClassMeeting, error) {
	classesCollection := database.GetCollection("class_meetings")

	cursor, err := classesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var classes []cdm.ClassMeeting
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}

	if store != nil {
		kvstore.SetJSON(ctx, store, kvstore.KeyCachedClasses, classes, classCacheExpiration)
	}

	return classes, nil
}

// CachedClasses returns the last mirrored class list, which may be stale
func CachedClasses(ctx context.Context, store kvstore.Store) ([]cdm.ClassMeeting, error) {
	classes, err := kvstore.GetJSON[[]cdm.ClassMeeting](ctx, store, kvstore.KeyCachedClasses)
	if err != nil {
		return nil, err
	}

	return *classes, nil
}
