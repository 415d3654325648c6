package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/waypace/waypace/pkg/activitylog"
	"github.com/waypace/waypace/pkg/api/routes"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/notify"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	store := kvstore.NewRedisStore(24 * time.Hour)
	notifier := notify.NewScheduledNotifier()
	activityLog := activitylog.NewLog()

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)
	group.Get("health", routes.Health)

	routes.SessionRouter(group.Group("/session"), store)
	routes.RemindersRouter(group.Group("/reminders"), notifier)
	routes.ActivitiesRouter(group.Group("/activities"), activityLog)

	return webApp.Listen(listen)
}
