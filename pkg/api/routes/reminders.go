package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/notify"
	"golang.org/x/exp/slices"
)

func RemindersRouter(router fiber.Router, notifier notify.Notifier) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listReminders(c, notifier)
	})
}

func listReminders(c *fiber.Ctx, notifier notify.Notifier) error {
	pending, err := notifier.Pending(context.Background())
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	slices.SortFunc(pending, func(a, b cdm.Notification) int {
		return a.TriggerAt.Compare(b.TriggerAt)
	})

	pendingReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, pending)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Notifications",
		})
	}

	return c.JSON(pendingReduced)
}
