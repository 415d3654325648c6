package routes

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/navigator"
)

func SessionRouter(router fiber.Router, store kvstore.Store) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getSession(c, store)
	})
}

func getSession(c *fiber.Ctx, store kvstore.Store) error {
	snapshot, err := kvstore.GetJSON[navigator.Snapshot](context.Background(), store, kvstore.KeySessionSnapshot)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "No navigation session",
			})
		}

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	snapshotReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, snapshot)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Snapshot",
		})
	}

	return c.JSON(snapshotReduced)
}
