package routes

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/waypace/waypace/pkg/activitylog"
)

const defaultActivityCount = 20
const maxActivityCount = 100

func ActivitiesRouter(router fiber.Router, activityLog *activitylog.Log) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listActivities(c, activityLog)
	})
}

func listActivities(c *fiber.Ctx, activityLog *activitylog.Log) error {
	count := defaultActivityCount
	if countQuery := c.Query("count"); countQuery != "" {
		if parsed, err := strconv.Atoi(countQuery); err == nil && parsed > 0 {
			count = parsed
		}
	}
	if count > maxActivityCount {
		count = maxActivityCount
	}

	entries, err := activityLog.Recent(context.Background(), count)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	entriesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, entries)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Activity Entries",
		})
	}

	return c.JSON(entriesReduced)
}
