package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/waypace/waypace/pkg/database"
	"github.com/waypace/waypace/pkg/redis_client"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": "v0.1",
	})
}

func Health(c *fiber.Ctx) error {
	testRedis := redis_client.Client.Ping(context.Background())
	if testRedis.Err() != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": testRedis.Err().Error(),
		})
	}

	testMongo := database.MongoGlobalInstance.Client.Ping(context.Background(), nil)
	if testMongo != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": testMongo.Error(),
		})
	}

	return c.SendString("OK")
}
