package main

import (
	"context"
	"time"

	"github.com/dkuaegis/aegis-adminpage/injector"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	infrastructures.LoadConfig()

	app, err := injector.InitializeApplication()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Fiber configuration
	config := fiber.Config{
		ReadTimeout:  time.Second * 60,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	}

	router := fiber.New(config)

	// Add CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:  infrastructures.Config.ALLOW_ORIGINS,
		AllowHeaders:  "Origin, Content-Type, Accept, X-Operator-Key",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        300,
	}))

	app.RegisterRoutes(router)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.SessionService.Start(ctx)

	logrus.Fatal(router.Listen(":" + infrastructures.Config.PORT))
}
