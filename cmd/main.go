package main

import (
	"strconv"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/David-H-Afonso/gamesdatabase/config"
	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/handlers"
	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/middleware"
	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/routes"
	"github.com/David-H-Afonso/gamesdatabase/internal/constants"
	"github.com/David-H-Afonso/gamesdatabase/internal/db"
	"github.com/David-H-Afonso/gamesdatabase/internal/logger"
)

func main() {
	// A missing .env file is fine; env vars may come from the environment
	_ = godotenv.Load()

	logger.Initialize()

	dbPort, err := strconv.Atoi(config.GetEnv(constants.EnvDBPort, "5432"))
	if err != nil {
		logger.Fatalf("invalid %s: %v", constants.EnvDBPort, err)
	}

	database, err := db.New(db.Options{
		Host:     config.GetEnv(constants.EnvDBHost, db.DefaultHost),
		Port:     dbPort,
		User:     config.GetEnv(constants.EnvDBUser, db.DefaultUser),
		Password: config.GetEnv(constants.EnvDBPassword, db.DefaultPassword),
		DBName:   config.GetEnv(constants.EnvDBName, db.DefaultDBName),
	})
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	jwtSecret := config.GetEnv(constants.EnvJWTSecret, "")
	if jwtSecret == "" {
		logger.Fatalf("%s must be set", constants.EnvJWTSecret)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	app.Use(middleware.Logger())

	h := handlers.NewAPIHandler(database, []byte(jwtSecret))
	routes.RegisterRoutes(app, h, middleware.Auth(h.JWTSecret()))

	port := config.GetEnv(constants.EnvServerPort, routes.DefaultPort)
	logger.Infof("listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
