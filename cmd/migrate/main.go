// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go
//
// Migrations are schema-driven: the models are auto-migrated and the default
// admin account is seeded when the users table is empty.
package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/David-H-Afonso/gamesdatabase/config"
	"github.com/David-H-Afonso/gamesdatabase/internal/constants"
	"github.com/David-H-Afonso/gamesdatabase/internal/db"
)

func main() {
	// Load .env file; env vars may also come from the environment
	_ = godotenv.Load()

	var (
		host     = flag.String("host", config.GetEnv(constants.EnvDBHost, db.DefaultHost), "Database host")
		port     = flag.String("port", config.GetEnv(constants.EnvDBPort, "5432"), "Database port")
		user     = flag.String("user", config.GetEnv(constants.EnvDBUser, db.DefaultUser), "Database user")
		password = flag.String("password", config.GetEnv(constants.EnvDBPassword, db.DefaultPassword), "Database password")
		name     = flag.String("name", config.GetEnv(constants.EnvDBName, db.DefaultDBName), "Database name")
	)
	flag.Parse()

	portNum, err := strconv.Atoi(*port)
	if err != nil {
		log.Fatalf("Invalid port: %v", err)
	}

	if _, err := db.New(db.Options{
		Host:     *host,
		Port:     portNum,
		User:     *user,
		Password: *password,
		DBName:   *name,
	}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration completed")
}
