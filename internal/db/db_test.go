package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNFromOptions(t *testing.T) {
	opts := Options{
		Host:     "localhost",
		User:     "postgres",
		Password: "secret",
		DBName:   "gamesdb",
		Port:     5432,
	}

	t.Run("ssl disabled by default", func(t *testing.T) {
		assert.Contains(t, dsnFromOptions(opts), "sslmode=disable")
	})

	t.Run("ssl enabled uses a valid sslmode", func(t *testing.T) {
		enabled := true
		opts.SSLEnabled = &enabled
		assert.Contains(t, dsnFromOptions(opts), "sslmode=require")
	})

	t.Run("ssl explicitly off", func(t *testing.T) {
		disabled := false
		opts.SSLEnabled = &disabled
		assert.Contains(t, dsnFromOptions(opts), "sslmode=disable")
	})
}
