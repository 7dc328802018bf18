package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/David-H-Afonso/gamesdatabase/cmd/cli/commands"
)

func main() {
	// A missing .env file is fine for the CLI
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
