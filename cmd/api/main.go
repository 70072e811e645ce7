package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/app"
)

func main() {
	// Missing .env is fine in containers where the environment is injected.
	_ = godotenv.Load()

	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		application.Log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
