// Command server runs the vocabulary HTTP API. It reads rows from the
// configured Google Sheet and serves them as flashcards to the frontend.
//
// Configuration comes from the environment (optionally seeded from a .env
// file) and an optional YAML file pointed at by CONFIG_PATH. SPREADSHEET_ID
// is required; one of GOOGLE_CREDENTIALS_JSON or GOOGLE_SHEETS_CREDENTIALS_FILE
// must resolve to a service-account key.
//
// The server stops on SIGINT/SIGTERM after a bounded graceful shutdown.
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/myfrench-backend/internal/app"
)

func main() {
	// Development convenience; absence of the file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
