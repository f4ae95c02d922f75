// Command cleanup-sessions deletes expired sessions once. The server does
// the same periodically; this is for deployments that disable the sweep and
// schedule cleanup externally.
//
// Usage:
//
//	cleanup-sessions
//
// Reads the same configuration as the server.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/heartmarshall/flashcards/internal/app"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := app.CleanupSessions(ctx)
	if err != nil {
		log.Fatalf("cleanup sessions: %v", err)
	}

	fmt.Printf("Deleted %d expired sessions.\n", n)
}
