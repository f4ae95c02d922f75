// Command seeder replaces the public catalog with a YAML bundle without
// starting the server. Download counters start again from zero.
//
// Flags:
//
//	--catalog  path to a catalog YAML file (default: CATALOG_PATH, then the
//	           bundle compiled into the binary)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/heartmarshall/flashcards/internal/app"
)

func main() {
	path := flag.String("catalog", "", "path to catalog YAML file")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := app.SeedCatalog(ctx, *path); err != nil {
		log.Fatalf("seeder: %v", err)
	}
}
