package main

import (
	"log"

	"github.com/dayweave/planner/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ dayweave failed to start: %v", err)
	}
}
