package main

import (
	"log"

	"github.com/krpetrov/go-ltr-calculator/internal/database"
	"github.com/krpetrov/go-ltr-calculator/internal/orchestrator"
)

func main() {
	db, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer db.Close()

	orch := orchestrator.New(db)
	if err := orch.RunServer(); err != nil {
		log.Fatalf("Start server error: %v", err)
	}
}
