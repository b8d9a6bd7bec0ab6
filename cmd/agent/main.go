package main

import (
	"log"

	"github.com/krpetrov/go-ltr-calculator/internal/agent"
)

func main() {
	a, err := agent.New()
	if err != nil {
		log.Fatalf("Agent start error: %v", err)
	}

	a.Run()
}
