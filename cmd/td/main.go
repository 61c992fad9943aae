package main

import (
	"fmt"
	"os"

	"task-desk/internal/api"
	"task-desk/internal/cli"
	"task-desk/internal/config"
	"task-desk/internal/repository/kv"
)

func main() {
	// Load configuration: defaults, then environment, flags apply later
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create the backing store with dependency injection
	store, err := config.CreateStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating store: %v\n", err)
		os.Exit(1)
	}

	repo := kv.New(store)
	defer repo.Close()

	// Create API instance
	apiInstance := api.New(repo)

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
