// Package main - Entry point for the renovation cost estimation server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"renovation-cost/api"
	"renovation-cost/core/catalog"
	"renovation-cost/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	settingsPath := flag.String("settings", "", "Path to financial settings file")
	flag.Parse()

	defer logging.Sync()

	settings, err := catalog.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	// Create API server
	apiServer := api.NewServer(version, settings)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("Renovation Cost Estimation Server v%s\n", version)
	fmt.Printf("   API: http://localhost%s/api\n", *addr)
	fmt.Println()

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
