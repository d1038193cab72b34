package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	orgapp "github.com/pavel-webdev/file-organizer/app"
	app "github.com/pavel-webdev/file-organizer/web/run"
)

func main() {
	targetDir := flag.String("target", "", "Organized directory containing the catalog")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	configPath := flag.String("config", "", "Path to YAML configuration file")
	flag.Parse()

	if *targetDir == "" {
		fmt.Fprintln(os.Stderr, "Error: -target <organized directory> is required")
		os.Exit(1)
	}

	cfg, err := orgapp.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalogPath := filepath.Join(*targetDir, cfg.Organizer.CatalogFile)
	if _, err := os.Stat(catalogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: no catalog found at %s, run the organizer first\n", catalogPath)
		os.Exit(1)
	}

	webapp := app.WebApp{
		CatalogPath: catalogPath,
		Port:        cfg.Server.Port,
	}
	webapp.InitTemplates()

	addr := webapp.GetListenAddr()
	if *listenAddr != "" {
		addr = *listenAddr
	}

	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, webapp.GetRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
