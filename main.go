package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"pharmadepot/m/internal/config"
	"pharmadepot/m/internal/database"
	"pharmadepot/m/internal/migrations"
	"pharmadepot/m/internal/seed"
	"pharmadepot/m/internal/web"
)

func main() {
	seedCSV := flag.String("seed-medicines", "", "CSV medicine catalog to load on startup")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)
	if *seedCSV != "" {
		seed.LoadMedicines(db, *seedCSV)
	}

	handler := web.New(db, cfg.SessionSecret)

	log.Printf("Pharma Depot server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
