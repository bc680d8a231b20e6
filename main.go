package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bramble/database"
	"bramble/site"

	"github.com/spf13/viper"
)

func main() {
	viper.SetDefault("addr", ":6835")
	viper.SetDefault("database_path", "bramble.db")
	viper.SetEnvPrefix("BRAMBLE")
	viper.AutomaticEnv()

	_ = database.GetDB() // force database initialization
	r := site.Router()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	addr := viper.GetString("addr")
	go func() {
		log.Printf("Running on http://localhost%s", addr)
		if err := http.ListenAndServe(addr, r); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")

	// Close the database connection
	database.CloseDB()
}
