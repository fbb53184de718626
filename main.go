package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"propsTracker/config"
	"propsTracker/models"
	"propsTracker/scheduler"
	"propsTracker/services/betService"
	"propsTracker/web"
)

var db *gorm.DB
var cfg *config.Config

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg = config.Load()

	u, err := dburl.Parse(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("invalid DATABASE_URL: %v", err)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch u.Driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(u.DSN+"?charset=utf8mb4&parseTime=True&loc=Local"), gormConfig)
	case "sqlite3":
		db, err = gorm.Open(sqlite.Open(u.DSN), gormConfig)
	default:
		log.Fatalf("unsupported database driver: %s", u.Driver)
	}
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&models.Bet{}, &models.BetLeg{}, &models.ErrorLog{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func main() {
	refresher := betService.NewRefresher(db)

	hub := web.NewHub()
	go hub.Run()

	cronService := scheduler.SetupCron(db, cfg, refresher, hub.BroadcastRefresh)

	server := web.NewServer(cfg, db, refresher, hub)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Printf("Received %v, shutting down", sig)
		cronService.Stop()
		server.Stop()
	}()

	log.Printf("Props tracker listening on :%s", cfg.Port)
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Println("Shutdown complete")
}
