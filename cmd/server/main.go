package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/config"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/db"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/httpapi"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/service"
)

func main() {
	// -- Logger --
	logger := log.New(os.Stdout, "", log.LstdFlags)

	// -- Configs preload --
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	// -- Connect to DB --
	database, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Fatalf("database connection error: %v", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(database); err != nil {
			logger.Fatalf("database migration error: %v", err)
		}
	}

	handler := httpapi.NewHandler(
		service.NewClientService(database),
		service.NewBillService(database),
		service.NewAttendanceService(database),
		logger,
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// -- Shutdown --
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}()

	// -- Startup --
	logger.Printf("starting server (%s), listening to port %s...", cfg.Database.Driver, cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server failed: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Printf("server stopped")
}
