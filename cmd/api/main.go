package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"aureon.ai/internal/auth"
	"aureon.ai/internal/chatbot"
	"aureon.ai/internal/config"
	"aureon.ai/internal/contact"
	"aureon.ai/internal/content"
	"aureon.ai/internal/feedback"
	"aureon.ai/internal/httpapi"
	"aureon.ai/internal/obs"
)

var version = "1.2.0"

func main() {
	obs.Init()
	cfg := config.Load()

	if cfg.AuthSecret == "" {
		log.Fatal("AUREON_AUTH_SECRET is required")
	}

	var db *sql.DB
	if cfg.PostgresDSN != "" {
		var err error
		db, err = sql.Open("pgx", cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	}
	if db == nil {
		log.Fatal("AUREON_PG_DSN is required")
	}

	issuer, err := auth.NewTokenIssuer(cfg.AuthSecret, auth.WithTokenTTL(cfg.TokenTTL))
	if err != nil {
		log.Fatalf("token issuer: %v", err)
	}

	// The denylist lives in Redis when an address is configured; entries
	// expire there on their own. Postgres is the fallback.
	var denylist auth.Denylist
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		denylist = auth.NewRedisDenylist(rdb, cfg.TokenTTL)
	} else {
		denylist = auth.NewPGDenylist(db, cfg.TokenTTL)
	}

	authSvc := auth.NewService(auth.NewPGAdminStore(db), denylist, issuer)
	contactSvc := contact.NewService(contact.NewPGStore(db))
	feedbackSvc := feedback.NewService(feedback.NewPGStore(db))
	contentSvc := content.NewService(
		content.NewPGPostStore(db),
		content.NewPGSolutionStore(db),
		content.NewPGIndustryStore(db),
		content.NewPGProjectStore(db),
		content.NewPGGalleryStore(db),
	)
	chatbotSvc := chatbot.NewService(chatbot.NewPGStore(db))

	api := httpapi.New(cfg, httpapi.ReadyProbe{DB: db}, version,
		authSvc, contactSvc, feedbackSvc, contentSvc, chatbotSvc)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting aureon-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	_ = srv.Shutdown(ctx)
	_ = db.Close()
	log.Println("Stopped")
}
