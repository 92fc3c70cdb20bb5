package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/shopfront/internal/api"
	"github.com/example/shopfront/internal/auth"
	"github.com/example/shopfront/internal/config"
	"github.com/example/shopfront/internal/domain/cart"
	"github.com/example/shopfront/internal/domain/catalog"
	"github.com/example/shopfront/internal/domain/user"
	"github.com/example/shopfront/internal/infrastructure/blob"
	"github.com/example/shopfront/internal/infrastructure/kafka"
	"github.com/example/shopfront/internal/infrastructure/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[API] Configuration error: %v", err)
	}

	log.Println("[API] ========================================")
	log.Println("[API] Shopfront backend")
	log.Println("[API] ========================================")
	log.Printf("[API] Sequencer mode: %s", cfg.SequencerMode)
	if cfg.TokenTTL > 0 {
		log.Printf("[API] Token expiry enabled: %s", cfg.TokenTTL)
	} else {
		log.Println("[API] Token expiry disabled (legacy mode)")
	}
	if cfg.HashSecrets {
		log.Println("[API] Secret storage: bcrypt (not compatible with plaintext records)")
	} else {
		log.Println("[API] Secret storage: plaintext equality (legacy mode)")
	}

	// Stores
	var userStore user.Store
	var productStore catalog.Store
	if cfg.DatabaseURL != "" {
		db, err := store.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[API] Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()
		if err := store.EnsureSchema(db); err != nil {
			log.Fatalf("[API] Failed to ensure schema: %v", err)
		}
		log.Println("[API] Connected to PostgreSQL")
		userStore = store.NewPostgresUserStore(db)
		productStore = store.NewPostgresProductStore(db)
	} else {
		mem := store.NewMemoryStore()
		userStore = mem
		productStore = mem
		log.Println("[API] DATABASE_URL not set, using in-memory store (data is not persisted)")
	}

	// Optional event feed
	var cartEvents cart.EventPublisher
	var catalogEvents catalog.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		cartEvents, catalogEvents = producer, producer
		log.Printf("[API] Publishing events to %v topic %s", cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	// Services
	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	var secrets auth.SecretScheme = auth.PlainSecrets{}
	if cfg.HashSecrets {
		secrets = auth.BcryptSecrets{}
	}
	carts := cart.NewService(userStore, cartEvents)
	products := catalog.NewService(productStore, cfg.SequencerMode, catalogEvents)
	blobs := blob.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)

	router := api.NewRouter(api.RouterConfig{
		Handlers:     api.NewHandlers(carts, products, blobs),
		AuthHandlers: api.NewAuthHandlers(userStore, tokens, secrets),
		Tokens:       tokens,
		ImagesDir:    blobs.Dir(),
	})

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Printf("[API] Server started on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[API] Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[API] Shutdown error: %v", err)
	}
}
