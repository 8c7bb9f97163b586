package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacredsteps/sacredsteps/internal/config"
	"github.com/sacredsteps/sacredsteps/internal/database"
	"github.com/sacredsteps/sacredsteps/internal/database/memory"
	"github.com/sacredsteps/sacredsteps/internal/database/verses"
	http_controllers "github.com/sacredsteps/sacredsteps/internal/http"
	"github.com/sacredsteps/sacredsteps/internal/services"
)

// ErrUnknownBackend is returned when STORE_BACKEND names an unsupported store.
var ErrUnknownBackend = errors.New("unknown store backend")

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Store bundles an opened verse store with its health check and cleanup.
type Store struct {
	Verses  services.VerseStore
	Checker http_controllers.StoreChecker
	Close   func() error
}

// OpenStore opens the store selected by cfg.Store.Backend and migrates its schema.
func OpenStore(cfg *config.Config) (*Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		db, err := database.NewDatabase(cfg.Database.Path, cfg.Database.LogLevel)
		if err != nil {
			return nil, err
		}
		return &Store{
			Verses:  verses.NewRepository(db.DB),
			Checker: db,
			Close:   db.Close,
		}, nil
	case config.StoreBackendMemory:
		repo := memory.NewRepository()
		return &Store{
			Verses:  repo,
			Checker: repo,
			Close:   func() error { return nil },
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Store.Backend)
	}
}

// NewRouter builds the root container bound to store.
func NewRouter(cfg *config.Config, store *Store, version string) *gin.Engine {
	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:        store.Verses,
		StoreChecker: store.Checker,
		Backend:      string(cfg.Store.Backend),
		Version:      version,
	})
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -2 is SIGINT, plain kill is SIGTERM; SIGKILL cannot be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Sacred Steps v%s", version)

	if !cfg.Store.Backend.IsValid() {
		log.Fatalf("Failed to initialize store: %v", fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Store.Backend))
	}
	log.Printf("Store backend: %s", cfg.Store.Backend)

	store, err := OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	if count, err := store.Verses.Count(); err != nil {
		log.Printf("WARNING: could not count verses: %v", err)
	} else {
		log.Printf("Store holds %d verses", count)
	}

	router := NewRouter(cfg, store, version)

	onShutdown := func(ctx context.Context) {
		if err := store.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
