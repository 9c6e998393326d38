package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/api"
	authproviders "github.com/Michel-2503/Kopfrechnen/pkg/auth/providers"
	"github.com/Michel-2503/Kopfrechnen/pkg/clients"
	"github.com/Michel-2503/Kopfrechnen/pkg/config"
	"github.com/Michel-2503/Kopfrechnen/pkg/game"
	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/network"
	"github.com/Michel-2503/Kopfrechnen/pkg/queue"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/problems"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/session"
	"github.com/Michel-2503/Kopfrechnen/pkg/random"
	"github.com/Michel-2503/Kopfrechnen/pkg/repositories"
	"github.com/Michel-2503/Kopfrechnen/pkg/state"
	"github.com/Michel-2503/Kopfrechnen/pkg/version"
	"github.com/Michel-2503/Kopfrechnen/pkg/workers"
)

const (
	saveSessionChannelSize = 100
	shutdownTimeout        = 10 * time.Second
)

func main() {
	envFile := flag.String("env-file", ".env", "Optional .env file to load")
	port := flag.Int("port", 0, "Port to listen on (overrides KOPFRECHNEN_PORT)")
	logLevel := flag.String("log-level", "", "Log level (overrides KOPFRECHNEN_LOG_LEVEL)")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		panic(fmt.Sprintf("Failed to load env file: %v", err))
	}
	cfg, err := config.LoadServerConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting quiz server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ServerConfig) error {
	var repository repositories.Repository
	if cfg.DatabaseURL != "" {
		r, err := repositories.NewRepositoryFromURL(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to create repository: %v", err)
		}
		repository = r
		defer repository.Close(context.Background())
	} else {
		log.Warn("No database configured, sessions are kept in memory only")
	}

	var authProvider authproviders.AuthProvider
	if cfg.AuthEnabled() {
		p, err := authproviders.NewFirebaseAuthProvider(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to create Firebase auth provider: %v", err)
		}
		authProvider = p
	}

	seed, err := random.SeedOrNew(cfg.Seed)
	if err != nil {
		return fmt.Errorf("failed to seed problem generator: %v", err)
	}
	log.Debug("Problem generator seed %d", seed)
	machine := session.NewMachine(problems.NewGenerator(seed), seed)

	stateManager := state.NewInMemoryStateManager()
	clientManager := clients.NewClientManager()
	clientEventManager := clients.NewClientEventManager()
	eventQueue := queue.NewInMemoryQueue(cfg.EventQueueSize)

	var saveSessionChan chan workers.SaveSessionRequest
	if repository != nil {
		saveSessionChan = make(chan workers.SaveSessionRequest, saveSessionChannelSize)
	}

	manager := game.NewManager(game.NewManagerOptions{
		StateManager:    stateManager,
		Repository:      repository,
		Machine:         machine,
		EventQueue:      eventQueue,
		ClientManager:   clientManager,
		SaveSessionChan: saveSessionChan,
		LoopInterval:    cfg.LoopInterval,
	})
	clientEventManager.RegisterHandler(manager.HandleClientEvent)

	workersDone := make(chan struct{})
	workerCount := 1
	if repository != nil {
		saveSessionsWorker := workers.NewSaveSessionsWorker(workers.NewSaveSessionsWorkerOptions{
			Repository:      repository,
			SaveSessionChan: saveSessionChan,
			StateManager:    stateManager,
			Interval:        cfg.SaveInterval,
		})
		workerCount++
		go func() {
			saveSessionsWorker.Start(ctx)
			workersDone <- struct{}{}
		}()
	}

	reaperWorker := workers.NewSessionReaperWorker(workers.NewSessionReaperWorkerOptions{
		Reaper:   manager,
		TTL:      cfg.SessionTTL,
		Interval: cfg.ReapInterval,
	})
	go func() {
		reaperWorker.Start(ctx)
		workersDone <- struct{}{}
	}()

	go func() {
		log.Info("Starting session manager")
		if err := manager.Start(ctx); err != nil {
			log.Error("Session manager stopped: %v", err)
		}
	}()

	var tls *api.TLSConfig
	if cfg.TLSEnabled() {
		tls = &api.TLSConfig{CertFile: cfg.TLSCertFile, KeyFile: cfg.TLSKeyFile}
	}
	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:         cfg.Port,
		TLS:          tls,
		AllowOrigin:  cfg.AllowOrigin,
		AuthProvider: authProvider,
		Sessions:     manager,
		Stream: network.NewStreamServer(network.NewStreamServerOptions{
			ClientManager:      clientManager,
			ClientEventManager: clientEventManager,
			OriginPatterns:     []string{cfg.AllowOrigin},
		}),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- apiServer.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop API server: %v", err)
	}

	// the save worker flushes all sessions once ctx is done
	for i := 0; i < workerCount; i++ {
		select {
		case <-workersDone:
		case <-shutdownCtx.Done():
			return fmt.Errorf("workers did not stop in time")
		}
	}
	return nil
}
