package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/config"
	"github.com/goval-community/homeval/internal/consts"
	"github.com/goval-community/homeval/internal/fs"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/logger"
	"github.com/goval-community/homeval/internal/pidfile"
	"github.com/goval-community/homeval/internal/pprof"
	"github.com/goval-community/homeval/internal/proc"
	"github.com/goval-community/homeval/internal/repldb"
	"github.com/goval-community/homeval/internal/replspace"
	"github.com/goval-community/homeval/internal/services"
	"github.com/goval-community/homeval/internal/socketserver"
	"github.com/goval-community/homeval/internal/socketutil"
	"github.com/goval-community/homeval/internal/store"
)

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.addr != "" {
		cfg.ListenAddr = opts.addr
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logPath != "" {
		cfg.LogPath = opts.logPath
	}
	return cfg, nil
}

func serve(ctx context.Context, opts *rootOptions) (err error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err != nil {
			logger.Error("Fatal error: %v", err)
		}
		_ = logger.Global().Close()
	}()
	logger.Info("Starting homeval %s", version)

	if socketutil.DetectServer(cfg.ListenAddr) {
		return fmt.Errorf("a server is already listening on %s", cfg.ListenAddr)
	}

	if cfg.PidFile != "" {
		pid := pidfile.New(cfg.PidFile)
		if err := pid.Acquire(); err != nil {
			return err
		}
		defer func() {
			if err := pid.Release(); err != nil {
				logger.Warn("%v", err)
			}
		}()
	}

	dotReplit, err := config.LoadDotReplit(cfg.DotReplitPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", cfg.DotReplitPath, err)
	}

	db, err := store.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	var files store.FileCache
	if db != nil {
		defer db.Close()
		files = db
	}

	kv, err := store.OpenKV(ctx, cfg.Redis, db)
	if err != nil {
		return fmt.Errorf("failed to open repldb store: %w", err)
	}
	if closer, ok := kv.(*store.Redis); ok {
		defer closer.Close()
	}

	resolver, err := identity.NewResolver(cfg.Identity.PublicKey)
	if err != nil {
		return err
	}

	env := proc.NewEnv()
	table := replspace.NewTable()
	deps := services.Deps{
		FS:        fs.NewOS(""),
		Env:       env,
		DotReplit: dotReplit,
		Files:     files,
		Replspace: table,
		Version:   version,
		Started:   time.Now(),
	}

	// repldb is bound before any service spawns a child, so the child
	// environment already carries its URL
	var replDB *repldb.Server
	var replDBListener net.Listener
	if kv != nil && cfg.ReplDBAddr != "" {
		replDB = repldb.NewServer(cfg.ReplDBAddr, kv)
		ln, url, err := replDB.Listen()
		if err != nil {
			return err
		}
		replDBListener = ln
		env.Set(repldb.EnvVar, url)
	}

	sessions := socketserver.NewSessionManager()
	router := socketserver.NewRouter(sessions, func(service string) (actor.Service, error) {
		return services.New(service, deps)
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return router.Run(ctx) })
	g.Go(func() error {
		table.Run(ctx, consts.NonceEvictInterval)
		return nil
	})
	if replDB != nil {
		g.Go(func() error { return replDB.Serve(ctx, replDBListener) })
	}

	if cfg.ReplspaceAddr != "" {
		api := replspace.NewServer(cfg.ReplspaceAddr, table, router, replspace.Options{
			Timeout:   time.Duration(cfg.Replspace.TimeoutSeconds) * time.Second,
			RateLimit: cfg.Replspace.RateLimit,
			Burst:     cfg.Replspace.Burst,
		})
		g.Go(func() error { return api.Run(ctx) })
	}

	if opts.pprofAddr != "" {
		prof := pprof.NewServer(pprof.Config{HTTPAddr: opts.pprofAddr, BlockProfileRate: 1, MutexProfileFraction: 1})
		g.Go(func() error { return prof.Run(ctx) })
	}

	srv := socketserver.NewServer(cfg.ListenAddr, router, sessions, resolver)
	g.Go(func() error { return srv.Run(ctx) })

	err = g.Wait()
	logger.Info("homeval stopped")
	return err
}
