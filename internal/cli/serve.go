package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/internal/server"
	"github.com/gridboard/gridboard/pkg/cache"
)

// serveCommand creates the serve command for the dashboard API server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		storeKind string
		mongoURI  string
		mongoDB   string
		cacheKind string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		Long: `Run the dashboard API server.

The server stores dashboard definitions and assembles their bodies on
demand. The memory store suits single-instance development; mongo keeps
dashboards in MongoDB for multi-instance deployments. Assembled bodies
are cached per dashboard with the selected cache backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), serveParams{
				addr:      addr,
				storeKind: storeKind,
				mongoURI:  mongoURI,
				mongoDB:   mongoDB,
				cacheKind: cacheKind,
				redisAddr: redisAddr,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&storeKind, "store", "memory", "dashboard store: memory, mongo")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI (store=mongo)")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", appName, "MongoDB database name (store=mongo)")
	cmd.Flags().StringVar(&cacheKind, "cache", "file", "body cache: file, redis, none")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address (cache=redis)")

	return cmd
}

type serveParams struct {
	addr      string
	storeKind string
	mongoURI  string
	mongoDB   string
	cacheKind string
	redisAddr string
}

func (c *CLI) runServe(ctx context.Context, p serveParams) error {
	store, err := c.newStore(ctx, p)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()

	bodyCache, err := c.newServeCache(ctx, p)
	if err != nil {
		return err
	}
	defer bodyCache.Close()

	srv := &http.Server{
		Addr:              p.addr,
		Handler:           server.New(store, bodyCache, c.Logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("server listening", "addr", p.addr, "store", p.storeKind, "cache", p.cacheKind)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (c *CLI) newStore(ctx context.Context, p serveParams) (server.Store, error) {
	switch p.storeKind {
	case "memory":
		return server.NewMemoryStore(), nil
	case "mongo":
		return server.NewMongoStore(ctx, p.mongoURI, p.mongoDB)
	}
	return nil, fmt.Errorf("unknown store %q (expected memory or mongo)", p.storeKind)
}

func (c *CLI) newServeCache(ctx context.Context, p serveParams) (cache.Cache, error) {
	switch p.cacheKind {
	case "none":
		return cache.NewNullCache(), nil
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, p.redisAddr)
	}
	return nil, fmt.Errorf("unknown cache %q (expected file, redis, or none)", p.cacheKind)
}
