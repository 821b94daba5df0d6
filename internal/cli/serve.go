package cli

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/api"
	"github.com/matzehuels/fsa/pkg/cache"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
	"github.com/matzehuels/fsa/pkg/observability"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr, redisAddr string
		ttl             time.Duration
		noCache         bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the machine catalog over HTTP",
		Long: `Serve the machine catalog over HTTP, with Prometheus metrics on /metrics.

Diagrams are cached in Redis when --redis is set, otherwise on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)
			cfg := c.Config.Serve
			flags := cmd.Flags()
			if !flags.Changed("addr") {
				addr = cfg.Addr
			}
			if !flags.Changed("redis") {
				redisAddr = cfg.RedisAddr
			}
			if !flags.Changed("cache-ttl") {
				ttl = c.Config.ServeTTL()
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			metrics := observability.NewPrometheus(reg)
			defer observability.Install(metrics)()

			var store cache.Cache
			switch {
			case noCache:
				store = cache.NewNullCache()
			case redisAddr != "":
				rc, err := cache.NewRedisCache(ctx, redisAddr)
				if err != nil {
					return fsaerrors.Wrap(fsaerrors.ErrCodeConfiguration, err, "connect to redis at %s", redisAddr)
				}
				store = rc
				logger.Info("Using Redis cache", "addr", redisAddr)
			default:
				fc, err := newCache(false)
				if err != nil {
					return err
				}
				store = fc
			}
			defer store.Close()

			srv := api.New(api.Options{
				Cache:    store,
				CacheTTL: ttl,
				Logger:   logger,
				Gatherer: reg,
			})
			logger.Info("Listening", "addr", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (default from config)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the diagram cache")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", time.Hour, "diagram cache TTL")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the diagram cache")
	return cmd
}
