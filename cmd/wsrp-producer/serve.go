package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/behaviors"
	"github.com/telemetrytv/wsrp/config"
	httpbinding "github.com/telemetrytv/wsrp/http-binding"
	"github.com/telemetrytv/wsrp/logging"
	natstransport "github.com/telemetrytv/wsrp/nats-transport"
)

var serveLog = logging.Bind("wsrp:cmd:serve")

const (
	shutdownTimeout = 5 * time.Second
	metricsPath     = "/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the configured behaviors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := logging.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
			return err
		}

		metricsRegistry := prometheus.NewRegistry()
		producer, err := buildProducer(cfg, metricsRegistry)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		switch cfg.Binding.Kind {
		case config.BindingNATS:
			return serveNATS(ctx, cfg, producer, metricsRegistry)
		default:
			return serveHTTP(ctx, cfg, producer, metricsRegistry)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// buildProducer assembles the registry, behaviors and producer described by
// cfg. Producer metrics are registered with metricsRegistry.
func buildProducer(cfg *config.Config, metricsRegistry prometheus.Registerer) (*wsrp.Producer, error) {
	version, err := cfg.ProtocolVersion()
	if err != nil {
		return nil, err
	}
	cookieProtocol, err := cfg.CookieProtocol()
	if err != nil {
		return nil, err
	}

	serviceDescription := wsrp.NewServiceDescriptionBehaviorFrom(wsrp.CreateServiceDescription(
		cfg.ServiceDescription.RequiresRegistration,
		cfg.ServiceDescription.RegistrationProperties,
	))
	serviceDescription.SetCookieProtocol(cookieProtocol)

	registry := wsrp.NewBehaviorRegistry()
	registry.SetServiceDescriptionBehavior(serviceDescription)
	registry.SetRegistrationBehavior(wsrp.NewBaseRegistrationBehavior())
	if err := behaviors.Install(registry, cfg.Behaviors...); err != nil {
		return nil, err
	}

	producer := wsrp.NewProducer(version, registry, wsrp.WithMetrics(wsrp.NewMetrics(metricsRegistry)))

	currentMarkupHandle := cfg.CurrentMarkupHandle
	if currentMarkupHandle == "" {
		if handles := registry.Handles(); len(handles) > 0 {
			currentMarkupHandle = handles[0]
		}
	}
	producer.SetCurrentMarkupHandle(currentMarkupHandle)

	serveLog.WithFields(logrus.Fields{
		"version":   version.String(),
		"handles":   registry.Handles(),
		"cookies":   cookieProtocol,
		"current":   currentMarkupHandle,
		"behaviors": cfg.Behaviors,
	}).Info("producer ready")

	return producer, nil
}

func serveHTTP(ctx context.Context, cfg *config.Config, producer *wsrp.Producer, metricsRegistry *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle(httpbinding.PathPrefix, httpbinding.New(producer))
	mux.Handle(metricsPath, promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))

	return listen(ctx, &http.Server{Addr: cfg.Binding.Address, Handler: mux})
}

// serveNATS answers dispatches over NATS. When an address is configured the
// producer metrics are also served there.
func serveNATS(ctx context.Context, cfg *config.Config, producer *wsrp.Producer, metricsRegistry *prometheus.Registry) error {
	natsConn, err := nats.Connect(cfg.Binding.NatsURL, nats.Name(cfg.Name))
	if err != nil {
		return errors.Wrapf(err, "failed to connect to %s", cfg.Binding.NatsURL)
	}
	defer natsConn.Close()

	service := wsrp.NewProducerService(cfg.Name, natstransport.New(natsConn), producer)
	if err := service.Start(); err != nil {
		return err
	}
	serveLog.Infof("serving %s on %s", cfg.Name, cfg.Binding.NatsURL)

	if cfg.Binding.Address == "" {
		<-ctx.Done()
		return service.Stop()
	}

	listenErr := listen(ctx, &http.Server{Addr: cfg.Binding.Address, Handler: metricsHandler(metricsRegistry)})
	if err := service.Stop(); err != nil {
		return err
	}
	return listenErr
}

func metricsHandler(metricsRegistry *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
	return mux
}

// listen serves until ctx is done and then shuts the server down.
func listen(ctx context.Context, server *http.Server) error {
	errChan := make(chan error, 1)
	go func() {
		serveLog.Infof("listening on %s", server.Addr)
		errChan <- server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return errors.Wrap(err, "http server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
