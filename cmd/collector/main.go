package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Firav/whackerlink-v4/internal/collector"
	"github.com/Firav/whackerlink-v4/internal/config"
	"github.com/Firav/whackerlink-v4/internal/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.Init(cfg.Logging)
	log.Info().Str("bind", cfg.Collector.Bind).Msg("starting collector")

	var fwd collector.Forwarder
	var kf *collector.KafkaForwarder
	if cfg.Collector.Kafka.Enabled {
		kf, err = collector.NewKafkaForwarder(cfg.Collector.Kafka)
		if err != nil {
			log.Error().Err(err).Msg("kafka forwarder disabled")
		} else {
			fwd = kf
		}
	}

	srv := collector.New(cfg.Collector.Bind, fwd, log.Logger)

	go func() {
		if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("collector server stopped")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Warn().Str("signal", sig.String()).Msg("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("collector shutdown failed")
	}
	if kf != nil {
		if err := kf.Close(); err != nil {
			log.Error().Err(err).Msg("kafka forwarder close failed")
		}
	}

	log.Info().Msg("collector stopped cleanly")
}
