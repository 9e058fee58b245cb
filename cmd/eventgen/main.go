package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Firav/whackerlink-v4/internal/config"
	"github.com/Firav/whackerlink-v4/internal/logger"
	"github.com/Firav/whackerlink-v4/internal/models"
	"github.com/Firav/whackerlink-v4/internal/reporter"

	"github.com/rs/zerolog/log"
)

var sampleSite = models.Site{
	Name:           "Simulcast North",
	SiteID:         "001",
	County:         "Dane",
	State:          "WI",
	ControlChannel: "851.0125",
	VoiceChannels:  []string{"851.2625", "851.5125"},
	Location:       models.Location{Lat: 43.0731, Long: -89.4012},
}

// emit cycles through the three report shapes so a collector under test sees
// all of them.
func emit(r *reporter.Reporter, cfg config.EventgenConfig, tick int) {
	switch tick % 3 {
	case 0:
		r.SendEvent(models.PacketGrpVchReq, cfg.SrcID, cfg.DstID, sampleSite, "eventgen", models.ResponseGrant, nil, nil)
	case 1:
		r.SendSiteBcast(models.PacketSiteBcast, models.SiteBcast{Sites: []models.Site{sampleSite}})
	case 2:
		r.SendStatusBcast(models.PacketStsBcast, models.StatusBcast{Site: sampleSite, Status: models.StatusOK})
	}
}

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.Init(cfg.Logging)
	log.Info().
		Str("collector", cfg.Reporter.Address).
		Int("port", cfg.Reporter.Port).
		Bool("enabled", cfg.Reporter.Enabled).
		Msg("starting eventgen")

	rep := reporter.New(cfg.Reporter.Address, cfg.Reporter.Port, log.Logger, cfg.Reporter.Enabled)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(cfg.Eventgen.IntervalSeconds) * time.Second)
	defer ticker.Stop()

	tick := 0
	for {
		select {
		case <-ticker.C:
			emit(rep, cfg.Eventgen, tick)
			tick++

		case sig := <-sigChan:
			log.Warn().Str("signal", sig.String()).Msg("shutdown signal received")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			rep.Shutdown(shutdownCtx)

			log.Info().Int("emitted", tick).Msg("eventgen stopped cleanly")
			return
		}
	}
}
