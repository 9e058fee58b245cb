package collector

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Firav/whackerlink-v4/internal/models"
)

const maxReportBytes = 1 << 20

// Forwarder relays a received report body downstream. Nil means log-only.
type Forwarder interface {
	Forward(ctx context.Context, key string, body []byte) error
}

// Server is the development collector: it accepts reporter POSTs on /,
// tags each report with a receipt id, logs it, and optionally forwards the
// raw body to a Forwarder.
type Server struct {
	log zerolog.Logger
	fwd Forwarder
	srv *http.Server
}

func New(bind string, fwd Forwarder, logger zerolog.Logger) *Server {
	s := &Server{log: logger, fwd: fwd}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleReport)
	s.srv = &http.Server{
		Addr:         bind,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the route table without binding a listener.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Serve() error {
	s.log.Info().Str("bind", s.srv.Addr).Msg("collector listening")
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// reportProbe pulls the fields shared across report shapes plus enough of
// each variant to log something useful. Unknown fields are ignored; the
// reporter's schema may grow ahead of this tool.
type reportProbe struct {
	Type      models.PacketType  `json:"Type"`
	SrcId     string             `json:"SrcId"`
	DstId     string             `json:"DstId"`
	Sites     []models.Site      `json:"Sites"`
	Status    models.StatusValue `json:"Status"`
	Timestamp string             `json:"Timestamp"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxReportBytes))
	if err != nil {
		s.log.Error().Err(err).Msg("read report body failed")
		http.Error(w, "read failed", http.StatusBadRequest)
		return
	}

	var probe reportProbe
	if err := json.Unmarshal(body, &probe); err != nil {
		s.log.Error().Err(err).Msg("malformed report")
		http.Error(w, "malformed report", http.StatusBadRequest)
		return
	}

	receipt := uuid.New().String()
	ev := s.log.Info().
		Str("receipt", receipt).
		Str("type", string(probe.Type)).
		Str("timestamp", probe.Timestamp)
	if probe.SrcId != "" {
		ev = ev.Str("src", probe.SrcId).Str("dst", probe.DstId)
	}
	if len(probe.Sites) > 0 {
		ev = ev.Int("sites", len(probe.Sites))
	}
	if probe.Status != "" {
		ev = ev.Str("status", string(probe.Status))
	}
	ev.Msg("report received")

	if s.fwd != nil {
		if err := s.fwd.Forward(r.Context(), receipt, body); err != nil {
			// forwarding is best effort too; the reporter already got its 2xx
			s.log.Error().Err(err).Str("receipt", receipt).Msg("forward report failed")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"receipt": receipt})
}
