package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Firav/whackerlink-v4/internal/models"
)

// Reports are timestamped in US Central regardless of host timezone, so the
// collector can compare them across deployments.
const (
	centralZone     = "America/Chicago"
	timestampLayout = "2006-01-02T15:04:05.000-07:00"
)

// Reporter relays network events to a collector endpoint as JSON over HTTP.
// Delivery is best effort: each send is dispatched off the calling path and
// failures are logged, never returned. A disabled reporter is a permanent
// no-op sink; it allocates no client and emits no log output.
type Reporter struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
	loc      *time.Location
	enabled  bool
	wg       sync.WaitGroup
}

// New builds a reporter for http://{address}:{port}. When enabled is false
// every operation on the returned reporter is a no-op.
func New(address string, port int, logger zerolog.Logger, enabled bool) *Reporter {
	r := &Reporter{log: logger, enabled: enabled}
	if !enabled {
		return r
	}

	loc, err := time.LoadLocation(centralZone)
	if err != nil {
		logger.Warn().Err(err).Msg("central timezone unavailable, timestamping reports in UTC")
		loc = time.UTC
	}
	r.loc = loc

	r.endpoint = fmt.Sprintf("http://%s:%d/", address, port)
	r.client = &http.Client{}

	logger.Info().Str("endpoint", r.endpoint).Msg("reporter started")
	return r
}

// SendEvent reports one packet event. responseType defaults to UNKNOWN when
// left zero; lat and long may be nil and are serialized as null. Returns
// before any serialization or network I/O happens.
func (r *Reporter) SendEvent(packetType models.PacketType, srcID, dstID string, site models.Site, extra string, responseType models.ResponseType, lat, long *string) {
	if !r.enabled {
		return
	}
	if responseType == "" {
		responseType = models.ResponseUnknown
	}
	r.dispatch(EventReport{
		Type:         packetType,
		SrcId:        srcID,
		DstId:        dstID,
		Site:         site,
		ResponseType: responseType,
		Extra:        extra,
		Lat:          lat,
		Long:         long,
		Timestamp:    r.timestamp(),
	})
}

// SendSiteBcast reports a site-list broadcast.
func (r *Reporter) SendSiteBcast(packetType models.PacketType, bcast models.SiteBcast) {
	if !r.enabled {
		return
	}
	r.dispatch(SiteBcastReport{
		Type:      packetType,
		Sites:     bcast.Sites,
		Timestamp: r.timestamp(),
	})
}

// SendStatusBcast reports a site-status broadcast.
func (r *Reporter) SendStatusBcast(packetType models.PacketType, bcast models.StatusBcast) {
	if !r.enabled {
		return
	}
	r.dispatch(StatusBcastReport{
		Type:      packetType,
		Site:      bcast.Site,
		Status:    bcast.Status,
		Timestamp: r.timestamp(),
	})
}

// SendReport serializes payload and POSTs it to the collector, blocking until
// the attempt resolves. It never returns an error: a non-2xx status or a
// transport failure produces exactly one error log line and nothing else.
// The typed Send methods run this on their own goroutine; call it directly
// only when blocking the caller is acceptable.
func (r *Reporter) SendReport(payload any) {
	if !r.enabled {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		r.log.Error().Err(err).Msg("marshal report failed")
		return
	}

	resp, err := r.client.Post(r.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		r.log.Error().Err(err).Msg("post report failed")
		return
	}
	defer resp.Body.Close()
	// drain so the connection goes back to the pool
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.log.Error().Int("status", resp.StatusCode).Msg("collector rejected report")
		return
	}
	r.log.Debug().Int("bytes", len(body)).Msg("report posted")
}

// Shutdown waits for in-flight sends to finish, up to ctx's deadline. It does
// not cancel them; a send past its POST call completes or fails on its own.
func (r *Reporter) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		r.log.Warn().Msg("reporter shutdown timeout, in-flight reports abandoned")
	}
}

// dispatch schedules one build-and-send as its own goroutine. The caller
// never waits on it; Shutdown is the only join point.
func (r *Reporter) dispatch(payload any) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.SendReport(payload)
	}()
}

// timestamp stamps the current instant in the collector's reference zone.
// Stamped on the calling path so the report carries send time, not the time
// the goroutine got scheduled.
func (r *Reporter) timestamp() string {
	return formatTimestamp(time.Now(), r.loc)
}

func formatTimestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timestampLayout)
}
