package handlers

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xavierca1/leadmail/internal/infra/http/middleware"
)

// 1x1 transparent GIF89a.
var transparentGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

const trackingTimeout = 5 * time.Second

type EngagementRecorder interface {
	RecordOpen(ctx context.Context, logID string) error
	RecordClick(ctx context.Context, logID string) error
}

// TrackingHandler serves the open pixel and the click redirect. Tracking is
// best-effort: store errors are logged and the recipient always gets the
// pixel or the redirect.
type TrackingHandler struct {
	Tracker EngagementRecorder
}

func NewTrackingHandler(tracker EngagementRecorder) *TrackingHandler {
	return &TrackingHandler{Tracker: tracker}
}

func (h *TrackingHandler) TrackOpen(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		ctx, cancel := trackingContext(r)
		if err := h.Tracker.RecordOpen(ctx, id); err != nil {
			log.Printf("⚠️ [TRACK] erro ao registrar abertura %s: %v", id, err)
			middleware.RecordTrackingError("open")
		}
		cancel()
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.WriteHeader(http.StatusOK)
	w.Write(transparentGIF)
}

func (h *TrackingHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Missing url parameter")
		return
	}

	target, ok := redirectTarget(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid url parameter")
		return
	}

	if id := r.URL.Query().Get("id"); id != "" {
		ctx, cancel := trackingContext(r)
		if err := h.Tracker.RecordClick(ctx, id); err != nil {
			log.Printf("⚠️ [TRACK] erro ao registrar clique %s: %v", id, err)
			middleware.RecordTrackingError("click")
		}
		cancel()
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// trackingContext survives the client hanging up mid-request, so a prefetch
// that aborts early still gets recorded.
func trackingContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), trackingTimeout)
}

// redirectTarget accepts the url parameter as sent by the link builder or
// escaped once more by a mail client. Only absolute http(s) targets are
// allowed.
func redirectTarget(raw string) (string, bool) {
	target := raw
	if !hasHTTPScheme(target) {
		if decoded, err := url.QueryUnescape(target); err == nil {
			target = decoded
		}
	}

	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return target, true
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
