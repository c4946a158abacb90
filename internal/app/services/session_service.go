package services

import (
	"context"
	stderrors "errors"
	"net/http"
	"sync/atomic"
	"time"

	appError "github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

const defaultKeepAliveInterval = 10 * time.Second

// SessionService keeps the upstream operator session alive by pinging a
// lightweight endpoint on an interval. Network hiccups are ignored until the
// next tick; an authentication failure fires the unauthorized hook so the
// operator can be told to sign in again.
type SessionService struct {
	client         *infrastructures.AegisClient
	interval       time.Duration
	onUnauthorized func()

	inFlight atomic.Bool
	cancel   context.CancelFunc
}

func NewSessionService(client *infrastructures.AegisClient) *SessionService {
	return &SessionService{
		client:   client,
		interval: defaultKeepAliveInterval,
	}
}

// OnUnauthorized registers the hook invoked when the upstream rejects the
// session. Must be called before Start.
func (s *SessionService) OnUnauthorized(fn func()) {
	s.onUnauthorized = fn
}

// Start launches the keep-alive loop with an immediate first ping. Calling
// Start twice restarts the loop.
func (s *SessionService) Start(ctx context.Context) {
	s.Stop()

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go func() {
		s.ping(loopCtx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				s.ping(loopCtx)
			}
		}
	}()
}

// Stop halts the keep-alive loop. Safe to call when not running.
func (s *SessionService) Stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// ping issues one keep-alive request. A ping is skipped while a previous one
// is still in flight so a slow upstream cannot stack requests.
func (s *SessionService) ping(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer s.inFlight.Store(false)

	_, err := pkg.Fetch[struct{}](ctx, s.client, http.MethodGet, "/members", nil, nil)
	if err == nil {
		return
	}

	var appErr *appError.AppError
	if stderrors.As(err, &appErr) && (appErr.StatusCode == http.StatusUnauthorized || appErr.StatusCode == http.StatusForbidden) {
		infrastructures.ComponentLogger("session").Warn("upstream session rejected")
		if s.onUnauthorized != nil {
			s.onUnauthorized()
		}
	}
}
