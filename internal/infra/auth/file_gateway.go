package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sessionFileMode = 0o600

// fileGateway implements the IdentityGateway interface with a JSON file as
// the session store, the client-side equivalent of keeping the auth session
// in localStorage. Announce is the single write path: it persists the
// session change first, then fans the event out to subscribers in order.
type fileGateway struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	session  *entity.Session
	handlers map[int]service.SessionHandler
	nextID   int
}

// FileGatewayParams holds dependencies for fileGateway, injected by Fx.
type FileGatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewFileGateway is the constructor for fileGateway.
func NewFileGateway(params FileGatewayParams) service.IdentityGateway {
	path := ""
	if params.Config.Auth != nil {
		path = params.Config.Auth.SessionFile
	}

	return &fileGateway{
		path:     path,
		logger:   params.Logger,
		handlers: make(map[int]service.SessionHandler),
	}
}

// Current returns the persisted session, dropping it when the access token
// has expired; the caller then goes through a fresh login or token refresh.
func (g *fileGateway) Current(ctx context.Context) (*entity.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session != nil {
		return g.session, nil
	}
	if g.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read session file")
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		g.logger.Warn("Session file is corrupt, discarding it", slog.Any("error", err))
		g.removeLocked()

		return nil, nil
	}

	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		g.logger.Info("Persisted session has expired, discarding it",
			slog.Any("identityID", session.IdentityID))
		g.removeLocked()

		return nil, nil
	}

	g.session = &session

	return g.session, nil
}

// Announce persists the session change and then invokes every subscriber
// synchronously, in registration order.
func (g *fileGateway) Announce(event entity.SessionEvent) {
	g.mu.Lock()
	switch event.Kind {
	case entity.SessionSignedIn:
		g.session = event.Session
		g.persistLocked(event.Session)
	case entity.SessionSignedOut:
		g.session = nil
		g.removeLocked()
	}
	handlers := make([]service.SessionHandler, 0, len(g.handlers))
	for id := 0; id < g.nextID; id++ {
		if handler, ok := g.handlers[id]; ok {
			handlers = append(handlers, handler)
		}
	}
	g.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Subscribe registers a handler and returns its unsubscribe function.
func (g *fileGateway) Subscribe(handler service.SessionHandler) func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	g.handlers[id] = handler

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.handlers, id)
	}
}

// persistLocked writes the session file. Called with the mutex held.
func (g *fileGateway) persistLocked(session *entity.Session) {
	if g.path == "" || session == nil {
		return
	}

	data, err := json.Marshal(session)
	if err != nil {
		g.logger.Error("Failed to marshal session", slog.Any("error", err))

		return
	}

	if err := os.MkdirAll(filepath.Dir(g.path), 0o700); err != nil {
		g.logger.Error("Failed to create session directory", slog.Any("error", err))

		return
	}
	if err := os.WriteFile(g.path, data, sessionFileMode); err != nil {
		g.logger.Error("Failed to persist session", slog.Any("error", err))
	}
}

// removeLocked deletes the session file. Called with the mutex held.
func (g *fileGateway) removeLocked() {
	if g.path == "" {
		return
	}
	if err := os.Remove(g.path); err != nil && !os.IsNotExist(err) {
		g.logger.Warn("Failed to remove session file", slog.Any("error", err))
	}
}
