package auth

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGateway(t *testing.T) (*fileGateway, string) {
	path := filepath.Join(t.TempDir(), "session.json")
	cfg := &config.Config{Auth: &config.AuthConfig{SessionFile: path}}

	gateway := NewFileGateway(FileGatewayParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return gateway.(*fileGateway), path
}

func TestFileGateway_AnnouncePersistsAndRestores(t *testing.T) {
	gateway, path := createTestGateway(t)

	session := &entity.Session{
		IdentityID:  uuid.New(),
		Email:       "buyer@example.com",
		DisplayName: "Test Buyer",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	gateway.Announce(entity.SessionEvent{Kind: entity.SessionSignedIn, Session: session})

	_, err := os.Stat(path)
	require.NoError(t, err)

	// A fresh gateway over the same file restores the session.
	restoredGateway, _ := createTestGateway(t)
	restoredGateway.path = path
	restored, err := restoredGateway.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, session.IdentityID, restored.IdentityID)
}

func TestFileGateway_SignOutRemovesSessionFile(t *testing.T) {
	gateway, path := createTestGateway(t)

	gateway.Announce(entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: &entity.Session{IdentityID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)},
	})
	gateway.Announce(entity.SessionEvent{Kind: entity.SessionSignedOut})

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	current, err := gateway.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestFileGateway_ExpiredSessionDiscarded(t *testing.T) {
	gateway, _ := createTestGateway(t)

	gateway.Announce(entity.SessionEvent{
		Kind: entity.SessionSignedIn,
		Session: &entity.Session{
			IdentityID: uuid.New(),
			ExpiresAt:  time.Now().Add(-time.Minute),
		},
	})
	gateway.session = nil // Force a reload from disk.

	current, err := gateway.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestFileGateway_CorruptSessionFileDiscarded(t *testing.T) {
	gateway, path := createTestGateway(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	current, err := gateway.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestFileGateway_SubscribersReceiveEventsInOrder(t *testing.T) {
	gateway, _ := createTestGateway(t)

	var order []string
	unsubscribeFirst := gateway.Subscribe(func(event entity.SessionEvent) {
		order = append(order, "first:"+string(event.Kind))
	})
	gateway.Subscribe(func(event entity.SessionEvent) {
		order = append(order, "second:"+string(event.Kind))
	})

	gateway.Announce(entity.SessionEvent{
		Kind:    entity.SessionSignedIn,
		Session: &entity.Session{IdentityID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)},
	})
	assert.Equal(t, []string{"first:SIGNED_IN", "second:SIGNED_IN"}, order)

	unsubscribeFirst()
	gateway.Announce(entity.SessionEvent{Kind: entity.SessionSignedOut})
	assert.Equal(t, []string{"first:SIGNED_IN", "second:SIGNED_IN", "second:SIGNED_OUT"}, order)
}
