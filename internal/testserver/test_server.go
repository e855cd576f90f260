package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/planup/planup/internal/api"
	"github.com/planup/planup/internal/calendar"
	"github.com/planup/planup/internal/domain/feed"
	"github.com/planup/planup/internal/domain/issue"
	"github.com/planup/planup/internal/sqlite"
	"github.com/planup/planup/internal/transport"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Events *sqlite.EventRepository
	Feed   *feed.Store
	Issues *issue.Service
}

// New builds a server over an in-memory database with a deterministic feed
// (sequential ids, seeded demo records) and synchronous side-effect dispatch.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	events := sqlite.NewEventRepository(db)
	provider := calendar.NewLocalProvider(events, calendar.PermissionGranted, nil)

	store := feed.NewStore(feed.WithIDGenerator(&feed.SequenceGenerator{}))
	feed.Seed(store, time.Now())

	issueSvc := issue.NewService(store, provider, nil,
		issue.WithDispatcher(func(fn func()) { fn() }))

	handler := api.NewHandler(issueSvc, store)
	server := httptest.NewServer(transport.NewServer(handler))

	ts := &TestServer{
		Server: server,
		DB:     db,
		Events: events,
		Feed:   store,
		Issues: issueSvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
