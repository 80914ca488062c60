package factory

import (
	"time"

	"github.com/psyguage/psyguage-server/internal/dependencies/mocks"
	"github.com/psyguage/psyguage-server/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a mocked clock
// and in-memory storage
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, []byte("test-secret"), time.Hour)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
