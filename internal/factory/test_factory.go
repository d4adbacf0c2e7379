package factory

import (
	"time"

	"github.com/mcoot/banker/internal/dependencies/mocks"
	"github.com/mcoot/banker/internal/services/search"
	"github.com/mcoot/banker/internal/storage/memory"
	"github.com/mcoot/banker/internal/testutil"
)

// TestDepth keeps searches in tests fast
const TestDepth = 2

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, search.Config{Depth: TestDepth, CacheSize: 1024}, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}
