package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/pkg/config"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

type fakeSweeper struct {
	mu        sync.Mutex
	stale     []*ent.StudySession
	abandoned []string
	abandonFn func(sessionID string) error
}

func (f *fakeSweeper) StaleSessions(ctx context.Context, cutoff time.Time) ([]*ent.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stale, nil
}

func (f *fakeSweeper) AbandonSession(ctx context.Context, sessionID string, metrics *models.SessionMetrics) (*ent.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.abandonFn != nil {
		if err := f.abandonFn(sessionID); err != nil {
			return nil, err
		}
	}
	f.abandoned = append(f.abandoned, sessionID)
	return &ent.StudySession{ID: sessionID}, nil
}

func (f *fakeSweeper) abandonedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.abandoned...)
}

type fakeCleaner struct {
	mu      sync.Mutex
	ttlDays []int
	deleted int
}

func (f *fakeCleaner) CleanupOrphanedEvents(ctx context.Context, ttlDays int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttlDays = append(f.ttlDays, ttlDays)
	return f.deleted, nil
}

type fakeLive struct {
	ids []string
}

func (f *fakeLive) LiveSessionIDs() []string { return f.ids }

type fakePub struct {
	mu        sync.Mutex
	abandoned []events.SessionEndedPayload
}

func (f *fakePub) PublishSessionAbandoned(ctx context.Context, payload events.SessionEndedPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abandoned = append(f.abandoned, payload)
	return nil
}

func testConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SweepInterval:       time.Hour,
		StaleSessionTimeout: 30 * time.Minute,
		EventTTLDays:        7,
	}
}

func TestService_AbandonsStaleSessions(t *testing.T) {
	sweeper := &fakeSweeper{stale: []*ent.StudySession{{ID: "s-1"}, {ID: "s-2"}}}
	cleaner := &fakeCleaner{}
	pub := &fakePub{}

	svc := NewService(testConfig(), sweeper, cleaner, nil, pub)
	svc.runAll(context.Background())

	assert.ElementsMatch(t, []string{"s-1", "s-2"}, sweeper.abandonedIDs())
	require.Len(t, pub.abandoned, 2)
	assert.Equal(t, "s-1", pub.abandoned[0].SessionID)
	assert.NotEmpty(t, pub.abandoned[0].Timestamp)
}

func TestService_SkipsSessionsWithLiveLoops(t *testing.T) {
	sweeper := &fakeSweeper{stale: []*ent.StudySession{{ID: "live"}, {ID: "orphan"}}}
	live := &fakeLive{ids: []string{"live"}}

	svc := NewService(testConfig(), sweeper, &fakeCleaner{}, live, &fakePub{})
	svc.runAll(context.Background())

	assert.Equal(t, []string{"orphan"}, sweeper.abandonedIDs())
}

func TestService_ToleratesAbandonRace(t *testing.T) {
	// Another pod (or the session's own loop) ends the session between the
	// stale query and the abandon write.
	sweeper := &fakeSweeper{
		stale: []*ent.StudySession{{ID: "raced"}, {ID: "orphan"}},
		abandonFn: func(sessionID string) error {
			if sessionID == "raced" {
				return services.ErrSessionEnded
			}
			return nil
		},
	}
	pub := &fakePub{}

	svc := NewService(testConfig(), sweeper, &fakeCleaner{}, nil, pub)
	svc.runAll(context.Background())

	assert.Equal(t, []string{"orphan"}, sweeper.abandonedIDs())
	require.Len(t, pub.abandoned, 1)
	assert.Equal(t, "orphan", pub.abandoned[0].SessionID)
}

func TestService_CleansUpOrphanedEvents(t *testing.T) {
	cleaner := &fakeCleaner{deleted: 3}

	svc := NewService(testConfig(), &fakeSweeper{}, cleaner, nil, &fakePub{})
	svc.runAll(context.Background())

	require.Len(t, cleaner.ttlDays, 1)
	assert.Equal(t, 7, cleaner.ttlDays[0])
}

func TestService_StartRunsInitialSweepAndStops(t *testing.T) {
	sweeper := &fakeSweeper{stale: []*ent.StudySession{{ID: "s-1"}}}
	cleaner := &fakeCleaner{}

	svc := NewService(testConfig(), sweeper, cleaner, nil, &fakePub{})
	svc.Start(context.Background())

	require.Eventually(t, func() bool {
		return len(sweeper.abandonedIDs()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	svc.Stop()

	// Only the initial sweep ran; the hour-long ticker never fired.
	cleaner.mu.Lock()
	runs := len(cleaner.ttlDays)
	cleaner.mu.Unlock()
	assert.Equal(t, 1, runs)
}
