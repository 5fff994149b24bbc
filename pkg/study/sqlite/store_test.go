package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/annikahug/cadenza/pkg/study"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "study.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := &study.Session{
		ID:          uuid.NewString(),
		Participant: "P01",
		Conditions:  study.ConditionOrder(0),
		Created:     time.Now().UTC(),
	}

	require.NoError(t, store.CreateSession(ctx, session))

	got, err := store.Session(ctx, session.ID)
	require.NoError(t, err)

	require.Equal(t, session.ID, got.ID)
	require.Equal(t, "P01", got.Participant)
	require.Equal(t, session.Conditions, got.Conditions)
}

func TestSessionNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Session(context.Background(), "missing")
	require.ErrorIs(t, err, study.ErrNotFound)
}

func TestSessionCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.SessionCount(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	for i := 0; i < 3; i++ {
		session := &study.Session{
			ID:         uuid.NewString(),
			Conditions: study.ConditionOrder(i),
			Created:    time.Now().UTC(),
		}

		require.NoError(t, store.CreateSession(ctx, session))
	}

	count, err = store.SessionCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestTrialsBySession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sessionID := uuid.NewString()

	for i, condition := range study.ConditionOrder(0) {
		trial := &study.Trial{
			ID:          uuid.NewString(),
			SessionID:   sessionID,
			Image:       "img-001",
			Condition:   condition,
			Description: "A small red boat on a calm lake.",
			Markup:      "<speak/>",
			Created:     time.Now().UTC().Add(time.Duration(i) * time.Second),
		}

		require.NoError(t, store.CreateTrial(ctx, trial))
	}

	trials, err := store.Trials(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, trials, 3)

	require.Equal(t, study.ConditionOrder(0), []study.Condition{
		trials[0].Condition, trials[1].Condition, trials[2].Condition,
	})
}

func TestTrialNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Trial(context.Background(), "missing")
	require.ErrorIs(t, err, study.ErrNotFound)
}

func TestRatingRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	trialID := uuid.NewString()

	rating := &study.Rating{
		ID:            uuid.NewString(),
		TrialID:       trialID,
		Naturalness:   5,
		Pleasantness:  6,
		Comprehension: 7,
		Comment:       "clear but a bit fast",
		Created:       time.Now().UTC(),
	}

	require.NoError(t, store.CreateRating(ctx, rating))

	ratings, err := store.Ratings(ctx, trialID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)

	require.Equal(t, rating.Comment, ratings[0].Comment)
	require.Equal(t, 5, ratings[0].Naturalness)
}

func TestRatingValidatedOnWrite(t *testing.T) {
	store := newTestStore(t)

	rating := &study.Rating{
		ID:          uuid.NewString(),
		TrialID:     uuid.NewString(),
		Naturalness: 9,
	}

	err := store.CreateRating(context.Background(), rating)
	require.Error(t, err)
	require.True(t, errors.Is(err, study.ErrScale))

	ratings, err := store.Ratings(context.Background(), rating.TrialID)
	require.NoError(t, err)
	require.Empty(t, ratings)
}
