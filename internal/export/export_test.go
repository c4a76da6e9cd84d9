package export_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zel143/fittrack/internal/db"
	"github.com/Zel143/fittrack/internal/export"
	"github.com/Zel143/fittrack/internal/models"
	"github.com/Zel143/fittrack/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	p := db.NewProvider(filepath.Join(t.TempDir(), "fittrack.db"), zap.NewNop())
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, db.EnsureSchema(context.Background(), p))
	return store.New(p, zap.NewNop())
}

func TestExportUserData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	user, err := s.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, s.AddWeightEntry(ctx, &models.WeightEntry{UserID: user.ID, Weight: 70.2, Date: "2024-01-10"}))
	require.NoError(t, s.AddWeightEntry(ctx, &models.WeightEntry{UserID: user.ID, Weight: 69.8, Date: "2024-01-17"}))

	exerciseID, err := s.EnsureExercise(ctx, "bench press", nil)
	require.NoError(t, err)
	sets, reps, weight := 3, 8, 60.0
	require.NoError(t, s.LogWorkout(ctx, &models.WorkoutLog{
		UserID: user.ID, ExerciseID: exerciseID,
		Sets: &sets, Reps: &reps, WeightUsed: &weight, Date: "2024-01-12",
	}))

	var buf bytes.Buffer
	require.NoError(t, export.New(s).ExportUserData(ctx, user, &buf))
	out := buf.String()

	require.Contains(t, out, "=== FitTrack User Data Export ===")
	require.Contains(t, out, "User: alice")
	require.Contains(t, out, "Date,Weight (kg)")
	require.Contains(t, out, "Date,Exercise,Sets,Reps,Weight")
	require.Contains(t, out, "2024-01-10,70.20")
	require.Contains(t, out, "2024-01-12,bench press,3,8,60.00")

	// Newest weight entry comes first.
	require.Less(t, strings.Index(out, "2024-01-17"), strings.Index(out, "2024-01-10"))
}

func TestExportEscapesCommas(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	user, err := s.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	exerciseID, err := s.EnsureExercise(ctx, "clean, jerk", nil)
	require.NoError(t, err)
	require.NoError(t, s.LogWorkout(ctx, &models.WorkoutLog{UserID: user.ID, ExerciseID: exerciseID, Date: "2024-01-12"}))

	var buf bytes.Buffer
	require.NoError(t, export.New(s).ExportUserData(ctx, user, &buf))
	require.Contains(t, buf.String(), `"clean, jerk"`)
}

func TestExportEmptyHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	user, err := s.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.New(s).ExportUserData(ctx, user, &buf))
	require.Contains(t, buf.String(), "=== Weight History ===")
	require.Contains(t, buf.String(), "=== Workout Logs ===")
}

func TestExportNilUser(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	var buf bytes.Buffer
	require.Error(t, export.New(s).ExportUserData(context.Background(), nil, &buf))
}
