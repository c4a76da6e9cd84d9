// Package export serializes a user's weight history and workout logs to a
// delimited text format. It is a pure consumer of the store's list operations
// and adds no semantics of its own.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Zel143/fittrack/internal/models"
	"github.com/Zel143/fittrack/internal/store"
)

type Exporter struct {
	store *store.Store
}

func New(s *store.Store) *Exporter {
	return &Exporter{store: s}
}

// ExportUserData writes the user's weight history and workout logs, newest
// first, as sectioned CSV. Field order is date, name/metric, then numerics.
func (e *Exporter) ExportUserData(ctx context.Context, user *models.User, w io.Writer) error {
	if user == nil {
		return fmt.Errorf("export: no user")
	}

	weights, err := e.store.ListWeightHistory(ctx, user.ID)
	if err != nil {
		return err
	}
	logs, err := e.store.ListWorkoutLogs(ctx, user.ID)
	if err != nil {
		return err
	}
	names, err := e.exerciseNames(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== FitTrack User Data Export ===")
	fmt.Fprintf(w, "User: %s\n", user.Username)
	fmt.Fprintf(w, "Date: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Weight History ===")
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Weight (kg)"}); err != nil {
		return err
	}
	for _, entry := range weights {
		if err := cw.Write([]string{entry.Date, formatFloat(entry.Weight)}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Workout Logs ===")
	cw = csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Exercise", "Sets", "Reps", "Weight"}); err != nil {
		return err
	}
	for _, l := range logs {
		record := []string{
			l.Date,
			names[l.ExerciseID],
			formatInt(l.Sets),
			formatInt(l.Reps),
			formatFloatPtr(l.WeightUsed),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (e *Exporter) exerciseNames(ctx context.Context) (map[int]string, error) {
	exercises, err := e.store.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(exercises))
	for _, ex := range exercises {
		names[ex.ID] = ex.ExerciseName
	}
	return names, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
