package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zel143/fittrack/internal/models"
	"github.com/Zel143/fittrack/internal/store"
)

func registerAlice(t *testing.T, s *store.Store) *models.User {
	t.Helper()
	user, err := s.Register(context.Background(), "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	return user
}

func TestWeightEntryRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	entry := models.WeightEntry{UserID: user.ID, Weight: 70.2, Date: "2024-01-10"}
	require.NoError(t, s.AddWeightEntry(ctx, &entry))
	require.Greater(t, entry.ID, 0)

	entries, err := s.ListWeightHistory(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, entry.ID, entries[0].ID)
	require.Equal(t, 70.2, entries[0].Weight)
	require.Equal(t, "2024-01-10", entries[0].Date)
}

func TestWeightOrderingNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	// Inserted out of order on purpose.
	for _, date := range []string{"2024-02-01", "2024-03-01", "2024-01-01"} {
		require.NoError(t, s.AddWeightEntry(ctx, &models.WeightEntry{UserID: user.ID, Weight: 70, Date: date}))
	}

	entries, err := s.ListWeightHistory(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "2024-03-01", entries[0].Date)
	require.Equal(t, "2024-02-01", entries[1].Date)
	require.Equal(t, "2024-01-01", entries[2].Date)
}

func TestWeightSameDateTieBreak(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	first := models.WeightEntry{UserID: user.ID, Weight: 70.0, Date: "2024-01-10"}
	second := models.WeightEntry{UserID: user.ID, Weight: 70.5, Date: "2024-01-10"}
	require.NoError(t, s.AddWeightEntry(ctx, &first))
	require.NoError(t, s.AddWeightEntry(ctx, &second))

	entries, err := s.ListWeightHistory(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Most recent insertion (highest id) wins the tie.
	require.Equal(t, second.ID, entries[0].ID)
	require.Equal(t, first.ID, entries[1].ID)
}

func TestWeightValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	cases := []struct {
		name  string
		entry models.WeightEntry
	}{
		{"zero weight", models.WeightEntry{UserID: user.ID, Weight: 0, Date: "2024-01-10"}},
		{"negative weight", models.WeightEntry{UserID: user.ID, Weight: -1, Date: "2024-01-10"}},
		{"missing date", models.WeightEntry{UserID: user.ID, Weight: 70}},
		{"malformed date", models.WeightEntry{UserID: user.ID, Weight: 70, Date: "10/01/2024"}},
		{"missing owner", models.WeightEntry{Weight: 70, Date: "2024-01-10"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.AddWeightEntry(ctx, &tc.entry)
			var vErr *store.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}

	entries, err := s.ListWeightHistory(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestDeleteIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	entry := models.WeightEntry{UserID: user.ID, Weight: 70, Date: "2024-01-10"}
	require.NoError(t, s.AddWeightEntry(ctx, &entry))

	removed, err := s.DeleteWeightEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = s.DeleteWeightEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestListUnknownOwnerIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	entries, err := s.ListWeightHistory(ctx, 12345)
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestFoodLogNegativeCalories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	err := s.LogFood(ctx, &models.FoodLog{UserID: user.ID, FoodName: "mystery", Calories: -1, Date: "2024-01-10"})
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "calories", vErr.Field)

	entries, err := s.ListFoodLog(ctx, user.ID, "")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFoodLogNegativeMacros(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	bad := -0.5
	err := s.LogFood(ctx, &models.FoodLog{UserID: user.ID, FoodName: "mystery", Calories: 100, Protein: &bad, Date: "2024-01-10"})
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "protein", vErr.Field)
}

func TestFoodLogDailyFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	require.NoError(t, s.LogFood(ctx, &models.FoodLog{UserID: user.ID, FoodName: "oatmeal", Calories: 350, Date: "2024-01-10"}))
	require.NoError(t, s.LogFood(ctx, &models.FoodLog{UserID: user.ID, FoodName: "salad", Calories: 200, Date: "2024-01-11"}))

	all, err := s.ListFoodLog(ctx, user.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	day, err := s.ListFoodLog(ctx, user.ID, "2024-01-10")
	require.NoError(t, err)
	require.Len(t, day, 1)
	require.Equal(t, "oatmeal", day[0].FoodName)
}

func TestFoodLibrarySetNullOnDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	item := models.FoodItem{FoodName: "oatmeal", CreatedByUserID: user.ID}
	require.NoError(t, s.CreateFoodItem(ctx, &item))
	require.Greater(t, item.ID, 0)

	log := models.FoodLog{UserID: user.ID, FoodItemID: &item.ID, FoodName: "oatmeal", Calories: 350, Date: "2024-01-10"}
	require.NoError(t, s.LogFood(ctx, &log))

	removed, err := s.DeleteFoodItem(ctx, item.ID)
	require.NoError(t, err)
	require.True(t, removed)

	// The log entry survives, its library link goes null.
	entries, err := s.ListFoodLog(ctx, user.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Nil(t, entries[0].FoodItemID)
	require.Equal(t, "oatmeal", entries[0].FoodName)
}

func TestExerciseCatalogRestrict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	exerciseID, err := s.EnsureExercise(ctx, "bench press", nil)
	require.NoError(t, err)
	require.Greater(t, exerciseID, 0)

	// Ensuring again yields the same catalog id.
	again, err := s.EnsureExercise(ctx, "bench press", nil)
	require.NoError(t, err)
	require.Equal(t, exerciseID, again)

	log := models.WorkoutLog{UserID: user.ID, ExerciseID: exerciseID, Date: "2024-01-10"}
	require.NoError(t, s.LogWorkout(ctx, &log))

	// Referenced catalog entries cannot be deleted.
	_, err = s.DeleteExercise(ctx, exerciseID)
	require.Error(t, err)
	require.True(t, store.IsForeignKeyViolation(err))
	var stErr *store.StorageError
	require.ErrorAs(t, err, &stErr)

	// Once the log is gone, deletion goes through.
	removed, err := s.DeleteWorkoutLog(ctx, log.ID)
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = s.DeleteExercise(ctx, exerciseID)
	require.NoError(t, err)
	require.True(t, removed)
}

func TestWorkoutLogValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	negSets := -1
	err := s.LogWorkout(ctx, &models.WorkoutLog{UserID: user.ID, ExerciseID: 1, Sets: &negSets, Date: "2024-01-10"})
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)

	err = s.LogWorkout(ctx, &models.WorkoutLog{UserID: user.ID, Date: "2024-01-10"})
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "exercise_id", vErr.Field)
}

func TestGoalLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	target := 65.0
	unit := "kg"
	date := "2026-12-31"
	goal := models.Goal{UserID: user.ID, GoalType: "weight_loss", TargetValue: &target, TargetUnit: &unit, TargetDate: &date}
	require.NoError(t, s.CreateGoal(ctx, &goal))
	require.Greater(t, goal.ID, 0)
	require.Equal(t, models.GoalStatusActive, goal.Status)

	updated, err := s.UpdateGoalStatus(ctx, goal.ID, models.GoalStatusCompleted)
	require.NoError(t, err)
	require.True(t, updated)

	goals, err := s.ListGoals(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.Equal(t, models.GoalStatusCompleted, goals[0].Status)
	require.Equal(t, 65.0, *goals[0].TargetValue)
	require.Equal(t, "2026-12-31", *goals[0].TargetDate)

	_, err = s.UpdateGoalStatus(ctx, goal.ID, "bogus")
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)

	updated, err = s.UpdateGoalStatus(ctx, 9999, models.GoalStatusAbandoned)
	require.NoError(t, err)
	require.False(t, updated)
}

func TestPlanCascadesExercises(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	user := registerAlice(t, s)

	plan := models.WorkoutPlan{UserID: user.ID, PlanName: "bulk"}
	require.NoError(t, s.CreatePlan(ctx, &plan))

	ex := models.PlanExercise{PlanID: plan.ID, ExerciseName: "squat"}
	require.NoError(t, s.AddPlanExercise(ctx, &ex))

	exercises, err := s.ListPlanExercises(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, exercises, 1)

	removed, err := s.DeletePlan(ctx, plan.ID)
	require.NoError(t, err)
	require.True(t, removed)

	exercises, err = s.ListPlanExercises(ctx, plan.ID)
	require.NoError(t, err)
	require.Empty(t, exercises)
}

func TestCreateRejectsUnknownOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	err := s.AddWeightEntry(ctx, &models.WeightEntry{UserID: 999, Weight: 70, Date: "2024-01-10"})
	var stErr *store.StorageError
	require.ErrorAs(t, err, &stErr)
	require.True(t, store.IsForeignKeyViolation(err))
}
