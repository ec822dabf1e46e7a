package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	prefs := testutil.NewTestPreferences("web-development",
		testutil.WithPace(domain.PaceFast),
		testutil.WithStyles(domain.StyleVideos, domain.StyleHandsOn),
		testutil.WithDepth(domain.DepthIntermediate))
	c := testutil.NewTestCurriculum(prefs)
	require.NoError(t, repo.Create(ctx, c, true))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, fetched.ID)
	assert.Equal(t, prefs, fetched.Preferences)
	assert.Equal(t, "Web Development", fetched.DisplayTopic)
	assert.Equal(t, "local", fetched.Source)
	assert.Equal(t, c.Days, fetched.Days)
	assert.Empty(t, fetched.CompletedDays)
	assert.True(t, c.CreatedAt.Equal(fetched.CreatedAt))
}

func TestCurriculumRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteCurriculumRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCurriculumRepo_GetActive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	_, err := repo.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	first := testutil.NewTestCurriculum(testutil.NewTestPreferences("go"))
	require.NoError(t, repo.Create(ctx, first, true))

	require.NoError(t, repo.Deactivate(ctx))
	second := testutil.NewTestCurriculum(testutil.NewTestPreferences("rust"))
	require.NoError(t, repo.Create(ctx, second, true))

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestCurriculumRepo_CreateSecondActiveFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestCurriculum(testutil.NewTestPreferences("go")), true))
	err := repo.Create(ctx, testutil.NewTestCurriculum(testutil.NewTestPreferences("rust")), true)
	assert.Error(t, err)
}

func TestCurriculumRepo_CompletionOrderSurvivesReload(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	c := testutil.NewTestCurriculum(testutil.NewTestPreferences("go", testutil.WithPace(domain.PaceSlow)))
	require.NoError(t, repo.Create(ctx, c, true))

	require.NoError(t, repo.SetDayCompleted(ctx, c.ID, 5, true))
	require.NoError(t, repo.SetDayCompleted(ctx, c.ID, 2, true))
	require.NoError(t, repo.SetDayCompleted(ctx, c.ID, 7, true))
	require.NoError(t, repo.SetDayCompleted(ctx, c.ID, 2, false))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7}, fetched.CompletedDays)
	assert.True(t, fetched.Days[4].Completed)
	assert.False(t, fetched.Days[1].Completed)
	assert.True(t, fetched.Days[6].Completed)

	require.NoError(t, repo.SetDayCompleted(ctx, c.ID, 5, false))
	require.NoError(t, repo.SetDayCompleted(ctx, c.ID, 5, true))
	fetched, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 5}, fetched.CompletedDays)
}

func TestCurriculumRepo_CreateWithCompletedDays(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	c := testutil.NewTestCurriculum(testutil.NewTestPreferences("go"), testutil.WithCompleted(3, 1))
	require.NoError(t, repo.Create(ctx, c, false))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, fetched.CompletedDays)
}

func TestCurriculumRepo_SetDayCompleted_UnknownDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	c := testutil.NewTestCurriculum(testutil.NewTestPreferences("go", testutil.WithPace(domain.PaceFast)))
	require.NoError(t, repo.Create(ctx, c, true))

	err := repo.SetDayCompleted(ctx, c.ID, 9, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCurriculumRepo_ResetProgress(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	c := testutil.NewTestCurriculum(testutil.NewTestPreferences("go"), testutil.WithCompleted(1, 2, 3))
	require.NoError(t, repo.Create(ctx, c, true))
	require.NoError(t, repo.ResetProgress(ctx, c.ID))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.CompletedDays)
	for _, d := range fetched.Days {
		assert.False(t, d.Completed, "day %d", d.DayNumber)
	}
	assert.Len(t, fetched.Days, 5, "plan content is untouched")
}

func TestCurriculumRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	older := testutil.NewTestCurriculum(testutil.NewTestPreferences("go"),
		testutil.WithCreatedAt(base), testutil.WithCompleted(1))
	newer := testutil.NewTestCurriculum(testutil.NewTestPreferences("machine-learning", testutil.WithPace(domain.PaceFast)),
		testutil.WithCreatedAt(base.Add(time.Hour)), testutil.WithSource("gateway"))
	require.NoError(t, repo.Create(ctx, older, false))
	require.NoError(t, repo.Create(ctx, newer, true))

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, "Machine Learning", list[0].DisplayTopic)
	assert.Equal(t, "gateway", list[0].Source)
	assert.True(t, list[0].Active)
	assert.Equal(t, 3, list[0].TotalDays)
	assert.Equal(t, 0, list[0].CompletedDays)

	assert.Equal(t, older.ID, list[1].ID)
	assert.False(t, list[1].Active)
	assert.Equal(t, 5, list[1].TotalDays)
	assert.Equal(t, 1, list[1].CompletedDays)

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCurriculumRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCurriculumRepo(db)
	ctx := context.Background()

	c := testutil.NewTestCurriculum(testutil.NewTestPreferences("go"))
	require.NoError(t, repo.Create(ctx, c, false))
	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), ErrNotFound)
}
