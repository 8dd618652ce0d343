package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/workbrief/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKRReportRepo_CRUD(t *testing.T) {
	repo := NewSQLiteOKRReportRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	date := testutil.MustDate("2025-12-20")

	assert.ErrorIs(t, repo.Update(ctx, testutil.NewTestOKRReport("2025-12-20", "x")), ErrNotFound)

	require.NoError(t, repo.Save(ctx, testutil.NewTestOKRReport("2025-12-20", "O1：目标")))
	got, err := repo.Get(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "O1：目标", got.Content)

	require.NoError(t, repo.Update(ctx, testutil.NewTestOKRReport("2025-12-20", "O1：新目标")))
	got, err = repo.Get(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "O1：新目标", got.Content)

	require.NoError(t, repo.Delete(ctx, date))
	_, err = repo.Get(ctx, date)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, date), ErrNotFound)
}

func TestOKRReportRepo_LatestAndList(t *testing.T) {
	repo := NewSQLiteOKRReportRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, d := range []string{"2025-09-20", "2025-12-20", "2025-06-18"} {
		require.NoError(t, repo.Save(ctx, testutil.NewTestOKRReport(d, "okr "+d)))
	}

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-20", latest.CreationDate.String())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-12-20", list[0].CreationDate.String())
	assert.Equal(t, "2025-06-18", list[2].CreationDate.String())
}
