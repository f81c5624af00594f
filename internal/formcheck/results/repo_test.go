//go:build integration_test || all_tests

package results

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/db"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
)

func testRepoSetup(t *testing.T) (*Repo, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "spot_formcheck",
		TracingEnabled: false,
	})
	require.NoError(t, err)

	return NewRepo(dbPool), func() {
		dbPool.Close()
	}
}

func fakeAnalysis(clientID string) Analysis {
	return Analysis{
		VideoID:        gofakeit.UUID(),
		ClientID:       clientID,
		DetectionRatio: gofakeit.Float64Range(0.6, 1),
		Frames:         gofakeit.Number(30, 300),
		Feedback: []feedback.Item{{
			Kind:    feedback.KindDepth,
			Message: "Try to squat deeper",
			Evidence: &feedback.Evidence{
				FrameIndex: gofakeit.Number(0, 100),
				Timestamp:  time.Duration(gofakeit.Number(0, 5000)) * time.Millisecond,
			},
		}},
		CreatedAt: time.Now().UTC(),
	}
}

func TestRepo_Add_Get_Delete(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	added, err := repo.Add(ctx, fakeAnalysis(gofakeit.UUID()))
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Greater(t, added.ID, 0)

	got, err := repo.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.VideoID, got.VideoID)
	assert.Equal(t, added.ClientID, got.ClientID)
	assert.Equal(t, added.Frames, got.Frames)
	assert.InDelta(t, added.DetectionRatio, got.DetectionRatio, 1e-9)
	require.Len(t, got.Feedback, 1)
	assert.Equal(t, feedback.KindDepth, got.Feedback[0].Kind)
	require.NotNil(t, got.Feedback[0].Evidence)
	assert.Equal(t, added.Feedback[0].Evidence.FrameIndex, got.Feedback[0].Evidence.FrameIndex)

	require.NoError(t, repo.Delete(ctx, added.ID))

	_, err = repo.Get(ctx, added.ID)
	assert.ErrorIs(t, err, ErrAnalysisNotFound)

	err = repo.Delete(ctx, added.ID)
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

func TestRepo_List(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	clientID := gofakeit.UUID()
	var addedIDs []int
	for i := 0; i < 5; i++ {
		a := fakeAnalysis(clientID)
		a.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		added, err := repo.Add(ctx, a)
		require.NoError(t, err)
		addedIDs = append(addedIDs, added.ID)
	}
	defer func() {
		for _, id := range addedIDs {
			assert.NoError(t, repo.Delete(ctx, id))
		}
	}()

	analyses, total, err := repo.List(ctx, ListParams{
		ClientID: clientID,
		Page:     1,
		Size:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, analyses, 3)
	// newest first
	assert.Equal(t, addedIDs[4], analyses[0].ID)

	analyses, total, err = repo.List(ctx, ListParams{
		ClientID: clientID,
		Page:     2,
		Size:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, analyses, 2)

	count, err := repo.Count(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
