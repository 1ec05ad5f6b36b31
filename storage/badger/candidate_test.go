package badger

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcehire/candidex/core"
	"github.com/sourcehire/candidex/storage"
)

func newMemoryRepo(t *testing.T) storage.CandidateRepository {
	t.Helper()

	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestPutCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		repo := newMemoryRepo(t)

		record, err := repo.PutCandidate(ctx, &core.CandidateRecord{
			Name:          "Asha Nair",
			EmbeddingText: "backend engineer",
		})
		require.NoError(t, err)
		assert.NotZero(t, record.Id)
		assert.False(t, record.InsertedAt.IsZero())
		assert.Equal(t, record.InsertedAt, record.UpdatedAt)
	})

	t.Run("ids are unique and ascending", func(t *testing.T) {
		repo := newMemoryRepo(t)

		var last core.ID
		for i := 0; i < 5; i++ {
			record, err := repo.PutCandidate(ctx, &core.CandidateRecord{
				EmbeddingText: fmt.Sprintf("candidate %d", i),
			})
			require.NoError(t, err)
			assert.Greater(t, record.Id, last)
			last = record.Id
		}
	})

	t.Run("rejects invalid record", func(t *testing.T) {
		repo := newMemoryRepo(t)

		_, err := repo.PutCandidate(ctx, &core.CandidateRecord{Name: "No Text"})
		assert.ErrorIs(t, err, core.ErrInvalidCandidate)
	})

	t.Run("full replace preserves inserted at", func(t *testing.T) {
		repo := newMemoryRepo(t)

		original, err := repo.PutCandidate(ctx, &core.CandidateRecord{
			Name:          "Asha",
			Skills:        []string{"go"},
			EmbeddingText: "v1",
		})
		require.NoError(t, err)

		_, err = repo.PutCandidate(ctx, &core.CandidateRecord{
			Id:            original.Id,
			Name:          "Asha Nair",
			EmbeddingText: "v2",
		})
		require.NoError(t, err)

		fetched, err := repo.GetCandidate(ctx, original.Id)
		require.NoError(t, err)
		assert.Equal(t, "Asha Nair", fetched.Name)
		assert.Empty(t, fetched.Skills) // replace, not merge
		assert.Equal(t, "v2", fetched.EmbeddingText)
		assert.Equal(t, original.InsertedAt, fetched.InsertedAt)
	})

	t.Run("replace moves fingerprint entry", func(t *testing.T) {
		repo := newMemoryRepo(t)

		original, err := repo.PutCandidate(ctx, &core.CandidateRecord{EmbeddingText: "v1"})
		require.NoError(t, err)

		_, err = repo.PutCandidate(ctx, &core.CandidateRecord{
			Id:            original.Id,
			EmbeddingText: "v2",
		})
		require.NoError(t, err)

		_, err = repo.FindByFingerprint(ctx, core.FingerprintFromContent("v1"))
		assert.ErrorIs(t, err, storage.ErrNotFound)

		id, err := repo.FindByFingerprint(ctx, core.FingerprintFromContent("v2"))
		require.NoError(t, err)
		assert.Equal(t, original.Id, id)
	})

	t.Run("put with unknown explicit id creates record", func(t *testing.T) {
		repo := newMemoryRepo(t)

		record, err := repo.PutCandidate(ctx, &core.CandidateRecord{
			Id:            777,
			EmbeddingText: "explicit",
		})
		require.NoError(t, err)
		assert.Equal(t, core.ID(777), record.Id)

		fetched, err := repo.GetCandidate(ctx, 777)
		require.NoError(t, err)
		assert.False(t, fetched.InsertedAt.IsZero())
	})
}

func TestGetCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		repo := newMemoryRepo(t)

		stored, err := repo.PutCandidate(ctx, &core.CandidateRecord{
			Name:            "Asha Nair",
			Skills:          []string{"go", "postgres"},
			ExperienceYears: 6.5,
			Education:       "B.Tech",
			Summary:         "backend engineer",
			EmbeddingText:   "backend engineer with go",
			ContactJSON:     []byte(`{"location": "Bangalore"}`),
		})
		require.NoError(t, err)

		fetched, err := repo.GetCandidate(ctx, stored.Id)
		require.NoError(t, err)
		assert.Equal(t, stored.Name, fetched.Name)
		assert.Equal(t, stored.Skills, fetched.Skills)
		assert.Equal(t, stored.ExperienceYears, fetched.ExperienceYears)
		assert.Equal(t, stored.Education, fetched.Education)
		assert.Equal(t, stored.Summary, fetched.Summary)
		assert.Equal(t, stored.EmbeddingText, fetched.EmbeddingText)
		assert.Equal(t, stored.ContactJSON, fetched.ContactJSON)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newMemoryRepo(t)

		_, err := repo.GetCandidate(ctx, 12345)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetCandidates(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	first, err := repo.PutCandidate(ctx, &core.CandidateRecord{EmbeddingText: "one"})
	require.NoError(t, err)
	second, err := repo.PutCandidate(ctx, &core.CandidateRecord{EmbeddingText: "two"})
	require.NoError(t, err)

	t.Run("missing ids skipped", func(t *testing.T) {
		records, err := repo.GetCandidates(ctx, first.Id, 9999, second.Id)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("no ids", func(t *testing.T) {
		records, err := repo.GetCandidates(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestDeleteCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("removes record and fingerprint", func(t *testing.T) {
		repo := newMemoryRepo(t)

		stored, err := repo.PutCandidate(ctx, &core.CandidateRecord{EmbeddingText: "gone soon"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteCandidate(ctx, stored.Id))

		_, err = repo.GetCandidate(ctx, stored.Id)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = repo.FindByFingerprint(ctx, core.FingerprintFromContent("gone soon"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newMemoryRepo(t)
		assert.ErrorIs(t, repo.DeleteCandidate(ctx, 42), storage.ErrNotFound)
	})
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	for i := 0; i < 3; i++ {
		_, err := repo.PutCandidate(ctx, &core.CandidateRecord{
			EmbeddingText: fmt.Sprintf("candidate %d", i),
		})
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteAll(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.FindByFingerprint(ctx, core.FingerprintFromContent("candidate 0"))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// IDs keep advancing; deleted ones are never reused.
	record, err := repo.PutCandidate(ctx, &core.CandidateRecord{EmbeddingText: "after clear"})
	require.NoError(t, err)
	assert.Greater(t, record.Id, core.ID(3))
}

func TestAllIDs(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	// Enough records to cross the lexicographic boundary (2 < 10 numerically).
	want := make([]core.ID, 0, 12)
	for i := 0; i < 12; i++ {
		record, err := repo.PutCandidate(ctx, &core.CandidateRecord{
			EmbeddingText: fmt.Sprintf("candidate %d", i),
		})
		require.NoError(t, err)
		want = append(want, record.Id)
	}

	ids, err := repo.AllIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, ids)
}

func TestNextID(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	first, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.NotZero(t, first)

	second, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Greater(t, second, first)

	// Reserved IDs do not collide with sequence-assigned ones.
	record, err := repo.PutCandidate(ctx, &core.CandidateRecord{EmbeddingText: "sequenced"})
	require.NoError(t, err)
	assert.Greater(t, record.Id, second)
}
