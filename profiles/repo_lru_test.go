package profiles_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-backoffice/internal/errors"
	"github.com/jrsteele09/go-backoffice/profiles"
	"github.com/stretchr/testify/require"
)

func TestLRURepo(t *testing.T) {
	repo := profiles.NewLRURepo(10, time.Minute)

	_, err := repo.Get("tok")
	require.ErrorIs(t, err, errors.ErrNotFound)

	require.NoError(t, repo.Upsert("tok", map[string]any{"hotel_name": "Grand"}))
	fields, err := repo.Get("tok")
	require.NoError(t, err)
	require.Equal(t, "Grand", fields["hotel_name"])

	// callers get a copy
	fields["hotel_name"] = "changed"
	fields, err = repo.Get("tok")
	require.NoError(t, err)
	require.Equal(t, "Grand", fields["hotel_name"])

	require.NoError(t, repo.Delete("tok"))
	_, err = repo.Get("tok")
	require.ErrorIs(t, err, errors.ErrNotFound)
	require.NoError(t, repo.Delete("tok"))

	require.Error(t, repo.Upsert("", map[string]any{}))
}

func TestLRURepo_Expiry(t *testing.T) {
	repo := profiles.NewLRURepo(10, 20*time.Millisecond)
	require.NoError(t, repo.Upsert("tok", map[string]any{"a": "b"}))

	require.Eventually(t, func() bool {
		_, err := repo.Get("tok")
		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func TestLRURepo_Bounded(t *testing.T) {
	repo := profiles.NewLRURepo(2, time.Minute)
	require.NoError(t, repo.Upsert("a", nil))
	require.NoError(t, repo.Upsert("b", nil))
	require.NoError(t, repo.Upsert("c", nil))
	require.Equal(t, 2, repo.Len())

	_, err := repo.Get("a")
	require.ErrorIs(t, err, errors.ErrNotFound)
}
