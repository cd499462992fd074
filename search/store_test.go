package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := Open(filepath.Join(t.TempDir(), "voters.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Insert(ctx, Record{
		VoterNumber: 1, Name: "राम थापा", ParentName: "हरि थापा",
		SpouseName: "सीता थापा", Gender: "पुरुष", Age: 45, HasAge: true,
	}))
	require.NoError(t, store.Insert(ctx, Record{
		VoterNumber: 2, Name: "सीता देवी", SpouseName: "-", Gender: "महिला",
	}))

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "राम थापा", records[0].Name)
	assert.True(t, records[0].HasAge)
	assert.Equal(t, 45, records[0].Age)

	// NULL age loads as unknown
	assert.False(t, records[1].HasAge)
	assert.Equal(t, "-", records[1].SpouseName)
}

// Load must hand back records with shadow fields ready for search
func TestStoreLoadPreparesShadows(t *testing.T) {
	ctx := context.Background()

	store, err := Open(filepath.Join(t.TempDir(), "voters.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Insert(ctx, Record{VoterNumber: 1, Name: "  राम थापा  "}))

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "राम थापा", records[0].shadow(FieldName))
}

func TestStoreInsertReplace(t *testing.T) {
	ctx := context.Background()

	store, err := Open(filepath.Join(t.TempDir(), "voters.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Insert(ctx, Record{VoterNumber: 1, Name: "राम"}))
	require.NoError(t, store.Insert(ctx, Record{VoterNumber: 1, Name: "रमेश"}))

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "रमेश", records[0].Name)
}
