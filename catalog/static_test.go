package catalog

import (
	"context"
	"testing"

	"mutawwif/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRepository_FetchByCategory(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	hotels, err := repo.FetchByCategory(ctx, models.CategoryAccommodation)
	require.NoError(t, err)
	assert.Len(t, hotels, 3)

	transport, err := repo.FetchByCategory(ctx, models.CategoryTransport)
	require.NoError(t, err)
	assert.Len(t, transport, 3)

	// Unknown category is an empty result, not an error.
	unknown, err := repo.FetchByCategory(ctx, "cruise")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestStaticRepository_FetchAllReturnsCopies(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	first, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	first[0].Name = "mutated"

	second, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}
