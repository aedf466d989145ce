package catalog_cache

import (
	"testing"

	"github.com/Grimm02938/COCMarket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataSetGet(t *testing.T) {
	Invalidate()

	_, ok := GetMetadata()
	assert.False(t, ok)

	metadata := &models.FilterMetadata{
		Categories: []models.FilterOption{{Label: "Accounts", Value: "accounts", Count: 3}},
	}
	SetMetadata(metadata)

	got, ok := GetMetadata()
	require.True(t, ok)
	assert.Equal(t, metadata, got)
}

func TestGamesSetGet(t *testing.T) {
	Invalidate()

	_, ok := GetGames()
	assert.False(t, ok)

	games := []models.GameData{{Name: "Fortnite", ListingsCount: 2}}
	SetGames(games)

	got, ok := GetGames()
	require.True(t, ok)
	assert.Equal(t, games, got)
}

func TestInvalidateClearsEverything(t *testing.T) {
	SetMetadata(&models.FilterMetadata{})
	SetGames([]models.GameData{{Name: "CS:GO"}})

	Invalidate()

	_, ok := GetMetadata()
	assert.False(t, ok)
	_, ok = GetGames()
	assert.False(t, ok)
}
