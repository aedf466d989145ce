package catalog_cache

import (
	"sync"
	"time"

	"github.com/Grimm02938/COCMarket/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Stores category counts, popular games and the store price range.
// GetFilterMetadata, GetCategories and GetGames all read from this.

type metadataEntry struct {
	metadata  *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metadataEntry
)

func GetMetadata() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.metadata, true
	}
	return nil, false
}

func SetMetadata(metadata *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metadataEntry{metadata: metadata, fetchedAt: time.Now()}
}

// ── Popular games cache ──────────────────────────────────────────────────────

type gamesEntry struct {
	data      []models.GameData
	fetchedAt time.Time
}

var (
	gamesMu    sync.RWMutex
	gamesCache *gamesEntry
)

func GetGames() ([]models.GameData, bool) {
	gamesMu.RLock()
	defer gamesMu.RUnlock()
	if gamesCache != nil && time.Since(gamesCache.fetchedAt) < TTL {
		return gamesCache.data, true
	}
	return nil, false
}

func SetGames(data []models.GameData) {
	gamesMu.Lock()
	defer gamesMu.Unlock()
	gamesCache = &gamesEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any listing create/update/delete) ─────────

func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()

	gamesMu.Lock()
	gamesCache = nil
	gamesMu.Unlock()
}
