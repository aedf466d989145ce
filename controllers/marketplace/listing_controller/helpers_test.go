package listing_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/store/listings?"+rawQuery, nil)
	return c
}

func TestBuildListingOrderClause(t *testing.T) {
	assert.Equal(t, "l.price ASC, l.id ASC", buildListingOrderClause("price_asc"))
	assert.Equal(t, "l.price DESC, l.id ASC", buildListingOrderClause("price_desc"))
	assert.Equal(t, "s.trust_score DESC, l.id ASC", buildListingOrderClause("rating"))
	assert.Equal(t, "l.created_at DESC, l.id ASC", buildListingOrderClause("newest"))
	assert.Equal(t, "l.created_at DESC, l.id ASC", buildListingOrderClause("bogus"))
	assert.Equal(t, "l.created_at DESC, l.id ASC", buildListingOrderClause(""))
}

func TestParsePagination(t *testing.T) {
	page, limit := parsePagination(testContext("page=3&limit=50"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	page, limit = parsePagination(testContext(""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = parsePagination(testContext("page=-1&limit=9999"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}

func TestBuildListingFiltersEmptyQuery(t *testing.T) {
	conditions, args := buildListingFilters(testContext(""))

	assert.Equal(t, []string{"l.is_available = TRUE"}, conditions)
	assert.Empty(t, args)
}

func TestBuildListingFiltersKnownValues(t *testing.T) {
	conditions, args := buildListingFilters(testContext(
		"category=accounts&game=Fortnite&min_price=30&max_price=100&condition=good&featured=true",
	))

	assert.Contains(t, conditions, "l.category = ?")
	assert.Contains(t, conditions, "LOWER(l.game_name) = LOWER(?)")
	assert.Contains(t, conditions, "l.price >= ?")
	assert.Contains(t, conditions, "l.price <= ?")
	assert.Contains(t, conditions, "l.condition = ?")
	assert.Contains(t, conditions, "l.is_featured = TRUE")
	assert.Equal(t, []interface{}{"accounts", "Fortnite", 30.0, 100.0, "good"}, args)
}

func TestBuildListingFiltersRejectsUnknownEnums(t *testing.T) {
	conditions, args := buildListingFilters(testContext("category=vehicles&condition=mint&location=mars"))

	assert.Equal(t, []string{"l.is_available = TRUE"}, conditions)
	assert.Empty(t, args)
}

func TestBuildListingFiltersLocationSemantics(t *testing.T) {
	// "fr" is an exact match on the domestic market
	conditions, args := buildListingFilters(testContext("location=fr"))
	assert.Contains(t, conditions, "l.location = ?")
	assert.Equal(t, []interface{}{"fr"}, args)

	// "other" matches everything outside it
	conditions, args = buildListingFilters(testContext("location=other"))
	assert.Contains(t, conditions, "l.location <> ?")
	assert.Equal(t, []interface{}{"fr"}, args)

	// Explicit region is an exact match
	conditions, args = buildListingFilters(testContext("location=eu"))
	assert.Contains(t, conditions, "l.location = ?")
	assert.Equal(t, []interface{}{"eu"}, args)
}

func TestBuildListingFiltersSearch(t *testing.T) {
	conditions, args := buildListingFilters(testContext("q=redline"))

	assert.Contains(t, conditions, "(l.title ILIKE ? OR l.description ILIKE ? OR l.game_name ILIKE ?)")
	assert.Equal(t, []interface{}{"%redline%", "%redline%", "%redline%"}, args)
}

func TestBuildListingFiltersIgnoresMalformedPrice(t *testing.T) {
	conditions, args := buildListingFilters(testContext("min_price=abc&max_price="))

	assert.Equal(t, []string{"l.is_available = TRUE"}, conditions)
	assert.Empty(t, args)
}
