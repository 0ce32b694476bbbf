package helper

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, target string, opt ListOptions) ListParams {
	t.Helper()

	app := fiber.New()
	var p ListParams
	app.Get("/", func(c *fiber.Ctx) error {
		p = ParseListQuery(c, opt)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return p
}

func TestParseListQueryDefaults(t *testing.T) {
	p := parseQuery(t, "/", ListOptions{SortFields: []string{"name", "createdAt"}})

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, "desc", p.Order)
	assert.Equal(t, "createdAt", p.SortBy)
	assert.Empty(t, p.Search)
}

func TestParseListQueryPagination(t *testing.T) {
	p := parseQuery(t, "/?page=3&limit=25", ListOptions{})
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)

	// zero and garbage fall back to the defaults
	p = parseQuery(t, "/?page=0&limit=abc", ListOptions{})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)

	// -1 is the only negative limit honored
	p = parseQuery(t, "/?limit=-1", ListOptions{})
	assert.Equal(t, -1, p.Limit)
	p = parseQuery(t, "/?limit=-5", ListOptions{})
	assert.Equal(t, 100, p.Limit)
}

func TestParseListQueryOrder(t *testing.T) {
	assert.Equal(t, "asc", parseQuery(t, "/?order=ASC", ListOptions{}).Order)
	assert.Equal(t, "asc", parseQuery(t, "/?order=asc", ListOptions{}).Order)
	assert.Equal(t, "desc", parseQuery(t, "/?order=DESC", ListOptions{}).Order)
	assert.Equal(t, "desc", parseQuery(t, "/?order=ascending", ListOptions{}).Order)
}

func TestParseListQuerySortWhitelist(t *testing.T) {
	opt := ListOptions{SortFields: []string{"name", "startDate", "createdAt"}}

	assert.Equal(t, "startDate", parseQuery(t, "/?sortBy=startDate", opt).SortBy)
	// off-whitelist values silently fall back
	assert.Equal(t, "createdAt", parseQuery(t, "/?sortBy=password", opt).SortBy)
	assert.Equal(t, "createdAt", parseQuery(t, "/?sortBy=name;drop+table", opt).SortBy)
}

func TestParseListQuerySearchClause(t *testing.T) {
	opt := ListOptions{SearchFields: []string{"name", "companyName"}}
	p := parseQuery(t, "/?search=dupont", opt)

	require.Len(t, p.where, 1)
	assert.Equal(t, "(name ILIKE ? OR company_name ILIKE ?)", p.where[0].cond)
	assert.Equal(t, []interface{}{"%dupont%", "%dupont%"}, p.where[0].args)

	// whitespace-only search is ignored
	p = parseQuery(t, "/?search=%20%20", opt)
	assert.Empty(t, p.where)
}

func TestParseListQueryFilters(t *testing.T) {
	opt := ListOptions{
		Filters:     []string{"categoryId"},
		BoolFilters: []string{"isPublic"},
	}
	p := parseQuery(t, "/?categoryId=42&isPublic=false", opt)

	require.Len(t, p.where, 2)
	assert.Equal(t, "category_id = ?", p.where[0].cond)
	assert.Equal(t, []interface{}{"42"}, p.where[0].args)
	assert.Equal(t, "is_public = ?", p.where[1].cond)
	assert.Equal(t, []interface{}{false}, p.where[1].args)

	assert.True(t, p.HasFilter("categoryId"))
	assert.True(t, p.HasFilter("isPublic"))
	assert.False(t, p.HasFilter("ownerId"))
}

func TestParseListQueryDateDayWindow(t *testing.T) {
	opt := ListOptions{DateFields: []string{"startDate"}}
	p := parseQuery(t, "/?startDate=2026-03-15", opt)

	require.Len(t, p.where, 1)
	assert.Equal(t, "start_date >= ? AND start_date < ?", p.where[0].cond)
	require.Len(t, p.where[0].args, 2)

	from := p.where[0].args[0].(time.Time)
	to := p.where[0].args[1].(time.Time)
	assert.Equal(t, "2026-03-15", from.Format(dateLayout))
	assert.Equal(t, "2026-03-16", to.Format(dateLayout))
}

func TestParseListQueryDateRange(t *testing.T) {
	opt := ListOptions{DateFields: []string{"startDate"}}
	p := parseQuery(t, "/?startDateStart=2026-01-01&startDateEnd=2026-06-30", opt)

	require.Len(t, p.where, 2)
	assert.Equal(t, "start_date >= ?", p.where[0].cond)
	assert.Equal(t, "start_date <= ?", p.where[1].cond)

	// malformed dates are echoed but produce no predicate
	p = parseQuery(t, "/?startDate=15/03/2026", opt)
	assert.Empty(t, p.where)
	assert.True(t, p.HasFilter("startDate"))
}

func TestAddWhere(t *testing.T) {
	var p ListParams
	p.AddWhere("is_active = ?", true)
	require.Len(t, p.where, 1)
	assert.Equal(t, "is_active = ?", p.where[0].cond)
}

func TestBuildPaginationWindowed(t *testing.T) {
	pg := BuildPagination(47, 2, 10)

	require.NotNil(t, pg.Total)
	assert.Equal(t, int64(47), *pg.Total)
	require.NotNil(t, pg.Page)
	assert.Equal(t, 2, *pg.Page)
	require.NotNil(t, pg.Limit)
	assert.Equal(t, 10, *pg.Limit)
	require.NotNil(t, pg.TotalPages)
	assert.Equal(t, 5, *pg.TotalPages)
	assert.True(t, pg.HasNextPage)
	assert.True(t, pg.HasPreviousPage)

	last := BuildPagination(47, 5, 10)
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPreviousPage)

	first := BuildPagination(47, 1, 10)
	assert.True(t, first.HasNextPage)
	assert.False(t, first.HasPreviousPage)
}

func TestBuildPaginationUnlimited(t *testing.T) {
	pg := BuildPagination(300, 1, -1)

	assert.Nil(t, pg.Total)
	assert.Nil(t, pg.Page)
	assert.Nil(t, pg.Limit)
	assert.Nil(t, pg.TotalPages)
	assert.False(t, pg.HasNextPage)
	assert.False(t, pg.HasPreviousPage)
}

func TestFiltersEcho(t *testing.T) {
	opt := ListOptions{
		SortFields:  []string{"name"},
		Filters:     []string{"categoryId"},
		BoolFilters: []string{"isPublic"},
		DateFields:  []string{"startDate"},
	}
	p := parseQuery(t, "/?search=salon&categoryId=7&isPublic=true&startDateStart=2026-01-01&order=ASC", opt)

	echo := p.FiltersEcho()
	assert.Equal(t, "salon", echo["search"])
	assert.Equal(t, "createdAt", echo["sortBy"])
	assert.Equal(t, "asc", echo["order"])
	assert.Equal(t, fiber.Map{"startDateStart": "2026-01-01"}, echo["dates"])
	assert.Equal(t, fiber.Map{"categoryId": "7", "isPublic": "true"}, echo["attributes"])
}

func TestCamelToSnake(t *testing.T) {
	cases := map[string]string{
		"createdAt":              "created_at",
		"name":                   "name",
		"eventParticipantRoleId": "event_participant_role_id",
		"isOnlineWorkshop":       "is_online_workshop",
		"ID":                     "i_d",
	}
	for in, want := range cases {
		assert.Equal(t, want, CamelToSnake(in), in)
	}
}
