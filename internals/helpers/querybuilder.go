package helper

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MaxUnlimitedRows caps limit=-1 fetches: beyond this many matching rows the
// request is rejected rather than streamed.
const MaxUnlimitedRows = 1000

const dateLayout = "2006-01-02"

/* ===============================
   List options & parsed params
=================================*/

// ListOptions declares, per entity, which query parameters the list endpoint
// honors. Field names are the public camelCase names; column names are
// derived with CamelToSnake.
type ListOptions struct {
	SearchFields []string // substring search, OR-ed (ILIKE)
	SortFields   []string // whitelist; fallback is createdAt
	Filters      []string // exact-match filters, value passed through verbatim
	BoolFilters  []string // exact-match filters parsed from "true"/"false"
	DateFields   []string // day filter via <field>, range via <field>Start/<field>End
	DefaultLimit int
}

// ListParams is the normalized output of ParseListQuery.
type ListParams struct {
	Search string
	SortBy string // validated against the whitelist (camelCase)
	Order  string // "asc" | "desc"
	Page   int
	Limit  int // -1 requests all rows

	where []whereClause
	opts  ListOptions
	raw   map[string]string
}

type whereClause struct {
	cond string
	args []interface{}
}

// ParseListQuery normalizes pagination, sorting and filter parameters.
// An unknown sortBy silently falls back to createdAt (logged, not surfaced).
// order is desc unless the literal ASC is supplied, case-insensitive.
func ParseListQuery(c *fiber.Ctx, opt ListOptions) ListParams {
	if opt.DefaultLimit <= 0 {
		opt.DefaultLimit = 100
	}

	p := ListParams{
		Order: "desc",
		Page:  1,
		Limit: opt.DefaultLimit,
		opts:  opt,
		raw:   map[string]string{},
	}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && (v > 0 || v == -1) {
		p.Limit = v
	}
	if strings.EqualFold(c.Query("order"), "ASC") {
		p.Order = "asc"
	}

	requested := c.Query("sortBy", "createdAt")
	p.SortBy = "createdAt"
	for _, f := range opt.SortFields {
		if f == requested {
			p.SortBy = requested
			break
		}
	}
	if p.SortBy != requested {
		log.Printf("[WARN] sortBy '%s' hors liste blanche, repli sur createdAt", requested)
	}

	p.Search = strings.TrimSpace(c.Query("search"))
	p.raw["search"] = p.Search

	if p.Search != "" && len(opt.SearchFields) > 0 {
		conds := make([]string, 0, len(opt.SearchFields))
		args := make([]interface{}, 0, len(opt.SearchFields))
		for _, f := range opt.SearchFields {
			conds = append(conds, CamelToSnake(f)+" ILIKE ?")
			args = append(args, "%"+p.Search+"%")
		}
		p.where = append(p.where, whereClause{"(" + strings.Join(conds, " OR ") + ")", args})
	}

	for _, f := range opt.Filters {
		if v := c.Query(f); v != "" {
			p.raw[f] = v
			p.where = append(p.where, whereClause{CamelToSnake(f) + " = ?", []interface{}{v}})
		}
	}
	for _, f := range opt.BoolFilters {
		if v := c.Query(f); v != "" {
			p.raw[f] = v
			p.where = append(p.where, whereClause{CamelToSnake(f) + " = ?", []interface{}{v == "true"}})
		}
	}
	for _, f := range opt.DateFields {
		p.parseDateField(c, f)
	}

	return p
}

func (p *ListParams) parseDateField(c *fiber.Ctx, field string) {
	col := CamelToSnake(field)

	if v := c.Query(field); v != "" {
		p.raw[field] = v
		if day, err := time.Parse(dateLayout, v); err == nil {
			p.where = append(p.where, whereClause{
				col + " >= ? AND " + col + " < ?",
				[]interface{}{day, day.AddDate(0, 0, 1)},
			})
		}
		return
	}

	start, end := c.Query(field+"Start"), c.Query(field+"End")
	if start != "" {
		p.raw[field+"Start"] = start
		if t, err := time.Parse(dateLayout, start); err == nil {
			p.where = append(p.where, whereClause{col + " >= ?", []interface{}{t}})
		}
	}
	if end != "" {
		p.raw[field+"End"] = end
		if t, err := time.Parse(dateLayout, end); err == nil {
			p.where = append(p.where, whereClause{col + " <= ?", []interface{}{t}})
		}
	}
}

// HasFilter reports whether the client supplied the given filter explicitly.
func (p ListParams) HasFilter(name string) bool {
	_, ok := p.raw[name]
	return ok
}

// AddWhere appends a predicate outside the declared filters, used for
// server-imposed conditions like the default active-only listing.
func (p *ListParams) AddWhere(cond string, args ...interface{}) {
	p.where = append(p.where, whereClause{cond, args})
}

/* ===============================
   GORM application
=================================*/

// Scope applies the filter predicate and order clause. Pagination is applied
// separately by Window so the total count runs over the same predicate.
func (p ListParams) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, w := range p.where {
			db = db.Where(w.cond, w.args...)
		}
		return db.Order(CamelToSnake(p.SortBy) + " " + strings.ToUpper(p.Order))
	}
}

// Filter applies only the predicate, for count queries.
func (p ListParams) Filter() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, w := range p.where {
			db = db.Where(w.cond, w.args...)
		}
		return db
	}
}

// Window applies offset/limit. A -1 limit leaves the query unbounded; the
// caller has already checked the match count against MaxUnlimitedRows.
func (p ListParams) Window() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Limit == -1 {
			return db
		}
		return db.Offset((p.Page - 1) * p.Limit).Limit(p.Limit)
	}
}

/* ===============================
   Response building
=================================*/

// Pagination is the metadata block attached to every list response. All
// counting fields are null when limit=-1 was honored, the booleans stay false.
type Pagination struct {
	Total           *int64 `json:"total"`
	Page            *int   `json:"page"`
	Limit           *int   `json:"limit"`
	TotalPages      *int   `json:"totalPages"`
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
}

// BuildPagination computes the metadata for a windowed or unbounded fetch.
func BuildPagination(total int64, page, limit int) Pagination {
	if limit == -1 {
		return Pagination{}
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:           &total,
		Page:            &page,
		Limit:           &limit,
		TotalPages:      &totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// FiltersEcho rebuilds the filters block echoed in list responses.
func (p ListParams) FiltersEcho() fiber.Map {
	dates := fiber.Map{}
	for _, f := range p.opts.DateFields {
		for _, k := range []string{f, f + "Start", f + "End"} {
			if v, ok := p.raw[k]; ok {
				dates[k] = v
			}
		}
	}
	attrs := fiber.Map{}
	for _, f := range append(append([]string{}, p.opts.Filters...), p.opts.BoolFilters...) {
		if v, ok := p.raw[f]; ok {
			attrs[f] = v
		}
	}
	return fiber.Map{
		"search":     p.raw["search"],
		"sortBy":     p.SortBy,
		"order":      p.Order,
		"dates":      dates,
		"attributes": attrs,
	}
}

// ListResult assembles the uniform list payload.
func (p ListParams) ListResult(data interface{}, total int64) fiber.Map {
	return fiber.Map{
		"data":           data,
		"pagination":     BuildPagination(total, p.Page, p.Limit),
		"filters":        p.FiltersEcho(),
		"validSortFields": p.opts.SortFields,
	}
}

/* ===============================
   Naming
=================================*/

// CamelToSnake maps the public camelCase field names to column names
// (createdAt -> created_at, eventParticipantRoleId -> event_participant_role_id).
func CamelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
