package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParseFiber(t *testing.T) {
	tests := []struct {
		query   string
		page    int
		perPage int
		order   string
	}{
		{"", 1, 25, "desc"},
		{"?page=3&per_page=10&order=asc", 3, 10, "asc"},
		{"?page=-1&limit=5", 1, 5, "desc"},
		{"?per_page=100000", 1, 200, "desc"},
		{"?order=sideways", 1, 25, "desc"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got Params
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				got = ParseFiber(c, "name", "desc", DefaultOpts)
				return nil
			})
			if _, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil)); err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if got.Page != tt.page || got.PerPage != tt.perPage || got.SortOrder != tt.order {
				t.Fatalf("got %+v", got)
			}
		})
	}
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(51, Params{Page: 2, PerPage: 25})
	if m.TotalPages != 3 || !m.HasNext || !m.HasPrev {
		t.Fatalf("meta = %+v", m)
	}
	if *m.NextPage != 3 || *m.PrevPage != 1 {
		t.Fatalf("next/prev = %d/%d", *m.NextPage, *m.PrevPage)
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.NextPage != nil {
		t.Fatalf("empty meta = %+v", empty)
	}
}

func TestOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{"name": "name", "start_time": "start_time"}
	p := Params{SortBy: "start_time; DROP TABLE classes", SortOrder: "asc"}
	if got := p.OrderClause(allowed, "name"); got != "name ASC" {
		t.Fatalf("OrderClause = %q", got)
	}
}
