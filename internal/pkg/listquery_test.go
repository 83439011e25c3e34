package pkg

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

func newTestContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseListOptions_Defaults(t *testing.T) {
	c := newTestContext(t, "")
	opts := ParseListOptions(c)

	if opts.Page != 1 {
		t.Errorf("Page=%d; want 1", opts.Page)
	}
	if opts.Limit != 10 {
		t.Errorf("Limit=%d; want 10", opts.Limit)
	}
	if opts.Status != "" || opts.Search != "" || opts.Sort != "" {
		t.Errorf("expected empty string options, got %+v", opts)
	}
	if opts.DateFrom != nil || opts.DateTo != nil {
		t.Error("expected nil date range")
	}
}

func TestParseListOptions_MalformedNumbersFallBack(t *testing.T) {
	c := newTestContext(t, "page=abc&limit=xyz&category_id=nope")
	opts := ParseListOptions(c)

	if opts.Page != 1 || opts.Limit != 10 {
		t.Errorf("Page=%d Limit=%d; want defaults 1/10", opts.Page, opts.Limit)
	}
	if opts.CategoryID != 0 {
		t.Errorf("CategoryID=%d; want 0", opts.CategoryID)
	}
}

func TestParseListOptions_LimitCap(t *testing.T) {
	c := newTestContext(t, "limit=5000")
	opts := ParseListOptions(c)

	if opts.Limit != 100 {
		t.Errorf("Limit=%d; want capped 100", opts.Limit)
	}
}

func TestParseListOptions_NegativePage(t *testing.T) {
	c := newTestContext(t, "page=-3&limit=0")
	opts := ParseListOptions(c)

	if opts.Page != 1 || opts.Limit != 10 {
		t.Errorf("Page=%d Limit=%d; want 1/10", opts.Page, opts.Limit)
	}
}

func TestParseListOptions_StatusFeedsBothFilters(t *testing.T) {
	c := newTestContext(t, "status=trashed")
	opts := ParseListOptions(c)

	if opts.Status != "trashed" {
		t.Errorf("Status=%q; want trashed", opts.Status)
	}
	if opts.StatusFilter != "trashed" {
		t.Errorf("StatusFilter=%q; want trashed", opts.StatusFilter)
	}
}

func TestParseListOptions_DateRange(t *testing.T) {
	c := newTestContext(t, "date_from=2026-01-01&date_to=2026-01-31")
	opts := ParseListOptions(c)

	if opts.DateFrom == nil || opts.DateTo == nil {
		t.Fatal("expected parsed date range")
	}
	wantFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !opts.DateFrom.Equal(wantFrom) {
		t.Errorf("DateFrom=%v; want %v", opts.DateFrom, wantFrom)
	}
	// Plain "to" dates are inclusive: widened to the end of the day.
	if opts.DateTo.Day() != 31 || opts.DateTo.Hour() != 23 {
		t.Errorf("DateTo=%v; want end of Jan 31", opts.DateTo)
	}
}

func TestParseListOptions_MalformedDateIgnored(t *testing.T) {
	c := newTestContext(t, "date_from=not-a-date")
	opts := ParseListOptions(c)

	if opts.DateFrom != nil {
		t.Errorf("DateFrom=%v; want nil", opts.DateFrom)
	}
}

func TestSplitSortKey(t *testing.T) {
	tests := []struct {
		in        string
		field     string
		direction string
		ok        bool
	}{
		{"name-asc", "name", "asc", true},
		{"created_at-desc", "created_at", "desc", true},
		{"name-ASC", "name", "asc", true},
		{"name", "", "", false},
		{"-asc", "", "", false},
		{"name-sideways", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		field, direction, ok := splitSortKey(tt.in)
		if field != tt.field || direction != tt.direction || ok != tt.ok {
			t.Errorf("splitSortKey(%q) = (%q, %q, %v); want (%q, %q, %v)",
				tt.in, field, direction, ok, tt.field, tt.direction, tt.ok)
		}
	}
}

type listEntity struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Detail    string
	GroupID   uint
	CreatedAt time.Time
	DeletedAt *time.Time
}

func (e listEntity) Trashed() bool { return e.DeletedAt != nil }

var listEntitySpec = ListSpec{
	DefaultSort:    "id ASC",
	SortFields:     []string{"id", "name", "created_at"},
	SearchFields:   []string{"name", "detail"},
	SoftDelete:     true,
	CategoryColumn: "group_id",
	DateColumn:     "created_at",
}

func setupListDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&listEntity{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRunListQuery_PartitionIsExclusive(t *testing.T) {
	db := setupListDB(t)
	ctx := context.Background()
	now := time.Now()

	rows := []listEntity{
		{Name: "active one"},
		{Name: "active two"},
		{Name: "gone", DeletedAt: &now},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	active, err := RunListQuery[listEntity](ctx, db, listEntitySpec, domain.ListOptions{})
	if err != nil {
		t.Fatalf("active list: %v", err)
	}
	if active.TotalCount != 2 {
		t.Errorf("active TotalCount=%d; want 2", active.TotalCount)
	}

	trashed, err := RunListQuery[listEntity](ctx, db, listEntitySpec, domain.ListOptions{Status: domain.StatusTrashed})
	if err != nil {
		t.Fatalf("trashed list: %v", err)
	}
	if trashed.TotalCount != 1 {
		t.Errorf("trashed TotalCount=%d; want 1", trashed.TotalCount)
	}
	if len(trashed.Data) != 1 || trashed.Data[0].Name != "gone" {
		t.Errorf("trashed Data=%+v; want the single trashed row", trashed.Data)
	}
}

func TestRunListQuery_PaginationReconstructsFullSet(t *testing.T) {
	db := setupListDB(t)
	ctx := context.Background()

	const total = 25
	for i := 1; i <= total; i++ {
		if err := db.Create(&listEntity{Name: fmt.Sprintf("row %02d", i)}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	seen := make(map[uint]bool)
	page := 1
	for {
		result, err := RunListQuery[listEntity](ctx, db, listEntitySpec, domain.ListOptions{Page: page, Limit: 10})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if result.TotalCount != total {
			t.Fatalf("page %d TotalCount=%d; want %d", page, result.TotalCount, total)
		}
		if result.TotalPages != 3 {
			t.Fatalf("page %d TotalPages=%d; want 3", page, result.TotalPages)
		}
		for _, row := range result.Data {
			if seen[row.ID] {
				t.Fatalf("row %d appeared on more than one page", row.ID)
			}
			seen[row.ID] = true
		}
		if page >= result.TotalPages {
			break
		}
		page++
	}

	if len(seen) != total {
		t.Errorf("reconstructed %d rows; want %d", len(seen), total)
	}
}

func TestRunListQuery_SearchIsCaseInsensitive(t *testing.T) {
	db := setupListDB(t)
	ctx := context.Background()

	rows := []listEntity{
		{Name: "Mahogany Door", Detail: "dark finish"},
		{Name: "Pine Door", Detail: "light finish"},
		{Name: "Window", Detail: "MAHOGANY frame"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	result, err := RunListQuery[listEntity](ctx, db, listEntitySpec, domain.ListOptions{Search: "mahogany"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Matches across any searchable column.
	if result.TotalCount != 2 {
		t.Errorf("TotalCount=%d; want 2", result.TotalCount)
	}
}

func TestRunListQuery_SortAndFallback(t *testing.T) {
	db := setupListDB(t)
	ctx := context.Background()

	for _, name := range []string{"bravo", "alpha", "charlie"} {
		if err := db.Create(&listEntity{Name: name}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	result, err := RunListQuery[listEntity](ctx, db, listEntitySpec, domain.ListOptions{Sort: "name-asc"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Data[0].Name != "alpha" || result.Data[2].Name != "charlie" {
		t.Errorf("sorted names=%v; want alphabetical", names(result.Data))
	}

	// Unknown sort fields fall back to the default ordering instead of erroring.
	fallback, err := RunListQuery[listEntity](ctx, db, listEntitySpec, domain.ListOptions{Sort: "password-desc"})
	if err != nil {
		t.Fatalf("fallback list: %v", err)
	}
	if fallback.Data[0].ID != 1 {
		t.Errorf("fallback first ID=%d; want default id ASC", fallback.Data[0].ID)
	}
}

func TestRunListQuery_CategoryAndDateFilters(t *testing.T) {
	db := setupListDB(t)
	ctx := context.Background()

	old := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rows := []listEntity{
		{Name: "old in group", GroupID: 7, CreatedAt: old},
		{Name: "recent in group", GroupID: 7, CreatedAt: recent},
		{Name: "recent elsewhere", GroupID: 9, CreatedAt: recent},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	result, err := RunListQuery[listEntity](ctx, db, listEntitySpec, domain.ListOptions{
		CategoryID: 7,
		DateFrom:   &from,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.TotalCount != 1 || result.Data[0].Name != "recent in group" {
		t.Errorf("got %+v; want only the recent group-7 row", result.Data)
	}
}

func TestNewPageResult_EmptyDataIsNotNil(t *testing.T) {
	result := NewPageResult[listEntity](nil, 0, domain.ListOptions{Page: 1, Limit: 10})

	if result.Data == nil {
		t.Error("Data is nil; want empty slice")
	}
	if result.TotalPages != 0 {
		t.Errorf("TotalPages=%d; want 0", result.TotalPages)
	}
}

func TestNewPageResult_TotalPagesRoundsUp(t *testing.T) {
	result := NewPageResult[listEntity](nil, 21, domain.ListOptions{Page: 1, Limit: 10})
	if result.TotalPages != 3 {
		t.Errorf("TotalPages=%d; want 3", result.TotalPages)
	}
}

func names(rows []listEntity) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}
