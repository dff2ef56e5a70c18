package query_test

import (
	"testing"

	"github.com/wrenchline/tread/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "claims", "c").
		Project("id", "id").
		Project("claim_number", "claimNumber").
		Project("reported_date", "reportedDate")
}

func joinedProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "claims", "c").
		Project("id", "id").
		Project("reported_date", "reportedDate").
		Join("public", "dealers", "d", "LEFT JOIN", "c.dealer_id = d.id").
		Project("name", "dealerName")
}

func ptr(s string) *string { return &s }

func TestProjectionMapTable(t *testing.T) {
	p := testProjection()
	got := p.Table()
	want := "public.claims c"
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestProjectionMapAlias(t *testing.T) {
	p := testProjection()
	if got := p.Alias(); got != "c" {
		t.Errorf("Alias() = %q, want %q", got, "c")
	}
}

func TestProjectionMapColumns(t *testing.T) {
	p := testProjection()
	got := p.Columns()
	want := "c.id, c.claim_number, c.reported_date"
	if got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumnLookup(t *testing.T) {
	p := testProjection()

	tests := []struct {
		name     string
		viewName string
		want     string
	}{
		{"mapped field", "claimNumber", "c.claim_number"},
		{"mapped camel", "reportedDate", "c.reported_date"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.viewName); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, got, tt.want)
			}
		})
	}
}

func TestProjectionMapJoin(t *testing.T) {
	p := joinedProjection()

	wantFrom := "public.claims c LEFT JOIN public.dealers d ON c.dealer_id = d.id"
	if got := p.From(); got != wantFrom {
		t.Errorf("From() = %q, want %q", got, wantFrom)
	}

	if got := p.Column("dealerName"); got != "d.name" {
		t.Errorf("Column(dealerName) = %q, want d.name", got)
	}
	if got := p.Column("id"); got != "c.id" {
		t.Errorf("Column(id) = %q, want c.id", got)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single ascending",
			input: "claimNumber",
			want:  []query.SortField{{Field: "claimNumber", Descending: false}},
		},
		{
			name:  "single descending",
			input: "-reportedDate",
			want:  []query.SortField{{Field: "reportedDate", Descending: true}},
		},
		{
			name:  "multiple mixed",
			input: "claimNumber,-reportedDate",
			want: []query.SortField{
				{Field: "claimNumber", Descending: false},
				{Field: "reportedDate", Descending: true},
			},
		},
		{
			name:  "empty parts skipped",
			input: "claimNumber,,reportedDate",
			want: []query.SortField{
				{Field: "claimNumber", Descending: false},
				{Field: "reportedDate", Descending: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ParseSortFields(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSortFields(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuilderBuild(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.Build()

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c"
	if sql != wantSQL {
		t.Errorf("Build() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuilderBuildCount(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.claims c"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilderBuildPage(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "reportedDate", Descending: true})
	sql, args := b.BuildPage(2, 10)

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c ORDER BY c.reported_date DESC LIMIT 10 OFFSET 10"
	if sql != wantSQL {
		t.Errorf("BuildPage() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildPage() args = %v, want empty", args)
	}
}

func TestBuilderBuildSingle(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.BuildSingle("id", "abc-123")

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c WHERE c.id = $1"
	if sql != wantSQL {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "abc-123" {
		t.Errorf("BuildSingle() args = %v, want [abc-123]", args)
	}
}

func TestBuilderWhereEquals(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("claimNumber", "CLM-1001")
	sql, args := b.Build()

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c WHERE c.claim_number = $1"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "CLM-1001" {
		t.Errorf("args = %v, want [CLM-1001]", args)
	}
}

func TestBuilderWhereEqualsNilSkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("claimNumber", nil)

	var typedNil *string
	b.WhereEquals("claimNumber", typedNil)

	sql, args := b.Build()

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereContains(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereContains("claimNumber", ptr("CLM"))
	sql, args := b.Build()

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c WHERE c.claim_number ILIKE $1"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "%CLM%" {
		t.Errorf("args = %v, want [%%CLM%%]", args)
	}
}

func TestBuilderWhereEqualsFold(t *testing.T) {
	t.Run("uppercases both sides", func(t *testing.T) {
		b := query.NewBuilder(testProjection())
		b.WhereEqualsFold("claimNumber", ptr("clm-1001"))
		sql, args := b.Build()

		wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c WHERE UPPER(c.claim_number) = $1"
		if sql != wantSQL {
			t.Errorf("sql = %q, want %q", sql, wantSQL)
		}
		if len(args) != 1 || args[0] != "CLM-1001" {
			t.Errorf("args = %v, want [CLM-1001]", args)
		}
	})

	t.Run("nil and empty skipped", func(t *testing.T) {
		b := query.NewBuilder(testProjection())
		b.WhereEqualsFold("claimNumber", nil)
		b.WhereEqualsFold("claimNumber", ptr(""))
		sql, args := b.Build()

		wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c"
		if sql != wantSQL {
			t.Errorf("sql = %q, want %q", sql, wantSQL)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})
}

func TestBuilderNullPredicates(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereNull("reportedDate").WhereNotNull("claimNumber")
	sql, args := b.Build()

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c WHERE c.reported_date IS NULL AND c.claim_number IS NOT NULL"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderRangePredicates(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereGTE("reportedDate", "2024-01-01").WhereLTE("reportedDate", "2024-02-01")
	sql, args := b.Build()

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c WHERE c.reported_date >= $1 AND c.reported_date <= $2"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 args", args)
	}
}

func TestBuilderWhereSearch(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereSearch(ptr("109"), "claimNumber", "id")
	sql, args := b.Build()

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c WHERE (c.claim_number ILIKE $1 OR c.id ILIKE $2)"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 2 || args[0] != "%109%" || args[1] != "%109%" {
		t.Errorf("args = %v, want two search patterns", args)
	}
}

func TestBuilderParamRenumbering(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("id", "abc").
		WhereNull("reportedDate").
		WhereContains("claimNumber", ptr("CLM"))
	sql, args := b.Build()

	wantSQL := "SELECT c.id, c.claim_number, c.reported_date FROM public.claims c WHERE c.id = $1 AND c.reported_date IS NULL AND c.claim_number ILIKE $2"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 args", args)
	}
}
