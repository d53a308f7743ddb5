package frame

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/ijlyttle/vctrs/pkg/vctrs"
)

func mustPercent(t *testing.T, values []float64) *vctrs.Vector {
	t.Helper()
	x, err := vctrs.NewPercent(values)
	if err != nil {
		t.Fatalf("NewPercent(%v) error = %v", values, err)
	}
	return x
}

func TestFromVectorDefaultsNameToTag(t *testing.T) {
	f := FromVector(mustPercent(t, []float64{0.1, 0.9}))
	if got := f.Names(); len(got) != 1 || got[0] != "percent" {
		t.Errorf("Names() = %v, want [percent]", got)
	}
	if f.NumRows() != 2 || f.NumCols() != 1 {
		t.Errorf("dims = %dx%d, want 2x1", f.NumRows(), f.NumCols())
	}
}

func TestFromVectorNamedAllowsAnonymous(t *testing.T) {
	f := FromVectorNamed(mustPercent(t, []float64{0.5}), "")
	if got := f.Names(); got[0] != "" {
		t.Errorf("Names() = %v, want one empty name", got)
	}
}

func TestAddColumnShapeInvariant(t *testing.T) {
	f := FromVectorNamed(mustPercent(t, []float64{0.1, 0.2}), "a")

	if err := f.AddColumn("b", mustPercent(t, []float64{0.3, 0.4})); err != nil {
		t.Fatalf("AddColumn matching length: error = %v", err)
	}
	if f.NumCols() != 2 {
		t.Fatalf("NumCols() = %d, want 2", f.NumCols())
	}

	err := f.AddColumn("c", mustPercent(t, []float64{0.5}))
	if err == nil || !strings.Contains(err.Error(), "does not match") {
		t.Fatalf("AddColumn mismatched length: error = %v, want ErrShape", err)
	}
	if f.NumCols() != 2 {
		t.Errorf("failed AddColumn changed the frame: NumCols() = %d", f.NumCols())
	}
}

func TestColumnLookup(t *testing.T) {
	f := FromVectorNamed(mustPercent(t, []float64{0.5}), "score")
	c, err := f.Column("score")
	if err != nil {
		t.Fatalf("Column(score) error = %v", err)
	}
	if c.Summary() != "pct" {
		t.Errorf("Summary() = %q, want pct", c.Summary())
	}
	if _, err := f.Column("missing"); err == nil {
		t.Error("Column(missing) succeeded, want ErrColumnNotFound")
	}
}

func TestWriteTextUsesFormat(t *testing.T) {
	f := FromVectorNamed(mustPercent(t, []float64{0, 1.0 / 3, math.NaN()}), "share")
	var sb strings.Builder
	if err := f.WriteText(&sb); err != nil {
		t.Fatalf("WriteText error = %v", err)
	}
	out := sb.String()
	for _, want := range []string{"share", "0%", "33.3%", "NA"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteText output missing %q:\n%s", want, out)
		}
	}
	// The raw payload must never leak into display.
	if strings.Contains(out, "0.333") {
		t.Errorf("WriteText leaked raw values:\n%s", out)
	}
}

func TestMarshalJSON(t *testing.T) {
	f := FromVectorNamed(mustPercent(t, []float64{0.5, math.NaN()}), "share")
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var got struct {
		Rows    int `json:"rows"`
		Columns []struct {
			Name    string   `json:"name"`
			Summary string   `json:"summary"`
			Values  []string `json:"values"`
		} `json:"columns"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if got.Rows != 2 || len(got.Columns) != 1 {
		t.Fatalf("rows = %d, cols = %d, want 2 and 1", got.Rows, len(got.Columns))
	}
	c := got.Columns[0]
	if c.Name != "share" || c.Summary != "pct" {
		t.Errorf("column header = %q <%s>", c.Name, c.Summary)
	}
	if c.Values[0] != "50%" || c.Values[1] != "NA" {
		t.Errorf("values = %v, want [50%% NA]", c.Values)
	}
}

func TestEmptyFrame(t *testing.T) {
	f := New()
	if f.NumRows() != 0 || f.NumCols() != 0 {
		t.Errorf("empty frame dims = %dx%d", f.NumRows(), f.NumCols())
	}
	var sb strings.Builder
	if err := f.WriteText(&sb); err != nil {
		t.Fatalf("WriteText error = %v", err)
	}
	if !strings.Contains(sb.String(), "empty frame") {
		t.Errorf("WriteText on empty frame = %q", sb.String())
	}
}
