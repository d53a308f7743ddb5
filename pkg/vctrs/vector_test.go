package vctrs

import (
	"math"
	"strings"
	"testing"
)

func TestNewPercentValid(t *testing.T) {
	tests := []struct {
		name   string
		values any
		length int
	}{
		{"nil input", nil, 0},
		{"empty slice", []float64{}, 0},
		{"in-range values", []float64{0, 0.5, 1}, 3},
		{"bounds included", []float64{0, 1}, 2},
		{"missing exempt", []float64{0.5, math.NaN()}, 2},
		{"all missing", []float64{math.NaN(), math.NaN()}, 2},
		{"int slice coerced", []int{0, 1}, 2},
		{"float32 slice coerced", []float32{0.25}, 1},
		{"scalar float64", 0.5, 1},
		{"scalar int", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := NewPercent(tt.values)
			if err != nil {
				t.Fatalf("NewPercent(%v) error = %v, want nil", tt.values, err)
			}
			if x.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", x.Len(), tt.length)
			}
			if x.Tag() != "percent" {
				t.Errorf("Tag() = %q, want %q", x.Tag(), "percent")
			}
		})
	}
}

func TestNewPercentDomainError(t *testing.T) {
	tests := []struct {
		name   string
		values any
	}{
		{"above upper bound", []float64{0.5, 1.5}},
		{"below lower bound", []float64{-0.1}},
		{"scalar out of range", 2},
		{"mixed with missing", []float64{math.NaN(), 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPercent(tt.values)
			if !IsDomainErr(err) {
				t.Errorf("NewPercent(%v) error = %v, want ErrDomain", tt.values, err)
			}
		})
	}
}

func TestNewPercentTypeError(t *testing.T) {
	tests := []struct {
		name   string
		values any
	}{
		{"string", "a"},
		{"string slice", []string{"a", "b"}},
		{"bool", true},
		{"map", map[string]float64{"a": 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPercent(tt.values)
			if !IsTypeErr(err) {
				t.Errorf("NewPercent(%v) error = %v, want ErrType", tt.values, err)
			}
		})
	}
}

func TestNewRawRequiresPlainFloat64(t *testing.T) {
	if _, err := NewRaw(Percent, []int{1}); !IsTypeErr(err) {
		t.Errorf("NewRaw with []int: error = %v, want ErrType", err)
	}
	// NewRaw skips range validation entirely.
	x, err := NewRaw(Percent, []float64{42})
	if err != nil {
		t.Fatalf("NewRaw error = %v, want nil", err)
	}
	if x.At(0) != 42 {
		t.Errorf("At(0) = %v, want 42", x.At(0))
	}
}

func TestZeroLengthKeepsTag(t *testing.T) {
	x, err := NewPercent(nil)
	if err != nil {
		t.Fatalf("NewPercent(nil) error = %v", err)
	}
	if got := x.Summary(); got != "pct" {
		t.Errorf("Summary() = %q, want %q", got, "pct")
	}
	if got := x.String(); got != "<percent[0]>" {
		t.Errorf("String() = %q, want %q", got, "<percent[0]>")
	}
}

func TestFormatScenario(t *testing.T) {
	x, err := NewPercent([]float64{0, 1.0 / 3, 2.0 / 3, 1, math.NaN()})
	if err != nil {
		t.Fatalf("NewPercent error = %v", err)
	}
	want := []string{"0%", "33.3%", "66.7%", "100%", "NA"}
	got := x.Format()
	if len(got) != len(want) {
		t.Fatalf("Format() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Format()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSliceRetagsAndSelects(t *testing.T) {
	x, _ := NewPercent([]float64{0, 0.25, 0.5, 0.75, 1})

	tests := []struct {
		name    string
		indices []int
		want    []string
	}{
		{"plain selection", []int{0, 2}, []string{"0%", "50%"}},
		{"repeated indices", []int{1, 1, 1}, []string{"25%", "25%", "25%"}},
		{"empty selection", nil, []string{}},
		{"out of range yields missing", []int{4, 5}, []string{"100%", "NA"}},
		{"negative yields missing", []int{-1}, []string{"NA"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := x.Slice(tt.indices...)
			if sub.Tag() != "percent" {
				t.Fatalf("Slice result lost its tag: %q", sub.Tag())
			}
			got := sub.Format()
			if len(got) != len(tt.want) {
				t.Fatalf("Format() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Format()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSliceRoundTripMatchesElementwiseFormat(t *testing.T) {
	x, _ := NewPercent([]float64{0.1, 0.2, math.NaN(), 0.9})
	full := x.Format()
	idx := []int{3, 0, 0, 2}
	sub := x.Slice(idx...)
	for i, j := range idx {
		if sub.Format()[i] != full[j] {
			t.Errorf("Slice Format()[%d] = %q, want %q", i, sub.Format()[i], full[j])
		}
	}
}

func TestAssignRecyclesScalar(t *testing.T) {
	x, _ := NewPercent([]float64{0, 0.25, 0.75})
	y, err := x.Assign([]int{0, 1}, 0.5)
	if err != nil {
		t.Fatalf("Assign error = %v", err)
	}
	got := y.Format()
	if got[0] != "50%" || got[1] != "50%" {
		t.Errorf("Format() = %v, want 50%% at positions 0 and 1", got)
	}
	if got[2] != "75%" {
		t.Errorf("untouched position changed: %q", got[2])
	}
	// Receiver unchanged.
	if x.Format()[0] != "0%" {
		t.Errorf("receiver modified by Assign: %v", x.Format())
	}
}

func TestAssignRejectsNonNumeric(t *testing.T) {
	x, _ := NewPercent([]float64{0.1, 0.2})
	before := x.Format()
	_, err := x.Assign([]int{0}, "a")
	if !IsTypeErr(err) {
		t.Fatalf("Assign(\"a\") error = %v, want ErrType", err)
	}
	after := x.Format()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("vector changed after failed Assign: %v -> %v", before, after)
		}
	}
}

func TestAssignRejectsOutOfRangeValue(t *testing.T) {
	x, _ := NewPercent([]float64{0.1})
	if _, err := x.Assign([]int{0}, 1.5); !IsDomainErr(err) {
		t.Errorf("Assign(1.5) error = %v, want ErrDomain", err)
	}
}

func TestAssignLengthMismatch(t *testing.T) {
	x, _ := NewPercent([]float64{0.1, 0.2, 0.3})
	if _, err := x.Assign([]int{0, 1, 2}, []float64{0.5, 0.6}); !IsInvariantErr(err) {
		t.Errorf("Assign with 2 values for 3 positions: error = %v, want ErrInvariant", err)
	}
}

func TestAssignEmptyIndexSetIsNoOp(t *testing.T) {
	x, _ := NewPercent([]float64{0.1, 0.2})
	y, err := x.Assign(nil, 0.5)
	if err != nil {
		t.Fatalf("Assign with no positions: error = %v", err)
	}
	if !y.Equal(x) {
		t.Errorf("no-op Assign changed the vector: %v", y.Format())
	}
	// The replacement is still validated.
	if _, err := x.Assign(nil, "a"); !IsTypeErr(err) {
		t.Errorf("Assign(nil, \"a\") error = %v, want ErrType", err)
	}
}

func TestAssignGrowsWithMissingFill(t *testing.T) {
	x, _ := NewPercent([]float64{0.5})
	y, err := x.Assign([]int{3}, 1.0)
	if err != nil {
		t.Fatalf("Assign error = %v", err)
	}
	want := []string{"50%", "NA", "NA", "100%"}
	got := y.Format()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Format()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetNamesRejected(t *testing.T) {
	x, _ := NewPercent([]float64{0.5})
	err := x.SetNames([]string{"a"})
	if !IsInvariantErr(err) {
		t.Fatalf("SetNames error = %v, want ErrInvariant", err)
	}
	if !strings.Contains(err.Error(), "vector must be nameless") {
		t.Errorf("SetNames message = %q", err.Error())
	}
	if x.Format()[0] != "50%" {
		t.Errorf("vector changed after rejected SetNames")
	}
}

func TestSetDimRejected(t *testing.T) {
	x, _ := NewPercent([]float64{0.5, 0.5})
	err := x.SetDim(1, 2)
	if !IsInvariantErr(err) {
		t.Fatalf("SetDim error = %v, want ErrInvariant", err)
	}
	if !strings.Contains(err.Error(), "vector must be 1-dimensional") {
		t.Errorf("SetDim message = %q", err.Error())
	}
	if x.Len() != 2 {
		t.Errorf("vector changed after rejected SetDim")
	}
}

func TestPrintReturnsReceiver(t *testing.T) {
	x, _ := NewPercent([]float64{0.5})
	var sb strings.Builder
	if got := x.Print(&sb); got != x {
		t.Error("Print did not return the receiver")
	}
	out := sb.String()
	if !strings.Contains(out, "<percent[1]>") || !strings.Contains(out, "50%") {
		t.Errorf("Print output = %q", out)
	}
}

func TestEqual(t *testing.T) {
	a, _ := NewPercent([]float64{0.1, math.NaN()})
	b, _ := NewPercent([]float64{0.1, math.NaN()})
	c, _ := NewPercent([]float64{0.1, 0.2})
	if !a.Equal(b) {
		t.Error("equal vectors with matching missing positions reported unequal")
	}
	if a.Equal(c) {
		t.Error("distinct vectors reported equal")
	}
	if a.Equal(nil) {
		t.Error("nil comparison reported equal")
	}
}
