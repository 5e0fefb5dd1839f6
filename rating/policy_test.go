package rating

import (
	"testing"

	"github.com/rushteam/synthkit/core"
	"github.com/rushteam/synthkit/similarity"
)

func testTable() similarity.Table {
	return similarity.Table{
		"Italian":  {"Italian": 1.0, "French": 0.72, "Japanese": 0.31},
		"French":   {"Italian": 0.72, "French": 1.0, "Japanese": 0.28},
		"Japanese": {"Italian": 0.31, "French": 0.28, "Japanese": 1.0},
	}
}

func TestAffinePolicy_Rate(t *testing.T) {
	table := testTable()
	policy := NewAffinePolicy()

	tests := []struct {
		name          string
		recipeCuisine string
		favorite      string
		leastFavorite string
		want          float64
	}{
		{
			name:          "favorite cuisine gets max rating",
			recipeCuisine: "Italian",
			favorite:      "Italian",
			leastFavorite: "French",
			want:          5,
		},
		{
			name:          "least favorite cuisine gets min rating",
			recipeCuisine: "French",
			favorite:      "Italian",
			leastFavorite: "French",
			want:          1,
		},
		{
			name:          "other cuisine gets affine-mapped similarity",
			recipeCuisine: "Japanese",
			favorite:      "Italian",
			leastFavorite: "French",
			// table[Japanese][Italian]*4 + 1，精确仿射映射，不做舍入
			want: 0.31*4 + 1,
		},
		{
			name:          "lookup direction is recipe row, favorite col",
			recipeCuisine: "French",
			favorite:      "Japanese",
			leastFavorite: "Italian",
			want:          0.28*4 + 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.Rate(tt.recipeCuisine, tt.favorite, tt.leastFavorite, table)
			if err != nil {
				t.Fatalf("Rate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Rate() = %v, want %v", got, tt.want)
			}
			if got < MinRating || got > MaxRating {
				t.Errorf("Rate() = %v outside [%v, %v]", got, MinRating, MaxRating)
			}
		})
	}
}

func TestAffinePolicy_Rate_Errors(t *testing.T) {
	policy := NewAffinePolicy()

	t.Run("missing pair is a config error", func(t *testing.T) {
		_, err := policy.Rate("Thai", "Italian", "French", testTable())
		if err == nil {
			t.Fatal("expected error for missing pair")
		}
		if !core.IsConfigError(err) {
			t.Errorf("expected config error, got %v", err)
		}
	})

	t.Run("out-of-range similarity is a config error, not clamped", func(t *testing.T) {
		bad := similarity.Table{
			"A": {"A": 1.0, "B": 1.7},
			"B": {"A": 1.7, "B": 1.0},
		}
		_, err := policy.Rate("B", "A", "", bad)
		if err == nil {
			t.Fatal("expected error for similarity > 1")
		}
		if !core.IsConfigError(err) {
			t.Errorf("expected config error, got %v", err)
		}
	})
}

func TestCELPolicy_Rate(t *testing.T) {
	table := testTable()

	// 与默认 AffinePolicy 等价的表达式，两个策略的结果必须一致
	policy, err := NewCELPolicy(
		`cuisine == favorite ? 5.0 : (cuisine == least_favorite ? 1.0 : similarity * 4.0 + 1.0)`)
	if err != nil {
		t.Fatalf("NewCELPolicy() error = %v", err)
	}
	affine := NewAffinePolicy()

	cases := [][3]string{
		{"Italian", "Italian", "French"},
		{"French", "Italian", "French"},
		{"Japanese", "Italian", "French"},
		{"Italian", "Japanese", "French"},
	}
	for _, c := range cases {
		got, err := policy.Rate(c[0], c[1], c[2], table)
		if err != nil {
			t.Fatalf("CELPolicy.Rate(%v) error = %v", c, err)
		}
		want, err := affine.Rate(c[0], c[1], c[2], table)
		if err != nil {
			t.Fatalf("AffinePolicy.Rate(%v) error = %v", c, err)
		}
		if got != want {
			t.Errorf("Rate(%v) = %v, want %v", c, got, want)
		}
	}
}

func TestNewCELPolicy_InvalidExpr(t *testing.T) {
	if _, err := NewCELPolicy("cuisine =="); err == nil {
		t.Error("expected compile error for invalid expression")
	}
	if _, err := NewCELPolicy(""); err == nil {
		t.Error("expected error for empty expression")
	}
}

func TestCELPolicy_NonNumericResult(t *testing.T) {
	policy, err := NewCELPolicy(`cuisine`)
	if err != nil {
		t.Fatalf("NewCELPolicy() error = %v", err)
	}
	if _, err := policy.Rate("Italian", "French", "Japanese", testTable()); err == nil {
		t.Error("expected error for non-numeric expression result")
	}
}
