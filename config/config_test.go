package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rushteam/synthkit/rating"
	"github.com/rushteam/synthkit/sampling"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "run.yaml", `
synthesis:
  num_users: 50
  seed: 42
  parallelism: 4
catalog:
  path: recipes.csv
similarity:
  path: similarity.yaml
rating:
  type: rating.cel
  config:
    expr: "cuisine == favorite ? 5.0 : similarity * 4.0 + 1.0"
sampling:
  type: sampling.fraction
  config:
    favorite: 0.4
    default: 0.05
output:
  users_path: users.csv
  reviews_path: reviews.csv
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Synthesis.NumUsers != 50 || cfg.Synthesis.Seed != 42 || cfg.Synthesis.Parallelism != 4 {
		t.Errorf("unexpected synthesis section: %+v", cfg.Synthesis)
	}
	if cfg.Rating == nil || cfg.Rating.Type != "rating.cel" {
		t.Errorf("unexpected rating section: %+v", cfg.Rating)
	}
	if cfg.Sampling == nil || cfg.Sampling.Type != "sampling.fraction" {
		t.Errorf("unexpected sampling section: %+v", cfg.Sampling)
	}
	if cfg.Output.UsersPath != "users.csv" {
		t.Errorf("unexpected output section: %+v", cfg.Output)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nosuch.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildRatingPolicy(t *testing.T) {
	t.Run("nil config uses default affine policy", func(t *testing.T) {
		p, err := BuildRatingPolicy(nil)
		if err != nil {
			t.Fatalf("BuildRatingPolicy(nil) error = %v", err)
		}
		if _, ok := p.(*rating.AffinePolicy); !ok {
			t.Errorf("got %T, want *rating.AffinePolicy", p)
		}
	})

	t.Run("cel policy from expr", func(t *testing.T) {
		p, err := BuildRatingPolicy(&PolicyConfig{
			Type:   "rating.cel",
			Config: map[string]any{"expr": "similarity * 4.0 + 1.0"},
		})
		if err != nil {
			t.Fatalf("BuildRatingPolicy(cel) error = %v", err)
		}
		if p.Name() != "rating.cel" {
			t.Errorf("Name() = %s, want rating.cel", p.Name())
		}
	})

	t.Run("cel policy without expr fails", func(t *testing.T) {
		if _, err := BuildRatingPolicy(&PolicyConfig{Type: "rating.cel"}); err == nil {
			t.Error("expected error for missing expr")
		}
	})

	t.Run("unknown type lists supported types", func(t *testing.T) {
		_, err := BuildRatingPolicy(&PolicyConfig{Type: "rating.nosuch"})
		if err == nil {
			t.Fatal("expected error for unknown type")
		}
		if !strings.Contains(err.Error(), "rating.affine") {
			t.Errorf("error %q should list supported types", err)
		}
	})
}

func TestBuildSamplingPolicy(t *testing.T) {
	t.Run("nil config uses default fractions", func(t *testing.T) {
		p, err := BuildSamplingPolicy(nil)
		if err != nil {
			t.Fatalf("BuildSamplingPolicy(nil) error = %v", err)
		}
		f, err := p.Fraction("Italian", "Italian")
		if err != nil || f != sampling.DefaultFavoriteFraction {
			t.Errorf("Fraction(favorite) = %v, %v, want 0.4", f, err)
		}
	})

	t.Run("fraction overrides from config", func(t *testing.T) {
		p, err := BuildSamplingPolicy(&PolicyConfig{
			Type:   "sampling.fraction",
			Config: map[string]any{"favorite": 0.6, "default": 0.1},
		})
		if err != nil {
			t.Fatalf("BuildSamplingPolicy(fraction) error = %v", err)
		}
		if f, _ := p.Fraction("Italian", "Italian"); f != 0.6 {
			t.Errorf("Fraction(favorite) = %v, want 0.6", f)
		}
		if f, _ := p.Fraction("French", "Italian"); f != 0.1 {
			t.Errorf("Fraction(other) = %v, want 0.1", f)
		}
	})

	t.Run("fraction outside range fails at build", func(t *testing.T) {
		_, err := BuildSamplingPolicy(&PolicyConfig{
			Type:   "sampling.fraction",
			Config: map[string]any{"favorite": 1.5},
		})
		if err == nil {
			t.Error("expected error for fraction above 1")
		}
	})
}

func TestBuildSynthesizer(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeTestFile(t, dir, "recipes.csv",
		"recipe_id,cuisine\n"+
			"r1,Italian\nr2,Italian\nr3,Italian\nr4,Italian\nr5,Italian\n"+
			"r6,French\nr7,French\nr8,French\nr9,French\nr10,French\n")
	similarityPath := writeTestFile(t, dir, "similarity.yaml",
		"Italian:\n  Italian: 1.0\n  French: 0.5\nFrench:\n  Italian: 0.5\n  French: 1.0\n")

	cfg := &Config{}
	cfg.Synthesis.NumUsers = 5
	cfg.Synthesis.Seed = 42
	cfg.Catalog.Path = catalogPath
	cfg.Similarity.Path = similarityPath
	cfg.Output.UsersPath = filepath.Join(dir, "users.csv")
	cfg.Output.ReviewsPath = filepath.Join(dir, "reviews.csv")

	s, err := BuildSynthesizer(cfg)
	if err != nil {
		t.Fatalf("BuildSynthesizer() error = %v", err)
	}

	ds, err := s.Synthesize(context.Background(), cfg.Synthesis.NumUsers)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(ds.Users) != 5 {
		t.Errorf("got %d users, want 5", len(ds.Users))
	}

	out, err := BuildCSVSink(cfg)
	if err != nil {
		t.Fatalf("BuildCSVSink() error = %v", err)
	}
	if err := out.Write(ds); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(cfg.Output.UsersPath); err != nil {
		t.Errorf("users.csv not written: %v", err)
	}
	if _, err := os.Stat(cfg.Output.ReviewsPath); err != nil {
		t.Errorf("reviews.csv not written: %v", err)
	}
}

func TestBuildSynthesizer_MissingCatalog(t *testing.T) {
	cfg := &Config{}
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "nosuch.csv")
	if _, err := BuildSynthesizer(cfg); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestBuildCSVSink_RequiresPaths(t *testing.T) {
	if _, err := BuildCSVSink(&Config{}); err == nil {
		t.Error("expected error for empty output paths")
	}
}

func TestLoadSimilarity_FormatByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTestFile(t, dir, "sim.json",
		`{"Italian":{"Italian":1.0,"French":0.5},"French":{"Italian":0.5,"French":1.0}}`)

	cfg := &Config{}
	cfg.Similarity.Path = jsonPath
	table, err := loadSimilarity(cfg)
	if err != nil {
		t.Fatalf("loadSimilarity() error = %v", err)
	}
	if s, ok := table.Score("Italian", "French"); !ok || s != 0.5 {
		t.Errorf("Score = %v, %v, want 0.5, true", s, ok)
	}

	cfg.Similarity.Format = "toml"
	if _, err := loadSimilarity(cfg); err == nil {
		t.Error("expected error for unknown format")
	}
}
