package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rushteam/synthkit/catalog"
	"github.com/rushteam/synthkit/profile"
	"github.com/rushteam/synthkit/similarity"
	"github.com/rushteam/synthkit/sink"
	"github.com/rushteam/synthkit/synth"
)

// BuildSynthesizer 按配置加载输入并组装编排器。
func BuildSynthesizer(cfg *Config) (*synth.Synthesizer, error) {
	cat, err := catalog.LoadCSV(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.Catalog.Path, err)
	}

	table, err := loadSimilarity(cfg)
	if err != nil {
		return nil, fmt.Errorf("load similarity %s: %w", cfg.Similarity.Path, err)
	}

	ratingPolicy, err := BuildRatingPolicy(cfg.Rating)
	if err != nil {
		return nil, err
	}
	samplingPolicy, err := BuildSamplingPolicy(cfg.Sampling)
	if err != nil {
		return nil, err
	}

	gen := profile.NewGenerator(
		profile.WithNames(cfg.Profile.Names),
		profile.WithAffinityWords(cfg.Profile.AffinityWords),
		profile.WithNeedWords(cfg.Profile.NeedWords),
		profile.WithFoodWords(cfg.Profile.FoodWords),
	)

	return synth.New(cat, table,
		synth.WithSeed(cfg.Synthesis.Seed),
		synth.WithParallelism(cfg.Synthesis.Parallelism),
		synth.WithProfileGenerator(gen),
		synth.WithRatingPolicy(ratingPolicy),
		synth.WithSamplingPolicy(samplingPolicy),
	), nil
}

// BuildCSVSink 按配置组装 CSV 出口。
func BuildCSVSink(cfg *Config) (*sink.CSVSink, error) {
	if cfg.Output.UsersPath == "" || cfg.Output.ReviewsPath == "" {
		return nil, fmt.Errorf("output: users_path and reviews_path are required")
	}
	return &sink.CSVSink{
		UsersPath:   cfg.Output.UsersPath,
		ReviewsPath: cfg.Output.ReviewsPath,
	}, nil
}

// loadSimilarity 按 format（缺省时按扩展名）选择相似度表的加载器。
func loadSimilarity(cfg *Config) (similarity.Table, error) {
	format := cfg.Similarity.Format
	if format == "" {
		switch strings.ToLower(filepath.Ext(cfg.Similarity.Path)) {
		case ".json":
			format = "json"
		default:
			format = "yaml"
		}
	}
	switch format {
	case "yaml", "yml":
		return similarity.LoadFromYAML(cfg.Similarity.Path)
	case "json":
		return similarity.LoadFromJSON(cfg.Similarity.Path)
	default:
		return nil, fmt.Errorf("unknown similarity format: %s", format)
	}
}
