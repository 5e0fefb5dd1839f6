package config

import (
	"fmt"

	"github.com/rushteam/synthkit/pkg/conv"
	"github.com/rushteam/synthkit/rating"
	"github.com/rushteam/synthkit/sampling"
)

func init() {
	RegisterRating("rating.affine", buildAffineRating)
	RegisterRating("rating.cel", buildCELRating)
	RegisterSampling("sampling.fraction", buildFractionSampling)
	RegisterSampling("sampling.cel", buildCELSampling)
}

func buildAffineRating(_ map[string]any) (rating.Policy, error) {
	return rating.NewAffinePolicy(), nil
}

func buildCELRating(cfg map[string]any) (rating.Policy, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	if expr == "" {
		return nil, fmt.Errorf("rating.cel: expr is required")
	}
	return rating.NewCELPolicy(expr)
}

func buildFractionSampling(cfg map[string]any) (sampling.Policy, error) {
	p := &sampling.FractionPolicy{
		Favorite: conv.ConfigGetFloat64(cfg, "favorite", sampling.DefaultFavoriteFraction),
		Default:  conv.ConfigGetFloat64(cfg, "default", sampling.DefaultOtherFraction),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func buildCELSampling(cfg map[string]any) (sampling.Policy, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	if expr == "" {
		return nil, fmt.Errorf("sampling.cel: expr is required")
	}
	return sampling.NewCELPolicy(expr)
}
