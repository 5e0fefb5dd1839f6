package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rushteam/synthkit/rating"
	"github.com/rushteam/synthkit/sampling"
)

// 策略注册表：内置策略在本包 init 中注册（见 builders.go），
// 业务方也可以在入口处注册自定义策略类型。

// RatingBuilder 根据 config 构建评分策略。
type RatingBuilder func(cfg map[string]any) (rating.Policy, error)

// SamplingBuilder 根据 config 构建采样策略。
type SamplingBuilder func(cfg map[string]any) (sampling.Policy, error)

var (
	registryMu       sync.RWMutex
	ratingBuilders   = make(map[string]RatingBuilder)
	samplingBuilders = make(map[string]SamplingBuilder)
)

// RegisterRating 注册一种评分策略的构建逻辑。
func RegisterRating(typeName string, builder RatingBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	ratingBuilders[typeName] = builder
}

// RegisterSampling 注册一种采样策略的构建逻辑。
func RegisterSampling(typeName string, builder SamplingBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	samplingBuilders[typeName] = builder
}

// SupportedTypes 返回当前已注册的策略类型列表（排序），用于错误提示与校验。
func SupportedTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]string, 0, len(ratingBuilders)+len(samplingBuilders))
	for t := range ratingBuilders {
		types = append(types, t)
	}
	for t := range samplingBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// BuildRatingPolicy 根据策略配置构建评分策略；cfg 为 nil 时返回默认策略。
func BuildRatingPolicy(cfg *PolicyConfig) (rating.Policy, error) {
	if cfg == nil || cfg.Type == "" {
		return rating.NewAffinePolicy(), nil
	}
	registryMu.RLock()
	builder, ok := ratingBuilders[cfg.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown rating policy type: %s (supported: %v)", cfg.Type, SupportedTypes())
	}
	return builder(cfg.Config)
}

// BuildSamplingPolicy 根据策略配置构建采样策略；cfg 为 nil 时返回默认策略。
func BuildSamplingPolicy(cfg *PolicyConfig) (sampling.Policy, error) {
	if cfg == nil || cfg.Type == "" {
		return sampling.NewFractionPolicy(), nil
	}
	registryMu.RLock()
	builder, ok := samplingBuilders[cfg.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown sampling policy type: %s (supported: %v)", cfg.Type, SupportedTypes())
	}
	return builder(cfg.Config)
}
