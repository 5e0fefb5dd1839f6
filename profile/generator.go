// Package profile 提供合成用户画像（用户名 + 口味偏好对）的生成器。
package profile

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rushteam/synthkit/core"
)

// Generator 是画像生成器的抽象接口，采用策略模式。
// 随机性全部来自调用方注入的 rng，便于测试用固定种子断言精确输出，
// 也便于合成层为每个用户派生独立随机流做并行。
type Generator interface {
	// Generate 基于目录中的菜系集合生成一个用户画像
	Generate(rng *rand.Rand, cuisines []string) (core.UserProfile, error)
}

// 用户名模板的默认词表。小而固定，为的是让演示数据读起来像真人起的名字。
var (
	defaultNames = []string{
		"alex", "sam", "jamie", "taylor", "jordan", "casey", "riley", "morgan",
	}
	defaultAffinityWords = []string{
		"lover", "fan", "fanatic", "addict", "devotee", "enthusiast",
	}
	defaultNeedWords = []string{
		"needs", "wants", "craves", "seeks",
	}
	defaultFoodWords = []string{
		"food", "cuisine", "dishes", "eats", "meals",
	}
)

// DefaultGenerator 是默认画像生成器。
//
// 生成规则：
//   - 最爱菜系从目录菜系中均匀抽取
//   - 最不喜欢菜系均匀抽取并排除最爱（重抽直到不同；菜系 >= 2 时必然终止）
//   - 用户名从两个模板中等概率二选一：
//     {最爱菜系小写}_{affinity 词}_{三位数字}
//     {人名}_{need 词}_{最爱菜系小写}_{food 词}_{三位数字}
//
// 用户名不保证唯一，三位数字允许重复——演示数据接受碰撞。
type DefaultGenerator struct {
	Names         []string
	AffinityWords []string
	NeedWords     []string
	FoodWords     []string
}

// NewGenerator 创建默认画像生成器。
func NewGenerator(opts ...Option) *DefaultGenerator {
	g := &DefaultGenerator{
		Names:         defaultNames,
		AffinityWords: defaultAffinityWords,
		NeedWords:     defaultNeedWords,
		FoodWords:     defaultFoodWords,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Option 是画像生成器的配置选项。
type Option func(*DefaultGenerator)

// WithNames 覆盖人名词表。
func WithNames(names []string) Option {
	return func(g *DefaultGenerator) {
		if len(names) > 0 {
			g.Names = names
		}
	}
}

// WithAffinityWords 覆盖 affinity 词表。
func WithAffinityWords(words []string) Option {
	return func(g *DefaultGenerator) {
		if len(words) > 0 {
			g.AffinityWords = words
		}
	}
}

// WithNeedWords 覆盖 need 词表。
func WithNeedWords(words []string) Option {
	return func(g *DefaultGenerator) {
		if len(words) > 0 {
			g.NeedWords = words
		}
	}
}

// WithFoodWords 覆盖 food 词表。
func WithFoodWords(words []string) Option {
	return func(g *DefaultGenerator) {
		if len(words) > 0 {
			g.FoodWords = words
		}
	}
}

func (g *DefaultGenerator) Generate(rng *rand.Rand, cuisines []string) (core.UserProfile, error) {
	if len(cuisines) < 2 {
		return core.UserProfile{}, core.ErrTooFewCuisines
	}

	favorite := cuisines[rng.IntN(len(cuisines))]
	least := favorite
	for least == favorite {
		least = cuisines[rng.IntN(len(cuisines))]
	}

	return core.UserProfile{
		Username:             g.username(rng, favorite),
		FavoriteCuisine:      favorite,
		LeastFavoriteCuisine: least,
	}, nil
}

// username 从两个模板中等概率选一个生成用户名。
func (g *DefaultGenerator) username(rng *rand.Rand, favorite string) string {
	fav := strings.ToLower(favorite)
	code := fmt.Sprintf("%03d", rng.IntN(1000))
	if rng.IntN(2) == 0 {
		return fmt.Sprintf("%s_%s_%s", fav, pick(rng, g.AffinityWords), code)
	}
	return fmt.Sprintf("%s_%s_%s_%s_%s",
		pick(rng, g.Names), pick(rng, g.NeedWords), fav, pick(rng, g.FoodWords), code)
}

func pick(rng *rand.Rand, words []string) string {
	return words[rng.IntN(len(words))]
}

var _ Generator = (*DefaultGenerator)(nil)
