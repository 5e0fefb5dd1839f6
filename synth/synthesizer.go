// Package synth 提供合成评价数据集的编排器：驱动画像生成、按菜系采样
// 与评分推导，产出 (users, reviews) 两张表。
package synth

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/synthkit/catalog"
	"github.com/rushteam/synthkit/core"
	"github.com/rushteam/synthkit/profile"
	"github.com/rushteam/synthkit/rating"
	"github.com/rushteam/synthkit/sampling"
	"github.com/rushteam/synthkit/similarity"
)

// Synthesizer 是合成流程的编排器。
//
// 设计要点：
//   - 所有静态输入在 Synthesize 入口校验一次，之后的计算是全量的，
//     没有部分失败：任何一步出错则整次运行作废
//   - 目录与相似度表是不可变共享状态，循环内没有任何 I/O
//   - 每个用户使用从 (seed, 用户序号) 派生的独立随机流，
//     因此并行模式与顺序模式产出逐字节相同的结果
type Synthesizer struct {
	catalog     *catalog.Catalog
	table       similarity.Table
	profiles    profile.Generator
	rating      rating.Policy
	sampling    sampling.Policy
	seed        uint64
	parallelism int
}

// New 创建编排器。缺省使用默认画像生成器、默认仿射评分策略、
// 默认采样比例（0.4/0.05）、种子 0、顺序执行。
func New(cat *catalog.Catalog, table similarity.Table, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		catalog:  cat,
		table:    table,
		profiles: profile.NewGenerator(),
		rating:   rating.NewAffinePolicy(),
		sampling: sampling.NewFractionPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option 是编排器的配置选项。
type Option func(*Synthesizer)

// WithSeed 设置随机种子。相同的种子 + 相同的输入 => 相同的数据集。
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) { s.seed = seed }
}

// WithParallelism 设置并行度。<= 1 表示顺序执行；
// 并行与否不影响产出内容与顺序。
func WithParallelism(n int) Option {
	return func(s *Synthesizer) { s.parallelism = n }
}

// WithProfileGenerator 替换画像生成器（测试中常用固定画像桩）。
func WithProfileGenerator(g profile.Generator) Option {
	return func(s *Synthesizer) {
		if g != nil {
			s.profiles = g
		}
	}
}

// WithRatingPolicy 替换评分策略。
func WithRatingPolicy(p rating.Policy) Option {
	return func(s *Synthesizer) {
		if p != nil {
			s.rating = p
		}
	}
}

// WithSamplingPolicy 替换采样策略。
func WithSamplingPolicy(p sampling.Policy) Option {
	return func(s *Synthesizer) {
		if p != nil {
			s.sampling = p
		}
	}
}

// Synthesize 为 numUsers 个合成用户生成完整数据集。
//
// 每个用户的流程：
//  1. 生成画像（最爱/最不喜欢菜系 + 用户名）
//  2. 对目录中每个菜系，按采样策略给出的比例抽取菜谱子集
//     （抽到 0 个时该菜系静默跳过，不是错误）
//  3. 对每个抽中的菜谱用评分策略推导分数，产出一条评价
//
// 产出序列保持生成顺序：第 i 个用户的评价排在第 i+1 个用户之前。
func (s *Synthesizer) Synthesize(ctx context.Context, numUsers int) (*core.Dataset, error) {
	if err := s.validate(numUsers); err != nil {
		return nil, err
	}

	users := make([]core.UserProfile, numUsers)
	perUser := make([][]core.Review, numUsers)
	cuisines := s.catalog.Cuisines()

	if s.parallelism > 1 {
		eg, _ := errgroup.WithContext(ctx)
		eg.SetLimit(s.parallelism)
		for i := 0; i < numUsers; i++ {
			eg.Go(func() error {
				u, reviews, err := s.synthesizeUser(s.userRNG(i), cuisines)
				if err != nil {
					return err
				}
				users[i] = u
				perUser[i] = reviews
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := 0; i < numUsers; i++ {
			u, reviews, err := s.synthesizeUser(s.userRNG(i), cuisines)
			if err != nil {
				return nil, err
			}
			users[i] = u
			perUser[i] = reviews
		}
	}

	// 按用户序号合并，一次性分配目标容量，避免反复整体拷贝
	total := 0
	for _, r := range perUser {
		total += len(r)
	}
	reviews := make([]core.Review, 0, total)
	for _, r := range perUser {
		reviews = append(reviews, r...)
	}

	return &core.Dataset{Users: users, Reviews: reviews}, nil
}

// userRNG 为第 i 个用户派生独立随机流。
// 流只由 (seed, i) 决定，与执行顺序和并行度无关。
func (s *Synthesizer) userRNG(i int) *rand.Rand {
	return rand.New(rand.NewPCG(s.seed, uint64(i)))
}

// synthesizeUser 生成一个用户及其全部评价。
func (s *Synthesizer) synthesizeUser(rng *rand.Rand, cuisines []string) (core.UserProfile, []core.Review, error) {
	u, err := s.profiles.Generate(rng, cuisines)
	if err != nil {
		return core.UserProfile{}, nil, err
	}

	var reviews []core.Review
	for _, cuisine := range cuisines {
		fraction, err := s.sampling.Fraction(cuisine, u.FavoriteCuisine)
		if err != nil {
			return core.UserProfile{}, nil, err
		}
		sampled := catalog.Sample(rng, s.catalog.RecipesFor(cuisine), fraction)
		for _, recipe := range sampled {
			score, err := s.rating.Rate(cuisine, u.FavoriteCuisine, u.LeastFavoriteCuisine, s.table)
			if err != nil {
				return core.UserProfile{}, nil, err
			}
			reviews = append(reviews, core.Review{
				Username: u.Username,
				RecipeID: recipe.ID,
				Rating:   score,
			})
		}
	}
	return u, reviews, nil
}

// validate 对静态输入做一次性校验（对应配置错误分类），
// 通过后合成过程不再做任何检查。
func (s *Synthesizer) validate(numUsers int) error {
	if numUsers < 0 {
		return fmt.Errorf("synth: num users %d: %w", numUsers, core.ErrNegativeUserCount)
	}
	if s.catalog == nil || s.catalog.Len() == 0 {
		return core.ErrEmptyCatalog
	}
	cuisines := s.catalog.Cuisines()
	if len(cuisines) < 2 {
		return core.ErrTooFewCuisines
	}
	if err := s.table.Validate(cuisines); err != nil {
		return err
	}
	// 采样策略若提供自校验则一并执行（如默认 FractionPolicy 的比例范围）
	if v, ok := s.sampling.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
