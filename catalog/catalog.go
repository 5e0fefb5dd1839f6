// Package catalog 提供按菜系分组的内存菜谱目录与子集采样。
package catalog

import (
	"math/rand/v2"
	"sort"

	"github.com/rushteam/synthkit/core"
)

// Catalog 是只读的内存菜谱目录。
//
// 设计要点：
//   - 加载一次之后不再修改，可被多个 goroutine 并发读取
//   - 按菜系分组保持目录内的原始顺序（稳定但无语义）
//   - Cuisines() 返回排序后的菜系列表，保证合成过程的遍历顺序确定
type Catalog struct {
	recipes   []core.Recipe
	byCuisine map[string][]core.Recipe
	cuisines  []string
}

// New 用一组菜谱记录构建目录。目录为空是配置错误（ErrEmptyCatalog）。
func New(recipes []core.Recipe) (*Catalog, error) {
	if len(recipes) == 0 {
		return nil, core.ErrEmptyCatalog
	}
	byCuisine := make(map[string][]core.Recipe)
	for _, r := range recipes {
		byCuisine[r.Cuisine] = append(byCuisine[r.Cuisine], r)
	}
	cuisines := make([]string, 0, len(byCuisine))
	for c := range byCuisine {
		cuisines = append(cuisines, c)
	}
	sort.Strings(cuisines)
	return &Catalog{
		recipes:   recipes,
		byCuisine: byCuisine,
		cuisines:  cuisines,
	}, nil
}

// Len 返回目录中的菜谱总数。
func (c *Catalog) Len() int { return len(c.recipes) }

// Cuisines 返回目录中出现过的所有菜系标签（升序）。
// 返回的 slice 为内部共享，调用方不应修改。
func (c *Catalog) Cuisines() []string { return c.cuisines }

// RecipesFor 返回指定菜系的全部菜谱；未知菜系返回空。
// 返回的 slice 为内部共享，调用方不应修改。
func (c *Catalog) RecipesFor(cuisine string) []core.Recipe {
	return c.byCuisine[cuisine]
}

// Sample 均匀随机抽取 floor(len(recipes) * fraction) 个菜谱，不放回、无重复。
//
// 边界行为：
//   - 抽取数量为 0 时返回空子集（不是错误）——小菜系在低采样率下可能贡献 0 条评价
//   - 抽取数量超过可用数量时截到全部（fraction <= 1 时不会发生，防御性处理）
//
// 随机性全部来自调用方注入的 rng，便于用固定种子复现结果。
func Sample(rng *rand.Rand, recipes []core.Recipe, fraction float64) []core.Recipe {
	n := len(recipes)
	k := int(float64(n) * fraction)
	if k <= 0 || n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	idx := rng.Perm(n)
	out := make([]core.Recipe, 0, k)
	for _, i := range idx[:k] {
		out = append(out, recipes[i])
	}
	return out
}
