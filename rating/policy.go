// Package rating 提供从用户偏好推导评价分数的策略。
package rating

import (
	"fmt"

	"github.com/rushteam/synthkit/core"
	"github.com/rushteam/synthkit/similarity"
)

// 评分范围常量。相似度 s ∈ [0,1] 经仿射映射 s*4+1 落在 [MinRating, MaxRating]。
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Policy 是评分策略的抽象接口：给定菜谱菜系与用户偏好对，推导一个分数。
// 实现必须是纯函数——相同输入永远得到相同输出，不得携带随机性。
type Policy interface {
	// Name 返回策略名称（用于日志/配置）
	Name() string

	// Rate 计算 (菜谱菜系, 最爱菜系, 最不喜欢菜系) 对应的分数
	Rate(recipeCuisine, favorite, leastFavorite string, table similarity.Table) (float64, error)
}

// AffinePolicy 是默认评分策略：
//   - 菜谱菜系 == 最爱菜系     -> MaxRating (5)
//   - 菜谱菜系 == 最不喜欢菜系 -> MinRating (1)
//   - 其他                     -> table[菜谱菜系][最爱菜系] * 4 + 1
//
// 最爱与最不喜欢由 profile 包约束不相等，所以前两个分支的先后顺序
// 不产生可观察差异。对角线相似度在此规则下永远不会被读取。
type AffinePolicy struct{}

// NewAffinePolicy 创建默认评分策略。
func NewAffinePolicy() *AffinePolicy { return &AffinePolicy{} }

func (p *AffinePolicy) Name() string { return "rating.affine" }

func (p *AffinePolicy) Rate(recipeCuisine, favorite, leastFavorite string, table similarity.Table) (float64, error) {
	if recipeCuisine == favorite {
		return MaxRating, nil
	}
	if recipeCuisine == leastFavorite {
		return MinRating, nil
	}
	s, ok := table.Score(recipeCuisine, favorite)
	if !ok {
		return 0, core.NewDomainError(core.ModuleRating, core.ErrorCodeInvalidConfig,
			fmt.Sprintf("rating: similarity pair (%s, %s) not defined", recipeCuisine, favorite))
	}
	// 越界的相似度是配置错误，不做截断（入口校验通常已拦截，这里守住纯函数契约）
	if s < 0 || s > 1 {
		return 0, core.NewDomainError(core.ModuleRating, core.ErrorCodeInvalidConfig,
			fmt.Sprintf("rating: similarity %g for pair (%s, %s) outside [0,1]", s, recipeCuisine, favorite))
	}
	return s*4 + 1, nil
}

var _ Policy = (*AffinePolicy)(nil)
