// Package sampling 提供每个菜系的评价采样比例策略。
package sampling

import (
	"fmt"

	"github.com/rushteam/synthkit/core"
)

// 默认采样比例：用户会评价最爱菜系约四成的菜谱，其余菜系只抽很小一部分。
const (
	DefaultFavoriteFraction = 0.4
	DefaultOtherFraction    = 0.05
)

// Policy 决定某个菜系按多大比例抽取菜谱供用户评价。
// 实现必须是纯函数，不得携带随机性（随机性只存在于抽样本身）。
type Policy interface {
	// Name 返回策略名称（用于日志/配置）
	Name() string

	// Fraction 返回 [0,1] 区间内的采样比例
	Fraction(cuisine, favorite string) (float64, error)
}

// FractionPolicy 是默认采样策略：最爱菜系用 Favorite 比例，其余菜系
// 统一用 Default 比例。
//
// 注意：最不喜欢的菜系也使用 Default，而不是更低的比例——用户偶尔
// 也会评价讨厌的菜系（并打出低分），这是刻意保留的行为。
type FractionPolicy struct {
	Favorite float64
	Default  float64
}

// NewFractionPolicy 创建使用默认比例（0.4 / 0.05）的采样策略。
func NewFractionPolicy() *FractionPolicy {
	return &FractionPolicy{
		Favorite: DefaultFavoriteFraction,
		Default:  DefaultOtherFraction,
	}
}

func (p *FractionPolicy) Name() string { return "sampling.fraction" }

func (p *FractionPolicy) Fraction(cuisine, favorite string) (float64, error) {
	if cuisine == favorite {
		return p.Favorite, nil
	}
	return p.Default, nil
}

// Validate 校验两个比例都落在 [0,1]。
func (p *FractionPolicy) Validate() error {
	if p.Favorite < 0 || p.Favorite > 1 {
		return core.NewDomainError(core.ModuleSampling, core.ErrorCodeInvalidConfig,
			fmt.Sprintf("sampling: favorite fraction %g outside [0,1]", p.Favorite))
	}
	if p.Default < 0 || p.Default > 1 {
		return core.NewDomainError(core.ModuleSampling, core.ErrorCodeInvalidConfig,
			fmt.Sprintf("sampling: default fraction %g outside [0,1]", p.Default))
	}
	return nil
}

var _ Policy = (*FractionPolicy)(nil)
