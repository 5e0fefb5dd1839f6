package rating

import (
	"fmt"

	"github.com/rushteam/synthkit/core"
	"github.com/rushteam/synthkit/pkg/dsl"
	"github.com/rushteam/synthkit/similarity"
)

// CELPolicy 是表达式驱动的评分策略，用于演示方自定义评分规则。
//
// 表达式可见变量：
//   - cuisine        当前菜谱的菜系
//   - favorite       用户最爱菜系
//   - least_favorite 用户最不喜欢菜系
//   - similarity     table[cuisine][favorite]（double）
//
// 示例（等价于默认 AffinePolicy）：
//
//	cuisine == favorite ? 5.0 :
//	  (cuisine == least_favorite ? 1.0 : similarity * 4.0 + 1.0)
type CELPolicy struct {
	expr *dsl.Expr
}

// NewCELPolicy 编译表达式并创建策略；表达式非法时立即报错。
func NewCELPolicy(expr string) (*CELPolicy, error) {
	compiled, err := dsl.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("rating: %w", err)
	}
	return &CELPolicy{expr: compiled}, nil
}

func (p *CELPolicy) Name() string { return "rating.cel" }

func (p *CELPolicy) Rate(recipeCuisine, favorite, leastFavorite string, table similarity.Table) (float64, error) {
	s, ok := table.Score(recipeCuisine, favorite)
	if !ok {
		return 0, core.NewDomainError(core.ModuleRating, core.ErrorCodeInvalidConfig,
			fmt.Sprintf("rating: similarity pair (%s, %s) not defined", recipeCuisine, favorite))
	}
	return p.expr.EvalFloat(map[string]any{
		"cuisine":        recipeCuisine,
		"favorite":       favorite,
		"least_favorite": leastFavorite,
		"similarity":     s,
	})
}

var _ Policy = (*CELPolicy)(nil)
