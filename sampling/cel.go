package sampling

import (
	"fmt"

	"github.com/rushteam/synthkit/pkg/dsl"
)

// CELPolicy 是表达式驱动的采样策略，用于演示方自定义采样行为，
// 例如进一步压低最不喜欢菜系的采样率。
//
// 表达式可见变量：cuisine、favorite、least_favorite、similarity。
// 采样策略只依赖 (cuisine, favorite)，其余变量以零值传入。
//
// 示例：
//
//	cuisine == favorite ? 0.4 : 0.05
type CELPolicy struct {
	expr *dsl.Expr
}

// NewCELPolicy 编译表达式并创建策略；表达式非法时立即报错。
func NewCELPolicy(expr string) (*CELPolicy, error) {
	compiled, err := dsl.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}
	return &CELPolicy{expr: compiled}, nil
}

func (p *CELPolicy) Name() string { return "sampling.cel" }

func (p *CELPolicy) Fraction(cuisine, favorite string) (float64, error) {
	f, err := p.expr.EvalFloat(map[string]any{
		"cuisine":        cuisine,
		"favorite":       favorite,
		"least_favorite": "",
		"similarity":     0.0,
	})
	if err != nil {
		return 0, err
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("sampling: expression %q returned fraction %g outside [0,1]", p.expr.Source(), f)
	}
	return f, nil
}

var _ Policy = (*CELPolicy)(nil)
