// Package similarity 提供菜系两两相似度的只读查找表。
//
// 表由外部离线任务预先计算并序列化（本库不负责构建），加载后作为
// 不可变共享状态显式传入合成流程——不是包级全局，便于隔离测试。
package similarity

import (
	"fmt"

	"github.com/rushteam/synthkit/core"
)

// Table 是 (row, col) -> [0,1] 相似度分数的查找表。
// 按 table[菜谱菜系][用户最爱菜系] 访问；数据上通常对称，但访问方向固定。
type Table map[string]map[string]float64

// Score 返回 (row, col) 的相似度分数；该对未定义时返回 ok=false。
func (t Table) Score(row, col string) (float64, bool) {
	cols, ok := t[row]
	if !ok {
		return 0, false
	}
	s, ok := cols[col]
	return s, ok
}

// Validate 校验表对给定菜系集合的完整性与取值范围：
//   - 每一对菜系（含对角线自相似对）都必须有定义
//   - 所有分数必须落在 [0,1]，越界是配置错误，不做静默截断
//
// 对角线的取值不被默认评分规则读取，因此只查存在性与范围，
// 不强制等于 1。
func (t Table) Validate(cuisines []string) error {
	for _, row := range cuisines {
		for _, col := range cuisines {
			s, ok := t.Score(row, col)
			if !ok {
				return core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidConfig,
					fmt.Sprintf("similarity: missing pair (%s, %s)", row, col))
			}
			if s < 0 || s > 1 {
				return core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidConfig,
					fmt.Sprintf("similarity: score %g for pair (%s, %s) outside [0,1]", s, row, col))
			}
		}
	}
	return nil
}
