// Package dsl 提供基于 CEL (Common Expression Language) 的策略表达式求值。
//
// 评分/采样策略除了内置实现外，也允许用表达式自定义，例如：
//   - 评分：`cuisine == favorite ? 5.0 : similarity * 4.0 + 1.0`
//   - 采样：`cuisine == favorite ? 0.4 : 0.05`
//
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义策略表达式可见的变量
func initCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("cuisine", cel.StringType),        // 当前菜谱的菜系
		cel.Variable("favorite", cel.StringType),       // 用户最喜欢的菜系
		cel.Variable("least_favorite", cel.StringType), // 用户最不喜欢的菜系
		cel.Variable("similarity", cel.DoubleType),     // table[cuisine][favorite]
	)
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = initCELEnv()
	})
	return celEnv, celEnvErr
}

// Expr 是编译后的策略表达式，可被并发复用。
// 编译在构造时完成一次，之后的每次求值只执行程序。
type Expr struct {
	src string
	prg cel.Program
}

// Compile 编译一个数值表达式。表达式的求值结果必须是数值类型
// （CEL 的 double 或 int），否则在求值时报错。
func Compile(src string) (*Expr, error) {
	if src == "" {
		return nil, fmt.Errorf("dsl: empty expression")
	}
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("dsl: init env: %w", err)
	}
	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("dsl: compile %q: %w", src, issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("dsl: program %q: %w", src, err)
	}
	return &Expr{src: src, prg: prg}, nil
}

// Source 返回表达式原文（用于日志/错误提示）。
func (e *Expr) Source() string { return e.src }

// EvalFloat 执行表达式并把结果转为 float64。
// vars 的 key 必须与 initCELEnv 中声明的变量一致。
func (e *Expr) EvalFloat(vars map[string]any) (float64, error) {
	out, _, err := e.prg.Eval(vars)
	if err != nil {
		return 0, fmt.Errorf("dsl: eval %q: %w", e.src, err)
	}
	switch v := out.Value().(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("dsl: expression %q must return a number, got %T", e.src, out.Value())
	}
}
