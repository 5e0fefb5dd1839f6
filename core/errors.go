package core

import "errors"

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - 配置类错误：INVALID_CONFIG（菜系不足、用户数为负、目录为空、相似度越界）
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
//
// 合成核心没有 I/O，不存在可重试的瞬态失败：所有失败都是入口处的
// 前置条件校验，校验通过后整个计算是全量且确定的。
type DomainError struct {
	Code    string // 错误代码（如 "INVALID_CONFIG", "NOT_FOUND"）
	Message string // 错误消息
	Module  string // 模块名称（如 "catalog", "similarity", "synth"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// GetDomainError 获取 DomainError（支持 wrap 链），如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// 错误代码常量
const (
	ErrorCodeInvalidConfig = "INVALID_CONFIG" // 静态输入无效，中止整个合成运行
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
)

// 模块名称常量
const (
	ModuleCatalog    = "catalog"    // 菜谱目录模块
	ModuleSimilarity = "similarity" // 相似度表模块
	ModuleProfile    = "profile"    // 用户画像模块
	ModuleSampling   = "sampling"   // 采样策略模块
	ModuleRating     = "rating"     // 评分策略模块
	ModuleSynth      = "synth"      // 合成编排模块
	ModuleStore      = "store"      // 存储模块
)

// 配置类错误：立即失败，不重试
var (
	// ErrEmptyCatalog 表示目录中没有任何菜谱
	ErrEmptyCatalog = NewDomainError(ModuleCatalog, ErrorCodeInvalidConfig, "catalog: no recipes")

	// ErrTooFewCuisines 表示目录中的菜系少于 2 种，无法构造偏好对
	ErrTooFewCuisines = NewDomainError(ModuleProfile, ErrorCodeInvalidConfig, "profile: need at least 2 cuisines")

	// ErrNegativeUserCount 表示请求的用户数为负
	ErrNegativeUserCount = NewDomainError(ModuleSynth, ErrorCodeInvalidConfig, "synth: num users must be >= 0")
)

// IsConfigError 检查错误是否为配置类错误（INVALID_CONFIG）
func IsConfigError(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidConfig
	}
	return false
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}
