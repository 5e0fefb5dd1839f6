// Package config 提供配置驱动的合成运行：从 YAML 描述一次完整的
// 数据集合成（输入路径、用户数、种子、策略、输出），并组装出可执行的编排器。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 是一次合成运行的配置结构。
type Config struct {
	Synthesis struct {
		NumUsers    int    `yaml:"num_users"`
		Seed        uint64 `yaml:"seed"`
		Parallelism int    `yaml:"parallelism"`
	} `yaml:"synthesis"`

	Catalog struct {
		Path string `yaml:"path"` // CSV，表头含 recipe_id / cuisine
	} `yaml:"catalog"`

	Similarity struct {
		Path   string `yaml:"path"`
		Format string `yaml:"format"` // yaml（默认）/ json
	} `yaml:"similarity"`

	// Rating / Sampling 缺省时使用内置默认策略
	Rating   *PolicyConfig `yaml:"rating"`
	Sampling *PolicyConfig `yaml:"sampling"`

	// Profile 词表覆盖，缺省时使用内置词表
	Profile struct {
		Names         []string `yaml:"names"`
		AffinityWords []string `yaml:"affinity_words"`
		NeedWords     []string `yaml:"need_words"`
		FoodWords     []string `yaml:"food_words"`
	} `yaml:"profile"`

	Output struct {
		UsersPath   string `yaml:"users_path"`
		ReviewsPath string `yaml:"reviews_path"`
	} `yaml:"output"`
}

// PolicyConfig 是单个策略的配置。
type PolicyConfig struct {
	Type   string         `yaml:"type"`   // rating.affine / rating.cel / sampling.fraction / sampling.cel
	Config map[string]any `yaml:"config"` // 策略特定配置
}

// Load 从 YAML 文件加载运行配置。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}
