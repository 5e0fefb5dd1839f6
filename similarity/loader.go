package similarity

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromYAML 从 YAML 文件加载相似度表。
// 格式为两层映射：
//
//	Italian:
//	  Italian: 1.0
//	  French: 0.5
//	French:
//	  Italian: 0.5
//	  French: 1.0
func LoadFromYAML(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return t, nil
}

// LoadFromJSON 从 JSON 文件加载相似度表（结构同 YAML）。
func LoadFromJSON(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return t, nil
}
