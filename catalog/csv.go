package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rushteam/synthkit/core"
)

// CSV 列名。目录通常由电子表格导出，允许存在多余列、列顺序不限。
const (
	colRecipeID = "recipe_id"
	colCuisine  = "cuisine"
)

// LoadCSV 从 CSV 文件加载菜谱目录。
// 第一行必须是表头，且包含 recipe_id 与 cuisine 两列。
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV 从任意 Reader 读取 CSV 目录（便于测试与内嵌数据）。
func ReadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	idIdx, cuisineIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case colRecipeID:
			idIdx = i
		case colCuisine:
			cuisineIdx = i
		}
	}
	if idIdx < 0 || cuisineIdx < 0 {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidConfig,
			fmt.Sprintf("catalog: header must contain %q and %q columns", colRecipeID, colCuisine))
	}

	var recipes []core.Recipe
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		if idIdx >= len(record) || cuisineIdx >= len(record) {
			continue
		}
		id := strings.TrimSpace(record[idIdx])
		cuisine := strings.TrimSpace(record[cuisineIdx])
		if id == "" || cuisine == "" {
			continue
		}
		recipes = append(recipes, core.Recipe{ID: id, Cuisine: cuisine})
	}
	return New(recipes)
}
