package core

// Recipe 是数据合成的最小物品单元：一条带菜系标签的菜谱记录。
// ID 由外部目录给定，对本库不透明；Cuisine 必须与相似度表使用同一套
// 标签词表（大小写敏感，本库不做任何归一化）。
type Recipe struct {
	ID      string
	Cuisine string
}
