package core

// Review 是一条合成评价：某用户对某菜谱给出的分数。
// Rating 取值范围 [1,5]，由 rating 包的策略推导。
type Review struct {
	Username string
	RecipeID string
	Rating   float64
}

// Dataset 是一次合成运行的完整产物：用户表 + 评价表。
// 两个序列都按生成顺序排列（第 i 个用户的评价在第 i+1 个用户之前），
// 生成后不再修改，整体交给 sink 层持久化。
type Dataset struct {
	Users   []UserProfile
	Reviews []Review
}
