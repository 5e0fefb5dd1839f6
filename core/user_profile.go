package core

// UserProfile 是一个合成用户的画像：用户名 + 一对口味偏好。
//
// 不变量：FavoriteCuisine != LeastFavoriteCuisine（由 profile 包在生成时保证）。
// Username 不保证唯一——演示数据允许碰撞，去重（如需要）由下游处理。
type UserProfile struct {
	Username             string
	FavoriteCuisine      string
	LeastFavoriteCuisine string
}
