package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rushteam/synthkit/core"
)

// StoreSink 把数据集发布到 KV 存储，供推荐演示服务直接读取。
//
// 键布局（prefix 默认 "synthkit:"）：
//   - {prefix}users                 用户名 JSON 数组
//   - {prefix}user:{username}       用户画像 Hash（favorite_cuisine / least_favorite_cuisine）
//   - {prefix}reviews:{username}    该用户评价的有序集合（member=菜谱 ID，score=分数）
//
// 用户名允许碰撞（演示数据契约），碰撞时同名键会合并；
// 需要严格区分时由上游保证用户名唯一。
type StoreSink struct {
	Store  core.KeyValueStore
	Prefix string
}

const defaultPrefix = "synthkit:"

// Publish 发布整个数据集。任何一步失败则返回错误（存储里可能留下部分数据，
// 重跑 Publish 是幂等的覆盖写）。
func (s *StoreSink) Publish(ctx context.Context, ds *core.Dataset) error {
	prefix := s.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	usernames := make([]string, 0, len(ds.Users))
	for _, u := range ds.Users {
		usernames = append(usernames, u.Username)
		key := prefix + "user:" + u.Username
		if err := s.Store.HSet(ctx, key, "favorite_cuisine", []byte(u.FavoriteCuisine)); err != nil {
			return fmt.Errorf("publish user %s: %w", u.Username, err)
		}
		if err := s.Store.HSet(ctx, key, "least_favorite_cuisine", []byte(u.LeastFavoriteCuisine)); err != nil {
			return fmt.Errorf("publish user %s: %w", u.Username, err)
		}
	}

	data, err := json.Marshal(usernames)
	if err != nil {
		return fmt.Errorf("marshal usernames: %w", err)
	}
	if err := s.Store.Set(ctx, prefix+"users", data); err != nil {
		return fmt.Errorf("publish usernames: %w", err)
	}

	for _, r := range ds.Reviews {
		if err := s.Store.ZAdd(ctx, prefix+"reviews:"+r.Username, r.Rating, r.RecipeID); err != nil {
			return fmt.Errorf("publish review %s/%s: %w", r.Username, r.RecipeID, err)
		}
	}
	return nil
}
