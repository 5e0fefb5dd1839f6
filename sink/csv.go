// Package sink 提供数据集的外部持久化出口：CSV 文件与 KV 存储。
// 合成核心不做任何 I/O，产出的 Dataset 整体交给本包落地。
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rushteam/synthkit/core"
)

// CSVSink 把数据集写成两个 CSV 文件：用户表与评价表。
// 列名与下游训练脚本约定一致。
type CSVSink struct {
	UsersPath   string
	ReviewsPath string
}

// Write 写出整个数据集。任一文件失败则整体失败。
func (s *CSVSink) Write(ds *core.Dataset) error {
	if err := writeFile(s.UsersPath, func(w io.Writer) error {
		return WriteUsers(w, ds.Users)
	}); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	if err := writeFile(s.ReviewsPath, func(w io.Writer) error {
		return WriteReviews(w, ds.Reviews)
	}); err != nil {
		return fmt.Errorf("write reviews: %w", err)
	}
	return nil
}

// WriteUsers 把用户表写入任意 Writer（便于测试与组合）。
func WriteUsers(w io.Writer, users []core.UserProfile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"username", "favorite_cuisine", "least_favorite_cuisine"}); err != nil {
		return err
	}
	for _, u := range users {
		if err := cw.Write([]string{u.Username, u.FavoriteCuisine, u.LeastFavoriteCuisine}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReviews 把评价表写入任意 Writer。
func WriteReviews(w io.Writer, reviews []core.Review) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"username", "recipe_id", "rating"}); err != nil {
		return err
	}
	for _, r := range reviews {
		if err := cw.Write([]string{r.Username, r.RecipeID, strconv.FormatFloat(r.Rating, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
