// Package synthkit 是一个推荐演示数据合成工具包（Synthetic-data Kit）。
//
// 给定菜谱目录（按菜系打标）与预计算的菜系相似度表，为一批合成用户
// 生成口味偏好画像与评价数据，供推荐系统演示/训练使用。
//
// 设计要点：
// - Policy-first: 采样比例与评分规则都是可替换策略（内置默认 + CEL 表达式）
// - 确定性: 所有随机性来自注入的种子，固定种子可逐字节复现数据集
// - 纯核心: 合成循环内没有 I/O，目录与相似度表是不可变共享状态，
//   落地（CSV / KV 存储）由 sink 层完成
//
// 注意：synthkit 不是推荐引擎，它只生产推荐引擎的演示/训练数据。
package synthkit

import (
	"github.com/rushteam/synthkit/core"
	"github.com/rushteam/synthkit/synth"
)

// 轻量 facade：便于用户直接 import "synthkit" 使用核心抽象。
type Synthesizer = synth.Synthesizer
type Dataset = core.Dataset
type Recipe = core.Recipe
type UserProfile = core.UserProfile
type Review = core.Review

var New = synth.New
