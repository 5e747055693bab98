package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ProgressData 持久化的玩家进度
type ProgressData struct {
	BestWave  int `yaml:"bestWave"`  // 历史最高到达波次
	Victories int `yaml:"victories"` // 累计胜利场数
	Sessions  int `yaml:"sessions"`  // 累计完成的遭遇战场数
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "global"
)

// ProgressStore 进度存储
//
// 职责：
//   - 加载和保存玩家进度（最高波次、胜利次数）
//   - gdata 跨平台存储，YAML 序列化
//
// 架构说明：
//   - 战斗核心自身不产生任何持久化表面，进度记录发生在
//     会话边界（场景结束时由 GameState 调用）
//   - gdataManager 可为 nil（降级模式，仅内存，不报错）
type ProgressStore struct {
	gdataManager *gdata.Manager
	data         *ProgressData
}

// NewProgressStore 创建进度存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *ProgressStore: 进度存储实例（加载失败时仍返回可用实例）
func NewProgressStore(gdataManager *gdata.Manager) *ProgressStore {
	ps := &ProgressStore{
		gdataManager: gdataManager,
		data:         &ProgressData{},
	}

	if err := ps.Load(); err != nil {
		// 加载失败不是致命错误，使用零值进度
		log.Printf("[ProgressStore] Warning: Failed to load progress: %v (starting fresh)", err)
	}

	return ps
}

// Load 从 gdata 加载进度
// 如果 gdataManager 为 nil 或记录不存在，使用零值进度
func (ps *ProgressStore) Load() error {
	if ps.gdataManager == nil {
		ps.data = &ProgressData{}
		return nil
	}

	if !ps.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		ps.data = &ProgressData{}
		return nil
	}

	data, err := ps.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		ps.data = &ProgressData{}
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var loaded ProgressData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		ps.data = &ProgressData{}
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	ps.data = &loaded
	log.Printf("[ProgressStore] Progress loaded: bestWave=%d, victories=%d", loaded.BestWave, loaded.Victories)
	return nil
}

// Save 保存进度到 gdata
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (ps *ProgressStore) Save() error {
	if ps.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(ps.data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := ps.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	return nil
}

// RecordWave 记录一场结束的遭遇战
// 更新最高波次和胜利计数并立即保存
func (ps *ProgressStore) RecordWave(waveReached int, victory bool) {
	ps.data.Sessions++
	if waveReached > ps.data.BestWave {
		ps.data.BestWave = waveReached
	}
	if victory {
		ps.data.Victories++
	}

	if err := ps.Save(); err != nil {
		log.Printf("[ProgressStore] Warning: Failed to save progress: %v", err)
	}
}

// BestWave 返回历史最高到达波次
func (ps *ProgressStore) BestWave() int {
	return ps.data.BestWave
}

// Victories 返回累计胜利场数
func (ps *ProgressStore) Victories() int {
	return ps.data.Victories
}
