package components

// LifetimeComponent 存储实体的生存时长上限
// 用于一次性效果实体（挥剑轨迹、死亡烟尘、碎裂尘土等）
// 到期后由 LifetimeSystem 标记实体待删除
type LifetimeComponent struct {
	CurrentLifetime float64 // 当前已存活时间（秒）
	MaxLifetime     float64 // 最大生存时间（秒）
	IsExpired       bool    // 是否已过期
}
