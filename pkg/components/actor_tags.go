package components

import "github.com/gonewx/arena/pkg/ecs"

// PlayerComponent 标识玩家实体并存储其移动参数
type PlayerComponent struct {
	Speed       float64 // 移动速度（像素/秒）
	Drag        float64 // 无输入时的速度衰减系数（每秒保留比例的指数底数）
	StopEpsilon float64 // 低于该速度时吸附到零并切换待机动画（像素/秒）
}

// EnemyComponent 标识敌人实体并存储其追击参数
type EnemyComponent struct {
	Target      ecs.EntityID // 追击目标（通常为玩家），0 表示无目标
	Speed       float64      // 移动速度（像素/秒）
	Drag        float64      // 无意图时的速度衰减系数（每秒保留比例的指数底数）
	StopEpsilon float64      // 低于该速度时吸附到零并切换待机动画（像素/秒）

	// DeadZone 水平死区（像素）
	// |Δx| 小于该值时不施加水平意图，避免与目标几乎对齐时抖动
	// 垂直方向无死区：|Δy| > 0 即施加垂直意图
	DeadZone float64
}
