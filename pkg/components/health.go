package components

// HealthComponent 存储玩家的生命值与受击保护状态
//
// 伤害路径约定（CombatSystem 实现）：
//   - 受击后生命值被钳制在 [0, Max]
//   - 生命值归零触发死亡流程，且不再设置无敌窗口
//   - 否则开启固定时长的无敌窗口，窗口内后续伤害为空操作
type HealthComponent struct {
	Current int // 当前生命值
	Max     int // 最大生命值（场景开始时确定）

	// Invincible 无敌标志，窗口内 damage 调用为空操作
	Invincible bool
	// InvincibleRemaining 无敌窗口剩余时间（秒）
	InvincibleRemaining float64

	// BlinkAccumulator 无敌闪烁的计时累加器（秒）
	// 仅用于渲染反馈，与无敌计时互相独立
	BlinkAccumulator float64

	// CriticalPulse 濒死脉冲提示
	// 生命值恰好为 1 时激活，离开 1（任一方向）时清除
	CriticalPulse bool
}
