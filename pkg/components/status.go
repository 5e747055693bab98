package components

// StunComponent 眩晕状态
//
// 存在即眩晕：被眩晕的敌人跳过 AI tick，但仍可被命中
// Remaining 归零后由 CombatSystem 移除本组件
// 敌人死亡时组件随实体销毁，等价于取消尚未到期的解除眩晕回调
type StunComponent struct {
	Remaining float64 // 剩余眩晕时间（秒）
}

// KnockbackComponent 击退状态（玩家）
//
// 击退速度在调用时一次性写入 VelocityComponent，窗口期内不重复施加
// 窗口期内输入驱动的移动被抑制
type KnockbackComponent struct {
	Remaining float64 // 输入抑制剩余时间（秒）
}

// DyingComponent 终态：死亡淡出
//
// 实体进入 Dying 后不再参与任何交互：不再受击、不再执行 AI、
// 不再参与碰撞，仅等待淡出计时结束后被销毁
// 进入该状态的实体绝不会回到任何活跃状态
type DyingComponent struct {
	FadeRemaining float64 // 淡出剩余时间（秒）
	FadeDuration  float64 // 淡出总时长（秒），渲染透明度按比例计算
}
