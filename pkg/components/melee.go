package components

// AttackState 玩家近战攻击状态机
type AttackState int

const (
	// AttackIdle 非攻击状态
	AttackIdle AttackState = iota
	// AttackActive 攻击进行中：命中盒启用，挥剑扇形播放
	AttackActive
)

// MeleeAttackComponent 玩家近战攻击状态
//
// 攻击生命周期：Idle → Active → Idle
//   - 触发必须是按键边沿（fresh press），按住不重复触发
//   - Active 期间命中盒启用，位置每帧由玩家位置 + 攻击方向 ×
//     (WeaponOffset × OffsetScale) 推导
//   - Remaining 归零后命中盒禁用，回到 Idle
//
// TriggerRequested 由 InputSystem 在按键边沿置位，
// CombatSystem 消费后清零，避免输入层直接驱动状态机
type MeleeAttackComponent struct {
	State     AttackState
	Remaining float64 // 当前攻击剩余时间（秒）

	TriggerRequested bool // 本帧是否请求发起攻击（边沿触发）

	Duration     float64 // 单次攻击总时长（秒）
	WeaponOffset float64 // 武器视觉偏移（像素）
	OffsetScale  float64 // 命中盒偏移相对视觉偏移的倍数
	HitboxWidth  float64 // 命中盒宽（像素）
	HitboxHeight float64 // 命中盒高（像素）
	SwingArcDeg  float64 // 挥剑扫过的半弧度数（度），绕基准角 ±SwingArcDeg
}

// HitboxOffset 返回命中盒中心相对玩家中心的偏移距离
func (m *MeleeAttackComponent) HitboxOffset() float64 {
	return m.WeaponOffset * m.OffsetScale
}
