package components

// HitCountComponent 存储敌人的受击计数状态
//
// 本游戏的难度模型采用"计数致死"：敌人累计被命中 Threshold 次后死亡，
// 单次伤害的数值大小不参与击杀判定（见 CombatSystem.IntakeHit）
//
// CooldownRemaining 是受击冷却：上次被接受的命中之后的固定窗口内，
// 后续命中一律拒绝（空操作），与攻击方的行为无关地限制有效受击频率
type HitCountComponent struct {
	Hits              int     // 已接受的命中次数
	Threshold         int     // 致死命中次数
	CooldownRemaining float64 // 受击冷却剩余时间（秒），0 表示可被命中
}
