package components

// FlashEffectComponent 闪烁效果组件
// 用于实体受击时的短暂闪白反馈
//
// 计时是契约的一部分：闪烁是非阻塞的一次性效果，
// 到期由 FlashEffectSystem 移除组件，不影响任何游戏逻辑
type FlashEffectComponent struct {
	// Duration 闪烁持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// Intensity 闪烁强度（0.0 - 1.0）
	// 1.0 = 完全白色，0.0 = 无效果
	Intensity float64

	// IsActive 是否激活（用于临时禁用效果）
	IsActive bool
}
