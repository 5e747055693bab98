package components

// EffectKind 一次性视觉效果类型
type EffectKind int

const (
	// EffectSlash 挥剑扇形轨迹（跟随攻击方向的基准角）
	EffectSlash EffectKind = iota
	// EffectDeathPuff 敌人死亡烟尘
	EffectDeathPuff
	// EffectContactSpark 敌人接触玩家时的火花
	EffectContactSpark
	// EffectBreakDust 可破坏物碎裂尘土
	EffectBreakDust
)

// EffectComponent 一次性视觉效果
//
// 效果实体 = EffectComponent + PositionComponent + LifetimeComponent
// 由工厂函数生成，fire-and-forget：逻辑层触发后不再引用，
// 渲染层按 Kind 绘制，LifetimeSystem 到期销毁
type EffectComponent struct {
	Kind  EffectKind
	Angle float64 // 方向性效果的基准角（弧度），无方向的效果为 0
}
