package components

// VelocityComponent 存储实体的当前速度（像素/秒）
//
// 速度由 MovementSystem 写入：
//   - 有移动意图时直接设置为意图方向 × 移动速度
//   - 无意图时按阻尼系数衰减，低于停止阈值后吸附到零
//   - 击退时由 CombatSystem 一次性覆盖
type VelocityComponent struct {
	VX float64
	VY float64
}
