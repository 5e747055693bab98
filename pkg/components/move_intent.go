package components

// MoveIntentComponent 存储实体本帧的移动意图
//
// DX/DY 为单位方向分量（-1/0/+1），未归一化
// 对角线归一化（两轴各乘 1/√2）由 MovementSystem 统一处理
// Moving 表示本帧是否有任何方向输入
type MoveIntentComponent struct {
	DX     float64
	DY     float64
	Moving bool
}
