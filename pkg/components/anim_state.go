package components

// AnimState 动画状态枚举
// 由逻辑系统写入、渲染层消费，用于选择播放哪个精灵动画
type AnimState int

const (
	// AnimIdle 待机
	AnimIdle AnimState = iota
	// AnimRun 移动
	AnimRun
	// AnimDying 死亡（终态，播放完成后实体被移除）
	AnimDying
)

// AnimStateComponent 存储实体当前的动画状态
type AnimStateComponent struct {
	State AnimState
}
