package components

import "math"

// HorizontalFacing 水平朝向（用于精灵翻转）
type HorizontalFacing int

const (
	// FacingRight 面向右侧（默认）
	FacingRight HorizontalFacing = iota
	// FacingLeft 面向左侧
	FacingLeft
)

// FacingComponent 存储实体的水平朝向
//
// 朝向只在有水平移动意图时更新，与实体是否正在移动无关
// 因此阻尼滑行期间保持最后一次输入确定的朝向
type FacingComponent struct {
	Horizontal HorizontalFacing
}

// CardinalDirection 四方向枚举（上下左右）
type CardinalDirection int

const (
	// DirectionRight 向右
	DirectionRight CardinalDirection = iota
	// DirectionLeft 向左
	DirectionLeft
	// DirectionUp 向上
	DirectionUp
	// DirectionDown 向下
	DirectionDown
)

// AttackDirectionComponent 存储玩家的攻击方向
//
// 攻击方向是"最后按下的主导方向键"，独立于左右精灵翻转：
// 玩家可以一边向左滑行一边向上挥剑
// 由 InputSystem 根据主导轴更新（水平意图优先于垂直意图）
type AttackDirectionComponent struct {
	Direction CardinalDirection
}

// UnitVector 返回方向对应的单位向量
func (d CardinalDirection) UnitVector() (float64, float64) {
	switch d {
	case DirectionLeft:
		return -1, 0
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	default:
		return 1, 0
	}
}

// BaseAngle 返回方向对应的基准角度（弧度，屏幕坐标系，Y轴向下为正）
// 用于渲染挥剑扇形的中心角
func (d CardinalDirection) BaseAngle() float64 {
	switch d {
	case DirectionLeft:
		return math.Pi
	case DirectionUp:
		return -math.Pi / 2
	case DirectionDown:
		return math.Pi / 2
	default:
		return 0
	}
}
