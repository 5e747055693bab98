package components

// PositionComponent 存储实体的世界坐标位置
// 坐标为实体中心点
type PositionComponent struct {
	X float64
	Y float64
}
