package components

// CollisionComponent 存储实体的碰撞盒尺寸
// 碰撞盒中心对齐实体位置（AABB）
type CollisionComponent struct {
	Width  float64
	Height float64
}
