package components

// SpriteComponent 存储实体的外观标识与渲染尺寸
//
// 本项目使用矢量图形渲染（RenderSystem 按 TextureID 选择配色），
// 不在工厂中加载图片资源，因此实体可以无头构造和测试
type SpriteComponent struct {
	TextureID string  // 外观标识，来自角色配置，构造时必填
	Width     float64 // 渲染宽度（像素）
	Height    float64 // 渲染高度（像素）
}
