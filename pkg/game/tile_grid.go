package game

import (
	"log"

	"github.com/gonewx/arena/pkg/config"
)

// TileCoord 格子坐标（列、行）
// 作为可破坏物记录的键，键唯一，无顺序要求
type TileCoord struct {
	Col int
	Row int
}

// BreakableRecord 单个可破坏物的受击记录
type BreakableRecord struct {
	Hits              int     // 已接受的命中次数
	DebounceRemaining float64 // 单格去抖剩余时间（秒），0 表示可接受命中
}

// TileGrid 场地格子与可破坏物追踪器
//
// 职责：
//   - 按坐标查询格子类型（地面/墙/可破坏物）
//   - AABB 与格子的相交查询（命中盒扫格）
//   - 可破坏物受击记录：单格去抖、命中上限、达到上限后同时
//     移除记录和底层格子
//
// 可破坏物记录只由本类型修改（HitBreakable / Update），
// 上层系统不直接触碰 breakables 映射
type TileGrid struct {
	rows     []string
	tiles    [][]byte // 可变副本：破坏后格子改写为地面
	tileSize float64
	cols     int

	maxHits  int
	debounce float64

	breakables map[TileCoord]*BreakableRecord
}

// NewTileGrid 根据遭遇战配置构建场地
// 为每个标记为可破坏的格子创建受击记录
func NewTileGrid(cfg *config.EncounterConfig) *TileGrid {
	tiles := make([][]byte, len(cfg.Rows))
	breakables := make(map[TileCoord]*BreakableRecord)

	for r, row := range cfg.Rows {
		tiles[r] = []byte(row)
		for c := 0; c < len(row); c++ {
			if row[c] == config.TileBreakable {
				breakables[TileCoord{Col: c, Row: r}] = &BreakableRecord{}
			}
		}
	}

	cols := 0
	if len(cfg.Rows) > 0 {
		cols = len(cfg.Rows[0])
	}

	return &TileGrid{
		rows:       cfg.Rows,
		tiles:      tiles,
		tileSize:   cfg.TileSize,
		cols:       cols,
		maxHits:    cfg.BreakableMaxHits,
		debounce:   cfg.BreakableDebounce,
		breakables: breakables,
	}
}

// TileSize 返回格子边长（像素）
func (g *TileGrid) TileSize() float64 { return g.tileSize }

// Cols 返回列数
func (g *TileGrid) Cols() int { return g.cols }

// Rows 返回行数
func (g *TileGrid) Rows() int { return len(g.tiles) }

// WorldWidth 返回场地世界宽度（像素）
func (g *TileGrid) WorldWidth() float64 { return float64(g.cols) * g.tileSize }

// WorldHeight 返回场地世界高度（像素）
func (g *TileGrid) WorldHeight() float64 { return float64(len(g.tiles)) * g.tileSize }

// TileAt 返回格子类型字符，越界按墙处理
func (g *TileGrid) TileAt(coord TileCoord) byte {
	if coord.Row < 0 || coord.Row >= len(g.tiles) || coord.Col < 0 || coord.Col >= g.cols {
		return config.TileWall
	}
	return g.tiles[coord.Row][coord.Col]
}

// IsWall 检查格子是否为墙体
func (g *TileGrid) IsWall(coord TileCoord) bool {
	return g.TileAt(coord) == config.TileWall
}

// IsBreakable 检查格子是否为（尚存的）可破坏物
func (g *TileGrid) IsBreakable(coord TileCoord) bool {
	return g.TileAt(coord) == config.TileBreakable
}

// IsBlocked 检查格子是否阻挡移动/出生（墙或可破坏物）
func (g *TileGrid) IsBlocked(coord TileCoord) bool {
	t := g.TileAt(coord)
	return t == config.TileWall || t == config.TileBreakable
}

// CoordAt 返回世界坐标所在的格子
func (g *TileGrid) CoordAt(x, y float64) TileCoord {
	return TileCoord{Col: int(x / g.tileSize), Row: int(y / g.tileSize)}
}

// TileCenter 返回格子中心的世界坐标
func (g *TileGrid) TileCenter(coord TileCoord) (float64, float64) {
	return (float64(coord.Col) + 0.5) * g.tileSize, (float64(coord.Row) + 0.5) * g.tileSize
}

// TilesInAABB 返回与矩形相交的所有格子坐标
// 每个格子最多返回一次（即便矩形在几何上多处覆盖同一格）
func (g *TileGrid) TilesInAABB(minX, minY, maxX, maxY float64) []TileCoord {
	startCol := int(minX / g.tileSize)
	endCol := int(maxX / g.tileSize)
	startRow := int(minY / g.tileSize)
	endRow := int(maxY / g.tileSize)

	result := make([]TileCoord, 0, (endCol-startCol+1)*(endRow-startRow+1))
	for r := startRow; r <= endRow; r++ {
		for c := startCol; c <= endCol; c++ {
			if r < 0 || r >= len(g.tiles) || c < 0 || c >= g.cols {
				continue
			}
			result = append(result, TileCoord{Col: c, Row: r})
		}
	}
	return result
}

// BlockedAABB 检查矩形是否与任何阻挡格子相交
// 用于移动碰撞与出生点校验
func (g *TileGrid) BlockedAABB(minX, minY, maxX, maxY float64) bool {
	for _, coord := range g.TilesInAABB(minX, minY, maxX, maxY) {
		if g.IsBlocked(coord) {
			return true
		}
	}
	// 越界也按阻挡处理
	return minX < 0 || minY < 0 || maxX >= g.WorldWidth() || maxY >= g.WorldHeight()
}

// Update 推进所有可破坏物的去抖计时
// 每帧调用一次
func (g *TileGrid) Update(dt float64) {
	for _, rec := range g.breakables {
		if rec.DebounceRemaining > 0 {
			rec.DebounceRemaining -= dt
			if rec.DebounceRemaining < 0 {
				rec.DebounceRemaining = 0
			}
		}
	}
}

// HitBreakable 对指定格子的可破坏物施加一次命中
//
// 规则（按序检查）：
//  1. 非可破坏格子：空操作
//  2. 去抖窗口内：空操作（单格独立去抖，与全局攻击冷却无关）
//  3. 接受命中：计数 +1，重置去抖
//  4. 达到命中上限：移除记录并把格子改写为地面
//
// 返回：
//
//	accepted - 本次命中是否被接受
//	destroyed - 本次命中是否导致格子被破坏
func (g *TileGrid) HitBreakable(coord TileCoord) (accepted bool, destroyed bool) {
	rec, exists := g.breakables[coord]
	if !exists {
		return false, false
	}

	if rec.DebounceRemaining > 0 {
		return false, false
	}

	rec.Hits++
	rec.DebounceRemaining = g.debounce

	if rec.Hits >= g.maxHits {
		delete(g.breakables, coord)
		g.tiles[coord.Row][coord.Col] = config.TileFloor
		log.Printf("[TileGrid] Breakable destroyed at (%d, %d)", coord.Col, coord.Row)
		return true, true
	}

	return true, false
}

// BreakableCount 返回尚存的可破坏物数量
func (g *TileGrid) BreakableCount() int {
	return len(g.breakables)
}

// BreakableHits 返回指定格子已接受的命中次数（调试与测试用）
func (g *TileGrid) BreakableHits(coord TileCoord) (int, bool) {
	rec, exists := g.breakables[coord]
	if !exists {
		return 0, false
	}
	return rec.Hits, true
}
