package game

import (
	"testing"

	"github.com/gonewx/arena/pkg/config"
)

// testGrid 构建一个 5x5 的测试场地，中心 (2,2) 为可破坏物
func testGrid(t *testing.T) *TileGrid {
	t.Helper()
	cfg := &config.EncounterConfig{
		BreakableMaxHits:  2,
		BreakableDebounce: 0.5,
		TileSize:          32,
		Rows: []string{
			"#####",
			"#...#",
			"#.B.#",
			"#...#",
			"#####",
		},
	}
	return NewTileGrid(cfg)
}

// TestTileGrid_Lookup 测试格子类型查询与越界处理
func TestTileGrid_Lookup(t *testing.T) {
	g := testGrid(t)

	if !g.IsWall(TileCoord{Col: 0, Row: 0}) {
		t.Error("Expected (0,0) to be a wall")
	}
	if !g.IsBreakable(TileCoord{Col: 2, Row: 2}) {
		t.Error("Expected (2,2) to be breakable")
	}
	if g.IsBlocked(TileCoord{Col: 1, Row: 1}) {
		t.Error("Expected (1,1) to be open floor")
	}

	// 越界按墙处理
	if !g.IsWall(TileCoord{Col: -1, Row: 0}) {
		t.Error("Expected out-of-bounds tile to count as wall")
	}
	if !g.IsWall(TileCoord{Col: 0, Row: 99}) {
		t.Error("Expected out-of-bounds tile to count as wall")
	}
}

// TestTileGrid_BreakableDestroyedAfterMaxHits 测试两次命中后移除记录和格子
func TestTileGrid_BreakableDestroyedAfterMaxHits(t *testing.T) {
	g := testGrid(t)
	coord := TileCoord{Col: 2, Row: 2}

	// 第一次命中：接受，未破坏
	accepted, destroyed := g.HitBreakable(coord)
	if !accepted || destroyed {
		t.Errorf("First hit: expected (accepted, not destroyed), got (%v, %v)", accepted, destroyed)
	}
	if hits, _ := g.BreakableHits(coord); hits != 1 {
		t.Errorf("Expected 1 hit recorded, got %d", hits)
	}

	// 去抖窗口过期后第二次命中：接受且破坏
	g.Update(0.6)
	accepted, destroyed = g.HitBreakable(coord)
	if !accepted || !destroyed {
		t.Errorf("Second hit: expected (accepted, destroyed), got (%v, %v)", accepted, destroyed)
	}

	// 记录和格子都被移除
	if g.BreakableCount() != 0 {
		t.Errorf("Expected 0 breakables remaining, got %d", g.BreakableCount())
	}
	if g.IsBreakable(coord) {
		t.Error("Expected tile to be removed from the grid")
	}
	if g.IsBlocked(coord) {
		t.Error("Destroyed breakable should no longer block movement")
	}
}

// TestTileGrid_DebounceRejectsRapidHits 测试去抖窗口内的命中被拒绝
// 200ms 后的第二次命中只算一次接受的命中
func TestTileGrid_DebounceRejectsRapidHits(t *testing.T) {
	g := testGrid(t)
	coord := TileCoord{Col: 2, Row: 2}

	if accepted, _ := g.HitBreakable(coord); !accepted {
		t.Fatal("First hit should be accepted")
	}

	// 200ms 后：仍在 500ms 去抖窗口内，拒绝
	g.Update(0.2)
	if accepted, _ := g.HitBreakable(coord); accepted {
		t.Error("Hit at +200ms should be rejected by debounce")
	}
	if hits, _ := g.BreakableHits(coord); hits != 1 {
		t.Errorf("Expected 1 accepted hit, got %d", hits)
	}

	// 再过 400ms（累计 600ms）：窗口过期，接受
	g.Update(0.4)
	if accepted, _ := g.HitBreakable(coord); !accepted {
		t.Error("Hit after debounce window should be accepted")
	}
}

// TestTileGrid_HitNonBreakable 测试对普通格子的命中是空操作
func TestTileGrid_HitNonBreakable(t *testing.T) {
	g := testGrid(t)

	if accepted, destroyed := g.HitBreakable(TileCoord{Col: 1, Row: 1}); accepted || destroyed {
		t.Error("Hitting a floor tile should be a no-op")
	}
	if accepted, destroyed := g.HitBreakable(TileCoord{Col: 0, Row: 0}); accepted || destroyed {
		t.Error("Hitting a wall tile should be a no-op")
	}
}

// TestTileGrid_TilesInAABB 测试矩形扫格查询不重复
func TestTileGrid_TilesInAABB(t *testing.T) {
	g := testGrid(t)

	// 覆盖 (1,1) 到 (2,2) 四个格子的矩形
	tiles := g.TilesInAABB(40, 40, 70, 70)
	if len(tiles) != 4 {
		t.Fatalf("Expected 4 tiles, got %d", len(tiles))
	}

	seen := make(map[TileCoord]bool)
	for _, c := range tiles {
		if seen[c] {
			t.Errorf("Tile (%d, %d) returned more than once", c.Col, c.Row)
		}
		seen[c] = true
	}
}

// TestTileGrid_BlockedAABB 测试矩形阻挡检查
func TestTileGrid_BlockedAABB(t *testing.T) {
	g := testGrid(t)

	// 完全在 (1,1) 地面格内
	if g.BlockedAABB(36, 36, 60, 60) {
		t.Error("AABB inside open floor should not be blocked")
	}

	// 与中心可破坏物相交
	if !g.BlockedAABB(70, 70, 90, 90) {
		t.Error("AABB overlapping a breakable should be blocked")
	}

	// 与边界墙相交
	if !g.BlockedAABB(-5, 40, 10, 60) {
		t.Error("AABB overlapping the boundary wall should be blocked")
	}
}
