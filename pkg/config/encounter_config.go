package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// 场地行字符含义
const (
	// TileFloor 普通地面
	TileFloor = '.'
	// TileWall 墙体（碰撞，阻挡移动和出生点）
	TileWall = '#'
	// TileBreakable 可破坏物（两次命中后移除）
	TileBreakable = 'B'
)

// EncounterConfig 遭遇战配置（data/encounter.yaml）
// 定义波次推进规则、出生点搜索参数、可破坏物规则和场地布局
type EncounterConfig struct {
	MaxWaves          int     `yaml:"maxWaves"`          // 总波数，默认 5；第 N 波生成 N 个敌人
	InterWaveDelay    float64 `yaml:"interWaveDelay"`    // 清空后到下一波的间隔（秒），默认 1.0
	SpawnAttempts     int     `yaml:"spawnAttempts"`     // 出生点拒绝采样最大尝试次数，默认 50
	MinPlayerDistance float64 `yaml:"minPlayerDistance"` // 出生点距玩家的最小距离（像素），默认 100
	FallbackRadius    float64 `yaml:"fallbackRadius"`    // 采样失败后的确定性落点半径（像素），默认 150

	BreakableMaxHits  int     `yaml:"breakableMaxHits"`  // 可破坏物命中上限，默认 2
	BreakableDebounce float64 `yaml:"breakableDebounce"` // 可破坏物单格受击去抖窗口（秒），默认 0.5

	TileSize float64  `yaml:"tileSize"` // 格子边长（像素），默认 32
	Rows     []string `yaml:"rows"`     // 场地布局：每行一个字符串，'.' 地面 '#' 墙 'B' 可破坏物
}

// DefaultEncounterConfig 返回内置默认遭遇战配置
// 场地为四周墙体包围的 20x12 房间，内侧放置若干可破坏物
func DefaultEncounterConfig() *EncounterConfig {
	rows := []string{
		"####################",
		"#..................#",
		"#..B............B..#",
		"#..................#",
		"#........##........#",
		"#..................#",
		"#..................#",
		"#........##........#",
		"#..................#",
		"#..B............B..#",
		"#..................#",
		"####################",
	}
	return &EncounterConfig{
		MaxWaves:          5,
		InterWaveDelay:    1.0,
		SpawnAttempts:     50,
		MinPlayerDistance: 100,
		FallbackRadius:    150,
		BreakableMaxHits:  2,
		BreakableDebounce: 0.5,
		TileSize:          32,
		Rows:              rows,
	}
}

// LoadEncounterConfig 从YAML文件加载遭遇战配置
func LoadEncounterConfig(filepath string) (*EncounterConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read encounter config file %s: %w", filepath, err)
	}

	var cfg EncounterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse encounter config YAML from %s: %w", filepath, err)
	}

	applyEncounterDefaults(&cfg)

	if err := validateEncounterConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid encounter config in %s: %w", filepath, err)
	}

	return &cfg, nil
}

// applyEncounterDefaults 为缺失字段设置默认值
func applyEncounterDefaults(cfg *EncounterConfig) {
	def := DefaultEncounterConfig()

	if cfg.MaxWaves <= 0 {
		cfg.MaxWaves = def.MaxWaves
	}
	if cfg.InterWaveDelay <= 0 {
		cfg.InterWaveDelay = def.InterWaveDelay
	}
	if cfg.SpawnAttempts <= 0 {
		cfg.SpawnAttempts = def.SpawnAttempts
	}
	if cfg.MinPlayerDistance <= 0 {
		cfg.MinPlayerDistance = def.MinPlayerDistance
	}
	if cfg.FallbackRadius <= 0 {
		cfg.FallbackRadius = def.FallbackRadius
	}
	if cfg.BreakableMaxHits <= 0 {
		cfg.BreakableMaxHits = def.BreakableMaxHits
	}
	if cfg.BreakableDebounce <= 0 {
		cfg.BreakableDebounce = def.BreakableDebounce
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = def.TileSize
	}
	if len(cfg.Rows) == 0 {
		cfg.Rows = def.Rows
	}
}

// validateEncounterConfig 校验场地布局
//
// 规则：
//   - 所有行长度一致且非空
//   - 只允许 '.'、'#'、'B' 三种字符
func validateEncounterConfig(cfg *EncounterConfig) error {
	if len(cfg.Rows) == 0 {
		return fmt.Errorf("arena rows are required")
	}

	width := len(cfg.Rows[0])
	if width == 0 {
		return fmt.Errorf("arena rows must not be empty")
	}

	for i, row := range cfg.Rows {
		if len(row) != width {
			return fmt.Errorf("arena row %d length %d != %d (all rows must match)", i, len(row), width)
		}
		if j := strings.IndexFunc(row, func(r rune) bool {
			return r != TileFloor && r != TileWall && r != TileBreakable
		}); j >= 0 {
			return fmt.Errorf("arena row %d has invalid tile char %q at column %d", i, row[j], j)
		}
	}

	return nil
}
