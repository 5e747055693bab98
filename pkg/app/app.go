// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、打开进度存档、
// 组装场景，并实现 ebiten.Game 接口驱动固定步长的游戏循环。
package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 出生点采样的随机种子，0 表示取当前时间
	Seed int64
	// DataDir 配置文件目录，默认 "data"
	DataDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
	screenWidth  int
	screenHeight int
}

// NewApp 创建并初始化游戏应用
//
// 配置文件缺失时回退到内置默认值；存在但非法时立即失败。
// 进度存档打开失败只降级为不持久化，不阻止游戏启动。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	actorsCfg, err := loadActors(filepath.Join(cfg.DataDir, "actors.yaml"))
	if err != nil {
		return nil, err
	}
	combatCfg, err := loadCombat(filepath.Join(cfg.DataDir, "combat.yaml"))
	if err != nil {
		return nil, err
	}
	encounterCfg, err := loadEncounter(filepath.Join(cfg.DataDir, "encounter.yaml"))
	if err != nil {
		return nil, err
	}

	initProgressStore()

	sceneManager := game.NewSceneManager()
	battleScene, err := scenes.NewBattleScene(actorsCfg, combatCfg, encounterCfg, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize battle scene: %w", err)
	}
	sceneManager.SetScene(battleScene)

	grid := game.NewTileGrid(encounterCfg)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
		screenWidth:  int(grid.WorldWidth()),
		screenHeight: int(grid.WorldHeight()),
	}, nil
}

// initProgressStore 打开进度存档并注入全局状态
// 打开失败时注入降级存储（不持久化），游戏照常运行
func initProgressStore() {
	manager, err := gdata.Open(gdata.Config{AppName: "gonewx-arena"})
	if err != nil {
		log.Printf("[App] Progress storage unavailable: %v", err)
		manager = nil
	}

	store := game.NewProgressStore(manager)
	game.GetGameState().SetProgressStore(store)
}

// loadActors 加载角色配置，文件缺失时使用内置默认值
func loadActors(path string) (*config.ActorsConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[App] %s not found, using default actors config", path)
		return config.DefaultActorsConfig(), nil
	}
	cfg, err := config.LoadActorsConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load actors config: %w", err)
	}
	return cfg, nil
}

// loadCombat 加载战斗配置，文件缺失时使用内置默认值
func loadCombat(path string) (*config.CombatConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[App] %s not found, using default combat config", path)
		return config.DefaultCombatConfig(), nil
	}
	cfg, err := config.LoadCombatConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load combat config: %w", err)
	}
	return cfg, nil
}

// loadEncounter 加载遭遇战配置，文件缺失时使用内置默认值
func loadEncounter(path string) (*config.EncounterConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[App] %s not found, using default encounter config", path)
		return config.DefaultEncounterConfig(), nil
	}
	cfg, err := config.LoadEncounterConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load encounter config: %w", err)
	}
	return cfg, nil
}

// Update 更新游戏逻辑
// 固定步长：每个 tick 推进 1/60 秒，与渲染帧率解耦
func (a *App) Update() error {
	a.sceneManager.Update(1.0 / 60.0)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸（即场地的像素尺寸）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// ScreenSize 返回逻辑屏幕尺寸，用于设置初始窗口大小
func (a *App) ScreenSize() (int, int) {
	return a.screenWidth, a.screenHeight
}

// SaveProgress 在退出前保存进度存档
func (a *App) SaveProgress() {
	if store := game.GetGameState().GetProgressStore(); store != nil {
		if err := store.Save(); err != nil {
			log.Printf("[App] Failed to save progress: %v", err)
		}
	}
}
