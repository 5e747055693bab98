// Package scenes 实现具体的游戏场景
package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// BattleScene 遭遇战场景
// 持有本局的全部状态（实体管理器、场地、波次进度）并驱动系统管线
//
// 系统更新顺序是语义的一部分：
// 输入 → 敌人 AI → 移动 → 战斗结算 → 可破坏物 → 波次 → 效果计时，
// 帧末统一清理被标记删除的实体，保证一帧之内所有系统
// 看到一致的实体快照
type BattleScene struct {
	actorsCfg    *config.ActorsConfig
	combatCfg    *config.CombatConfig
	encounterCfg *config.EncounterConfig
	seed         int64

	em    *ecs.EntityManager
	state *game.EncounterState

	inputSystem     *systems.InputSystem
	enemyAISystem   *systems.EnemyAISystem
	movementSystem  *systems.MovementSystem
	combatSystem    *systems.CombatSystem
	breakableSystem *systems.BreakableSystem
	waveSystem      *systems.WaveSystem
	flashSystem     *systems.FlashEffectSystem
	lifetimeSystem  *systems.LifetimeSystem
	renderSystem    *systems.RenderSystem

	resultRecorded bool
}

// NewBattleScene 创建并初始化遭遇战场景
//
// 参数:
//   - actorsCfg, combatCfg, encounterCfg: 已校验的配置
//   - seed: 出生点采样的随机种子
//
// 返回:
//   - *BattleScene: 初始化完成的场景，第一波已开启
//   - error: 玩家实体构造失败等初始化错误
func NewBattleScene(actorsCfg *config.ActorsConfig, combatCfg *config.CombatConfig, encounterCfg *config.EncounterConfig, seed int64) (*BattleScene, error) {
	s := &BattleScene{
		actorsCfg:    actorsCfg,
		combatCfg:    combatCfg,
		encounterCfg: encounterCfg,
		seed:         seed,
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset 重建本局状态：新实体管理器、新场地、第一波
func (s *BattleScene) reset() error {
	em := ecs.NewEntityManager()
	grid := game.NewTileGrid(s.encounterCfg)
	state := game.NewEncounterState(em, grid, s.encounterCfg.MaxWaves, s.seed)

	player, err := entities.NewPlayerEntity(em, &s.actorsCfg.Player, s.combatCfg,
		grid.WorldWidth()/2, grid.WorldHeight()/2)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	state.PlayerID = player

	s.em = em
	s.state = state
	s.resultRecorded = false

	s.inputSystem = systems.NewInputSystem(em, state)
	s.enemyAISystem = systems.NewEnemyAISystem(em)
	s.movementSystem = systems.NewMovementSystem(em, grid)
	s.combatSystem = systems.NewCombatSystem(em, state, s.combatCfg, s.actorsCfg)
	s.breakableSystem = systems.NewBreakableSystem(em, state)
	s.waveSystem = systems.NewWaveSystem(em, state, s.encounterCfg, &s.actorsCfg.Enemy)
	s.flashSystem = systems.NewFlashEffectSystem(em)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.renderSystem = systems.NewRenderSystem(em, state)

	s.waveSystem.StartNextWave()

	log.Printf("[BattleScene] Encounter started: %d waves, seed %d", state.MaxWaves, s.seed)
	return nil
}

// Update 推进一帧
func (s *BattleScene) Update(deltaTime float64) {
	if s.state.Over() {
		s.recordResult()
		// R 键重开一局
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			s.seed++
			if err := s.reset(); err != nil {
				log.Printf("[BattleScene] Restart failed: %v", err)
			}
			return
		}
	}

	s.inputSystem.Update(deltaTime)
	s.enemyAISystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.combatSystem.Update(deltaTime)
	s.breakableSystem.Update(deltaTime)
	s.waveSystem.Update(deltaTime)
	s.flashSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)

	s.em.RemoveMarkedEntities()
}

// Draw 绘制当前帧
func (s *BattleScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// recordResult 结算后写入一次进度存档
func (s *BattleScene) recordResult() {
	if s.resultRecorded {
		return
	}
	s.resultRecorded = true

	waveReached := s.state.Wave
	if waveReached > s.state.MaxWaves {
		waveReached = s.state.MaxWaves
	}

	result := game.ResultDefeat
	if s.state.Won {
		result = game.ResultVictory
	}
	game.GetGameState().RecordEncounterResult(result, waveReached)
}

// State 返回当前遭遇战状态（测试用）
func (s *BattleScene) State() *game.EncounterState {
	return s.state
}

// PlayerHealth 返回玩家当前生命值，玩家缺失时返回 0
func (s *BattleScene) PlayerHealth() int {
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, s.state.PlayerID); ok {
		return health.Current
	}
	return 0
}
