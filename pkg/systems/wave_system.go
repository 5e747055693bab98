package systems

import (
	"log"
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// WaveSystem 波次系统
// 负责波次推进、敌人生成位置采样和存活集合的清理
//
// 存活集合的唯一写入者：CombatSystem 只把死亡敌人标记为 Dying，
// 本系统每帧扫描并注销已死亡或已销毁的敌人，
// 保证波次判定读到的集合与实体状态一致
//
// 波次节奏：第 N 波生成 N 个敌人；一波清空后等待固定间隔再开下一波；
// 最后一波清空后判定胜利
type WaveSystem struct {
	entityManager *ecs.EntityManager
	state         *game.EncounterState
	encounterCfg  *config.EncounterConfig
	enemyCfg      *config.EnemyConfig
}

// NewWaveSystem 创建波次系统
func NewWaveSystem(em *ecs.EntityManager, state *game.EncounterState, encounterCfg *config.EncounterConfig, enemyCfg *config.EnemyConfig) *WaveSystem {
	return &WaveSystem{
		entityManager: em,
		state:         state,
		encounterCfg:  encounterCfg,
		enemyCfg:      enemyCfg,
	}
}

// Update 推进波次状态
// 参数：
//   - dt: 时间增量（秒）
func (s *WaveSystem) Update(dt float64) {
	s.pruneAliveSet()

	if s.state.Over() {
		return
	}

	if s.state.WaveDelayPending {
		s.state.WaveDelayRemaining -= dt
		if s.state.WaveDelayRemaining <= 0 {
			s.state.WaveDelayPending = false
			s.StartNextWave()
		}
		return
	}

	// 当前波已清空，进入下一波前的间隔
	if s.state.Wave >= 1 && s.state.AliveCount() == 0 {
		s.state.WaveDelayPending = true
		s.state.WaveDelayRemaining = s.encounterCfg.InterWaveDelay
	}
}

// pruneAliveSet 注销已死亡或已销毁的敌人
// 死亡标记（Dying）与实体销毁都由其它系统产生，
// 这里是存活集合唯一的出口
func (s *WaveSystem) pruneAliveSet() {
	for _, id := range s.state.AliveEnemies() {
		if !s.entityManager.IsAlive(id) ||
			ecs.HasComponent[*components.DyingComponent](s.entityManager, id) {
			s.state.DeregisterEnemy(id)
		}
	}
}

// StartNextWave 开启下一波
// 第 N 波生成 N 个敌人；超过最大波数则判定胜利，不再生成
func (s *WaveSystem) StartNextWave() {
	if s.state.Over() {
		return
	}

	s.state.Wave++
	if s.state.Wave > s.state.MaxWaves {
		s.state.Won = true
		log.Printf("[WaveSystem] All %d waves cleared, encounter won", s.state.MaxWaves)
		return
	}

	count := s.state.Wave
	log.Printf("[WaveSystem] Starting wave %d/%d with %d enemies", s.state.Wave, s.state.MaxWaves, count)

	for i := 0; i < count; i++ {
		x, y := s.sampleSpawnPosition()
		id, err := entities.NewEnemyEntity(s.entityManager, s.enemyCfg, s.state.PlayerID, x, y)
		if err != nil {
			log.Printf("[WaveSystem] Failed to spawn enemy: %v", err)
			continue
		}
		s.state.RegisterEnemy(id)
	}
}

// sampleSpawnPosition 采样一个敌人出生点
// 拒绝采样：随机取场地内一点，落在阻挡地格上或距玩家过近则重试；
// 尝试次数耗尽后退化为玩家周围固定半径的随机角度点
func (s *WaveSystem) sampleSpawnPosition() (float64, float64) {
	grid := s.state.Grid
	px, py := s.playerPosition()

	for i := 0; i < s.encounterCfg.SpawnAttempts; i++ {
		x := s.state.Rng.Float64() * grid.WorldWidth()
		y := s.state.Rng.Float64() * grid.WorldHeight()

		if grid.IsBlocked(grid.CoordAt(x, y)) {
			continue
		}
		if math.Hypot(x-px, y-py) < s.encounterCfg.MinPlayerDistance {
			continue
		}
		return x, y
	}

	// 兜底：场地几乎被阻挡或极小时，落在玩家周围固定半径上
	angle := s.state.Rng.Float64() * 2 * math.Pi
	return px + math.Cos(angle)*s.encounterCfg.FallbackRadius,
		py + math.Sin(angle)*s.encounterCfg.FallbackRadius
}

// playerPosition 返回玩家当前位置，玩家缺失时退化为场地中心
func (s *WaveSystem) playerPosition() (float64, float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.state.PlayerID); ok {
		return pos.X, pos.Y
	}
	return s.state.Grid.WorldWidth() / 2, s.state.Grid.WorldHeight() / 2
}
