package systems

import (
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// testWorld 系统测试的共享夹具
// 用默认配置搭建完整战场：默认场地、玩家实体和遭遇战状态
type testWorld struct {
	em        *ecs.EntityManager
	state     *game.EncounterState
	actors    *config.ActorsConfig
	combat    *config.CombatConfig
	encounter *config.EncounterConfig
	player    ecs.EntityID
}

// newTestWorld 创建测试战场，玩家放在场地中央附近
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	actors := config.DefaultActorsConfig()
	combat := config.DefaultCombatConfig()
	encounter := config.DefaultEncounterConfig()

	em := ecs.NewEntityManager()
	grid := game.NewTileGrid(encounter)
	state := game.NewEncounterState(em, grid, encounter.MaxWaves, 1)

	player, err := entities.NewPlayerEntity(em, &actors.Player, combat, 320, 192)
	if err != nil {
		t.Fatalf("Failed to create player entity: %v", err)
	}
	state.PlayerID = player

	return &testWorld{
		em:        em,
		state:     state,
		actors:    actors,
		combat:    combat,
		encounter: encounter,
		player:    player,
	}
}

// spawnEnemy 在指定位置生成并注册一个敌人
func (w *testWorld) spawnEnemy(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()

	id, err := entities.NewEnemyEntity(w.em, &w.actors.Enemy, w.player, x, y)
	if err != nil {
		t.Fatalf("Failed to create enemy entity: %v", err)
	}
	w.state.RegisterEnemy(id)
	return id
}

// countEffects 统计指定类型的效果实体数量
func (w *testWorld) countEffects(kind components.EffectKind) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EffectComponent](w.em) {
		if effect, ok := ecs.GetComponent[*components.EffectComponent](w.em, id); ok && effect.Kind == kind {
			count++
		}
	}
	return count
}
