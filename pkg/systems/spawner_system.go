package systems

import (
	"log"
	"math/rand/v2"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/entities"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/utils"
)

// SpawnTicker 是逐帧驱动的循环计时器。只在运行时累加时间，
// 停止即取消所有待触发的计时。
type SpawnTicker struct {
	interval float64
	elapsed  float64
	running  bool
}

// NewSpawnTicker 创建每 interval 秒触发一次的计时器(初始为停止状态)
func NewSpawnTicker(interval float64) *SpawnTicker {
	return &SpawnTicker{interval: interval}
}

// Start 从零开始计时，已在运行时不做任何事
func (t *SpawnTicker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.elapsed = 0
}

// Stop 取消计时并丢弃未完成的间隔
func (t *SpawnTicker) Stop() {
	t.running = false
	t.elapsed = 0
}

// Running 计时器是否正在运行
func (t *SpawnTicker) Running() bool {
	return t.running
}

// Advance 累加 dt 并返回完成的间隔数
func (t *SpawnTicker) Advance(dt float64) int {
	if !t.running || t.interval <= 0 {
		return 0
	}
	t.elapsed += dt
	fires := 0
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		fires++
	}
	return fires
}

// SpawnerSystem 持有生存模式的刷怪计时器，
// 并在角色周围放置敌人。
type SpawnerSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	spawner       config.SpawnerConfig
	enemies       config.EnemiesConfig
	rng           *rand.Rand
	ticker        *SpawnTicker
}

// NewSpawnerSystem 创建刷怪系统，计时器初始为停止状态
func NewSpawnerSystem(em *ecs.EntityManager, gs *game.GameState, spawner config.SpawnerConfig, enemies config.EnemiesConfig, rng *rand.Rand) *SpawnerSystem {
	return &SpawnerSystem{
		entityManager: em,
		gameState:     gs,
		spawner:       spawner,
		enemies:       enemies,
		rng:           rng,
		ticker:        NewSpawnTicker(spawner.Interval),
	}
}

// Ticker 返回刷怪计时器
func (s *SpawnerSystem) Ticker() *SpawnTicker {
	return s.ticker
}

// LiveEnemies 统计未被标记删除的敌人数量
func (s *SpawnerSystem) LiveEnemies() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if !s.entityManager.IsMarked(id) {
			n++
		}
	}
	return n
}

// Spawn 在角色周围随机角度、[minRange, maxRange] 内随机距离处
// 放置一个随机种类的敌人。
// 敌人数量达到上限时不做任何事。
func (s *SpawnerSystem) Spawn(minRange, maxRange, speed float64) (ecs.EntityID, bool) {
	if s.LiveEnemies() >= s.spawner.Capacity || len(s.enemies.Species) == 0 {
		return 0, false
	}
	character, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.gameState.Character)
	if !ok {
		return 0, false
	}

	species := s.enemies.Species[s.rng.IntN(len(s.enemies.Species))]
	pos := utils.RandomRing(s.rng, character.Position, minRange, maxRange, s.spawner.Height)
	id := entities.NewEnemyEntity(s.entityManager, species, pos, speed, s.enemies.Health)
	return id, true
}

// Update 推进计时器，每次触发生成 burst 个敌人
func (s *SpawnerSystem) Update(dt float64) {
	fires := s.ticker.Advance(dt)
	if fires == 0 {
		return
	}
	spawned := 0
	for i := 0; i < fires*s.spawner.Burst; i++ {
		if _, ok := s.Spawn(s.spawner.MinRange, s.spawner.MaxRange, s.spawner.Speed); ok {
			spawned++
		}
	}
	log.Printf("[SpawnerSystem] Spawned %d enemies (%d alive)", spawned, s.LiveEnemies())
}
