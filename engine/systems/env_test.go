package systems

import (
	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/defense"
	"github.com/dfry/skyguard/engine/geom"
)

// testEnv bundles the pieces every system needs
type testEnv struct {
	world    *core.World
	session  *core.Session
	registry *defense.Registry
	rand     *core.Rand
	bus      *core.EventBus
}

func newEnv(seed int64) *testEnv {
	reg := defense.NewRegistry()
	reg.Resize(800, 600)
	sess := core.NewSession()
	sess.BeginRound(1)
	return &testEnv{
		world:    core.NewWorld(),
		session:  sess,
		registry: reg,
		rand:     core.NewRand(seed),
		bus:      core.NewEventBus(),
	}
}

// addEnemy places an enemy at pos descending toward target
func (e *testEnv) addEnemy(pos, target geom.Vec, elite bool) core.EntityID {
	speed := core.EnemySpeed
	health := core.EnemyHealth
	if elite {
		speed = core.EliteSpeed
		health = core.EliteHealth
	}
	id := e.world.Spawn()
	e.world.Attach(id, &core.Position{X: pos.X, Y: pos.Y})
	e.world.Attach(id, &core.Health{Current: health, Max: health})
	e.world.Attach(id, &core.Enemy{
		Origin: pos,
		Target: target,
		Speed:  speed,
		Elite:  elite,
	})
	return id
}
