package physics

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// DefaultGravity is the downward acceleration used when none is configured.
const DefaultGravity float32 = 9.81

// minBodiesPerTask is the smallest integration batch handed to a pool worker.
// Smaller scenes are integrated inline on the calling goroutine.
const minBodiesPerTask = 64

type velocity struct {
	Linear mgl32.Vec3
}

type collider struct {
	Shape Shape
}

// dynamic tags bodies that are integrated by Step.
type dynamic struct{}

// dynamicBody is one dynamic body's component pointers captured for a step.
type dynamicBody struct {
	transform *Transform
	velocity  *velocity
	collider  *collider
}

// staticBox is a static collider's world-space bounding box captured for a step.
type staticBox struct {
	lo, hi mgl32.Vec3
}

type ecsWorldImpl struct {
	mu *sync.Mutex

	world    ecs.World
	bodies   *ecs.Map3[Transform, velocity, collider]
	dynamics *ecs.Map4[Transform, velocity, collider, dynamic]
	all      *ecs.Filter3[Transform, velocity, collider]
	moving   *ecs.Filter3[Transform, velocity, collider]
	statics  *ecs.Filter2[Transform, collider]

	gravity   float32
	workers   int
	pool      worker.DynamicWorkerPool
	bodyCount int
	logger    *zap.Logger
}

var _ Simulation = &ecsWorldImpl{}

// NewWorld creates the default Simulation: an ECS-backed world of dynamic and
// static bodies with gravity, contact resolution against static bodies and ray queries.
// Dynamic bodies only collide with static bodies.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - Simulation: the newly created world
func NewWorld(options ...WorldBuilderOption) Simulation {
	w := &ecsWorldImpl{
		mu:      &sync.Mutex{},
		world:   ecs.NewWorld(),
		gravity: DefaultGravity,
		workers: max(runtime.NumCPU()-1, 1),
		logger:  zap.NewNop(),
	}

	for _, option := range options {
		option(w)
	}

	w.bodies = ecs.NewMap3[Transform, velocity, collider](&w.world)
	w.dynamics = ecs.NewMap4[Transform, velocity, collider, dynamic](&w.world)
	w.all = ecs.NewFilter3[Transform, velocity, collider](&w.world)
	w.moving = ecs.NewFilter3[Transform, velocity, collider](&w.world).With(ecs.C[dynamic]())
	w.statics = ecs.NewFilter2[Transform, collider](&w.world).Without(ecs.C[dynamic]())

	// The pool is built after options so WithIntegrationWorkers can override the default.
	w.pool = worker.NewDynamicWorkerPool(w.workers, 256, 1*time.Second)
	return w
}

func (w *ecsWorldImpl) SpawnDynamic(shape Shape, position mgl32.Vec3) Body {
	w.mu.Lock()
	defer w.mu.Unlock()

	e := w.dynamics.NewEntity(
		&Transform{Position: position, Rotation: mgl32.QuatIdent()},
		&velocity{},
		&collider{Shape: shape},
		&dynamic{},
	)
	w.bodyCount++
	w.logger.Debug("spawned dynamic body", zap.Uint32("entity", e.ID()), zap.Float32s("position", position[:]))
	return Body{entity: e}
}

func (w *ecsWorldImpl) SpawnStatic(shape Shape, position mgl32.Vec3) Body {
	w.mu.Lock()
	defer w.mu.Unlock()

	e := w.bodies.NewEntity(
		&Transform{Position: position, Rotation: mgl32.QuatIdent()},
		&velocity{},
		&collider{Shape: shape},
	)
	w.bodyCount++
	return Body{entity: e}
}

func (w *ecsWorldImpl) Despawn(b Body) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.aliveLocked(b) {
		return false
	}
	w.world.RemoveEntity(b.entity)
	w.bodyCount--
	return true
}

func (w *ecsWorldImpl) BodyCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bodyCount
}

func (w *ecsWorldImpl) Gravity() float32 {
	return w.gravity
}

func (w *ecsWorldImpl) Transform(b Body) (Transform, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.aliveLocked(b) {
		return Transform{}, false
	}
	t, _, _ := w.bodies.Get(b.entity)
	return *t, true
}

func (w *ecsWorldImpl) Velocity(b Body) (mgl32.Vec3, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.aliveLocked(b) {
		return mgl32.Vec3{}, false
	}
	_, v, _ := w.bodies.Get(b.entity)
	return v.Linear, true
}

func (w *ecsWorldImpl) SetHorizontalVelocity(b Body, x, z float32) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.aliveLocked(b) {
		return false
	}
	_, v, _ := w.bodies.Get(b.entity)
	v.Linear[0] = x
	v.Linear[2] = z
	return true
}

func (w *ecsWorldImpl) SetVerticalVelocity(b Body, y float32) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.aliveLocked(b) {
		return false
	}
	_, v, _ := w.bodies.Get(b.entity)
	v.Linear[1] = y
	return true
}

func (w *ecsWorldImpl) SetRotation(b Body, q mgl32.Quat) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.aliveLocked(b) {
		return false
	}
	t, _, _ := w.bodies.Get(b.entity)
	t.Rotation = q
	return true
}

func (w *ecsWorldImpl) CastRay(origin, dir mgl32.Vec3, maxDistance float32, exclude Body) (Hit, bool) {
	if dir.Len() == 0 || maxDistance <= 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	w.mu.Lock()
	defer w.mu.Unlock()

	best := Hit{Distance: float32(math.Inf(1))}
	found := false
	query := w.all.Query()
	for query.Next() {
		e := query.Entity()
		if !exclude.IsZero() && e == exclude.entity {
			continue
		}
		t, _, c := query.Get()
		dist, ok := c.Shape.castRay(t.Position, origin, dir)
		if !ok || dist > maxDistance || dist >= best.Distance {
			continue
		}
		best = Hit{Body: Body{entity: e}, Distance: dist}
		found = true
	}
	return best, found
}

func (w *ecsWorldImpl) Step(dt float32) {
	if dt <= 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var boxes []staticBox
	statics := w.statics.Query()
	for statics.Next() {
		t, c := statics.Get()
		ext := c.Shape.Extents()
		boxes = append(boxes, staticBox{lo: t.Position.Sub(ext), hi: t.Position.Add(ext)})
	}

	// Component pointers stay valid while no entity is created or removed,
	// which the held mutex guarantees until integration completes.
	var bodies []dynamicBody
	moving := w.moving.Query()
	for moving.Next() {
		t, v, c := moving.Get()
		bodies = append(bodies, dynamicBody{transform: t, velocity: v, collider: c})
	}

	if len(bodies) < 2*minBodiesPerTask {
		for i := range bodies {
			w.integrate(bodies[i], boxes, dt)
		}
		return
	}

	// Per-step barrier: pool workers are reused across steps, the WaitGroup
	// only waits for this step's batches.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(bodies); start += minBodiesPerTask {
		batch := bodies[start:min(start+minBodiesPerTask, len(bodies))]
		wg.Add(1)
		id := taskID
		taskID++
		w.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := range batch {
					w.integrate(batch[i], boxes, dt)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// integrate applies gravity, advances the position and pushes the body out of
// any static box it overlaps along the axis of least penetration.
func (w *ecsWorldImpl) integrate(b dynamicBody, boxes []staticBox, dt float32) {
	v := &b.velocity.Linear
	p := &b.transform.Position

	v[1] -= w.gravity * dt
	*p = p.Add(v.Mul(dt))

	ext := b.collider.Shape.Extents()
	for _, box := range boxes {
		lo := p.Sub(ext)
		hi := p.Add(ext)

		axis := -1
		var push float32
		depth := float32(math.Inf(1))
		for i := 0; i < 3; i++ {
			down := hi[i] - box.lo[i]
			up := box.hi[i] - lo[i]
			if down <= 0 || up <= 0 {
				axis = -1
				break
			}
			if down < depth {
				depth, axis, push = down, i, -down
			}
			if up < depth {
				depth, axis, push = up, i, up
			}
		}
		if axis < 0 {
			continue
		}

		p[axis] += push
		if (push > 0 && v[axis] < 0) || (push < 0 && v[axis] > 0) {
			v[axis] = 0
		}
	}
}

// aliveLocked reports whether b refers to a live body. Caller must hold the mutex.
func (w *ecsWorldImpl) aliveLocked(b Body) bool {
	return !b.IsZero() && w.world.Alive(b.entity)
}
