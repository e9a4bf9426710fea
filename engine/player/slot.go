package player

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrAlreadySpawned is returned when a Slot that already holds a player is asked to spawn another.
var ErrAlreadySpawned = errors.New("player: already spawned")

// DefaultSpawnPosition is where the player body appears.
var DefaultSpawnPosition = mgl32.Vec3{0, 2, 0}

// DefaultShape is the player collider: a capsule two units tall.
var DefaultShape = physics.Capsule(0.5, 0.5)

type slotImpl struct {
	mu   *sync.Mutex
	body *physics.Body
}

// Slot holds the session's one player body. It starts empty and is filled exactly once.
type Slot interface {
	// Spawn creates the player body and stores it in the slot.
	//
	// Parameters:
	//   - sp: the world to spawn into
	//   - position: the spawn position
	//   - shape: the player collider
	//
	// Returns:
	//   - physics.Body: the spawned body
	//   - error: ErrAlreadySpawned if the slot is already filled
	Spawn(sp physics.Spawner, position mgl32.Vec3, shape physics.Shape) (physics.Body, error)

	// Body returns the player body if one has been spawned.
	//
	// Returns:
	//   - physics.Body: the player body
	//   - bool: false while the slot is empty
	Body() (physics.Body, bool)
}

var _ Slot = &slotImpl{}

// NewSlot creates an empty Slot.
//
// Returns:
//   - Slot: the newly created slot
func NewSlot() Slot {
	return &slotImpl{mu: &sync.Mutex{}}
}

func (s *slotImpl) Spawn(sp physics.Spawner, position mgl32.Vec3, shape physics.Shape) (physics.Body, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.body != nil {
		return *s.body, ErrAlreadySpawned
	}
	b := sp.SpawnDynamic(shape, position)
	s.body = &b
	return b, nil
}

func (s *slotImpl) Body() (physics.Body, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.body == nil {
		return physics.Body{}, false
	}
	return *s.body, true
}
