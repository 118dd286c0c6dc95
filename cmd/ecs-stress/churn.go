package main

import (
	"math/rand"
	"time"

	"github.com/plus3/slotecs/ecs"
)

// churn drives one storage through repeated frames of entity turnover. Every
// structural change goes through a command buffer that is flushed at the end
// of the frame.
type churn struct {
	storage  *ecs.Storage
	kinds    kinds
	commands *ecs.Commands
	rng      *rand.Rand

	// rate is the fraction of capacity created and destroyed per frame.
	rate float64

	created   int
	destroyed int
	expired   int
	rejected  int
	tagged    int

	moveTime  Stats
	queryTime Stats
	flushTime Stats
}

func newChurn(storage *ecs.Storage, rng *rand.Rand, rate float64) *churn {
	return &churn{
		storage:  storage,
		kinds:    resolveKinds(storage),
		commands: ecs.NewCommands(),
		rng:      rng,
		rate:     rate,
	}
}

// populate fills half the storage so the first frames have work to do.
func (c *churn) populate() {
	for range c.storage.Capacity() / 2 {
		c.queueCreate()
	}
	c.flush()
}

func (c *churn) frame() {
	k := c.kinds

	start := time.Now()
	for _, e := range c.storage.Query(k.position, k.velocity) {
		if c.storage.HasTags(e, k.frozen) {
			continue
		}
		pos := ecs.GetComponent[Position](c.storage, e)
		vel := ecs.GetComponent[Velocity](c.storage, e)
		pos.X += vel.DX
		pos.Y += vel.DY
	}

	expiring := make(map[ecs.Entity]bool)
	for _, e := range c.storage.Query(k.lifetime) {
		life := ecs.GetComponent[Lifetime](c.storage, e)
		life.Frames--
		if life.Frames <= 0 {
			c.commands.Destroy(e)
			c.expired++
			expiring[e] = true
		}
	}
	c.moveTime.Add(time.Since(start))

	start = time.Now()
	alive := c.storage.QueryTags(k.alive)
	c.queryTime.Add(time.Since(start))

	destroying := len(expiring)
	turnover := max(1, int(float64(c.storage.Capacity())*c.rate))
	for range turnover {
		if len(alive) == 0 {
			break
		}
		i := c.rng.Intn(len(alive))
		e := alive[i]
		alive[i] = alive[len(alive)-1]
		alive = alive[:len(alive)-1]
		if expiring[e] {
			continue
		}

		switch c.rng.Intn(4) {
		case 0:
			c.commands.Destroy(e)
			c.destroyed++
			destroying++
		case 1:
			c.commands.AddTags(e, k.marked)
			c.tagged++
		case 2:
			c.commands.RemoveTags(e, k.marked, k.frozen)
		default:
			c.commands.RemoveComponents(e, k.velocity)
			c.commands.AddTags(e, k.frozen)
			c.tagged++
		}
	}

	// Handles freed by this frame's destroys count toward the free total.
	// Requests beyond it would only be rejected.
	free := c.storage.Capacity() - c.storage.Len() + destroying
	for range min(turnover, free) {
		c.queueCreate()
	}

	c.flush()
}

func (c *churn) queueCreate() {
	k := c.kinds

	components := []ecs.ComponentKind{k.position}
	for _, kind := range k.components[1:] {
		if c.rng.Intn(2) == 0 {
			components = append(components, kind)
		}
	}
	c.commands.Create(components, []ecs.TagKind{k.alive})
}

func (c *churn) flush() {
	start := time.Now()
	for _, e := range c.commands.Flush(c.storage) {
		if e == ecs.NoEntity {
			c.rejected++
			continue
		}
		c.created++
		c.initialize(e)
	}
	c.flushTime.Add(time.Since(start))
}

func (c *churn) initialize(e ecs.Entity) {
	if pos := ecs.GetComponent[Position](c.storage, e); pos != nil {
		*pos = Position{X: c.rng.Float64() * 100, Y: c.rng.Float64() * 100}
	}
	if c.storage.HasComponents(e, c.kinds.velocity) {
		*ecs.GetComponent[Velocity](c.storage, e) = Velocity{DX: c.rng.Float64() - 0.5, DY: c.rng.Float64() - 0.5}
	}
	if c.storage.HasComponents(e, c.kinds.health) {
		*ecs.GetComponent[Health](c.storage, e) = Health{Current: 100, Max: 100}
	}
	if c.storage.HasComponents(e, c.kinds.lifetime) {
		*ecs.GetComponent[Lifetime](c.storage, e) = Lifetime{Frames: 1 + c.rng.Intn(60)}
	}
}
