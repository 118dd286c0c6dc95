package ecs

// Commands buffers structural changes so they can be applied together, for
// example after a pass over query results has finished.
type Commands struct {
	creates    []createCommand
	destroys   []Entity
	adds       []componentCommand
	removes    []componentCommand
	addTags    []tagCommand
	removeTags []tagCommand
	defers     []func()
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type createCommand struct {
	components []ComponentKind
	tags       []TagKind
}

type componentCommand struct {
	entity Entity
	kinds  []ComponentKind
}

type tagCommand struct {
	entity Entity
	kinds  []TagKind
}

// Create queues the creation of an entity holding the given components and
// tags.
func (c *Commands) Create(components []ComponentKind, tags []TagKind) {
	c.creates = append(c.creates, createCommand{components: components, tags: tags})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// AddComponents queues attaching kinds to e.
func (c *Commands) AddComponents(e Entity, kinds ...ComponentKind) {
	c.adds = append(c.adds, componentCommand{entity: e, kinds: kinds})
}

// RemoveComponents queues detaching kinds from e.
func (c *Commands) RemoveComponents(e Entity, kinds ...ComponentKind) {
	c.removes = append(c.removes, componentCommand{entity: e, kinds: kinds})
}

// AddTags queues tagging e.
func (c *Commands) AddTags(e Entity, kinds ...TagKind) {
	c.addTags = append(c.addTags, tagCommand{entity: e, kinds: kinds})
}

// RemoveTags queues untagging e.
func (c *Commands) RemoveTags(e Entity, kinds ...TagKind) {
	c.removeTags = append(c.removeTags, tagCommand{entity: e, kinds: kinds})
}

// Defer queues fn to run after every other command.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.creates) + len(c.destroys) + len(c.adds) + len(c.removes) +
		len(c.addTags) + len(c.removeTags) + len(c.defers)
}

// Flush applies all queued commands to the storage and resets the buffer.
// Destroys run first, then removals, additions, creations and deferred
// functions. Mutations aimed at an entity destroyed in the same flush are
// dropped, as are repeated destroys of one entity. Flush returns the handles produced by queued creations in queue
// order, NoEntity where the storage was full.
func (c *Commands) Flush(s *Storage) []Entity {
	destroyed := make(map[Entity]bool, len(c.destroys))
	for _, e := range c.destroys {
		if destroyed[e] {
			continue
		}
		s.Destroy(e)
		destroyed[e] = true
	}

	for _, cmd := range c.removes {
		if !destroyed[cmd.entity] {
			s.RemoveComponents(cmd.entity, cmd.kinds...)
		}
	}
	for _, cmd := range c.removeTags {
		if !destroyed[cmd.entity] {
			s.RemoveTags(cmd.entity, cmd.kinds...)
		}
	}

	for _, cmd := range c.adds {
		if !destroyed[cmd.entity] {
			s.AddComponents(cmd.entity, cmd.kinds...)
		}
	}
	for _, cmd := range c.addTags {
		if !destroyed[cmd.entity] {
			s.AddTags(cmd.entity, cmd.kinds...)
		}
	}

	var created []Entity
	for _, cmd := range c.creates {
		e := s.Create()
		if e != NoEntity {
			s.AddComponents(e, cmd.components...)
			s.AddTags(e, cmd.tags...)
		}
		created = append(created, e)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.creates = c.creates[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.addTags = c.addTags[:0]
	c.removeTags = c.removeTags[:0]
	c.defers = c.defers[:0]

	return created
}
