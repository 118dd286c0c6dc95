package ecs

// membership is a row-major entity × slot presence table. Component and tag
// stores each own one; a row is the set of kinds an entity holds.
type membership struct {
	slots int
	bits  []bool
}

func newMembership(capacity, slots int) membership {
	return membership{
		slots: slots,
		bits:  make([]bool, capacity*slots),
	}
}

func (m *membership) row(e Entity) []bool {
	start := int(e) * m.slots
	return m.bits[start : start+m.slots]
}

func (m *membership) has(e Entity, slot int) bool {
	return m.bits[int(e)*m.slots+slot]
}

func (m *membership) set(e Entity, slot int, value bool) {
	m.bits[int(e)*m.slots+slot] = value
}

func (m *membership) clearRow(e Entity) {
	clear(m.row(e))
}
