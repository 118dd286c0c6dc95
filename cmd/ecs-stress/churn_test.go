package main

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/slotecs/ecs"
)

func newTestChurn(t *testing.T, capacity int, rate float64) (*churn, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	components, tags := newRegistries()
	storage := ecs.NewStorage(components, tags,
		ecs.WithCapacity(capacity),
		ecs.WithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel)),
	)
	return newChurn(storage, rand.New(rand.NewSource(7)), rate), &buf
}

func TestChurnPopulate(t *testing.T) {
	c, buf := newTestChurn(t, 64, 0.1)
	c.populate()

	assert.Equal(t, 32, c.storage.Len())
	assert.Equal(t, 32, c.created)
	assert.Len(t, c.storage.QueryTags(c.kinds.alive), 32)
	assert.Len(t, c.storage.Query(c.kinds.position), 32)
	assert.Empty(t, buf.String())
}

func TestChurnFramesKeepBookkeeping(t *testing.T) {
	c, buf := newTestChurn(t, 50, 0.2)
	c.populate()

	for range 200 {
		c.frame()

		require.LessOrEqual(t, c.storage.Len(), c.storage.Capacity())
		require.Equal(t, c.created-c.destroyed-c.expired, c.storage.Len())
	}

	assert.Zero(t, c.rejected)
	assert.Positive(t, c.destroyed)
	assert.Positive(t, c.expired)
	assert.Empty(t, buf.String(), "churn should never hit a diagnostic path")
	assert.EqualValues(t, 200, c.moveTime.Count)
}

func TestChurnInitializesComponents(t *testing.T) {
	c, _ := newTestChurn(t, 16, 0.5)
	c.populate()

	for _, e := range c.storage.Query(c.kinds.health) {
		assert.Equal(t, Health{Current: 100, Max: 100}, *ecs.GetComponent[Health](c.storage, e))
	}
	for _, e := range c.storage.Query(c.kinds.lifetime) {
		assert.Positive(t, ecs.GetComponent[Lifetime](c.storage, e).Frames)
	}
}

func TestStatsAdd(t *testing.T) {
	var s Stats
	assert.Zero(t, s.Avg())

	s.Add(3 * time.Millisecond)
	s.Add(1 * time.Millisecond)
	s.Add(2 * time.Millisecond)

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg())
	assert.EqualValues(t, 3, s.Count)
}

func TestReportGenerate(t *testing.T) {
	c, _ := newTestChurn(t, 20, 0.25)
	c.populate()
	for range 10 {
		c.frame()
	}

	report := &Report{Duration: time.Second, Capacity: 20, Rate: 0.25, Profile: "none", TotalFrames: 10}
	report.collect(c)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))

	text := out.String()
	assert.Contains(t, text, "**Total Frames:** 10")
	assert.Contains(t, text, "**QueryTags:** avg")
	assert.Contains(t, text, "- component main.Position:")
	assert.Contains(t, text, "- tag main.Alive:")
	assert.NotContains(t, text, "GC Pause")
}
