package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockMeasuresElapsed(t *testing.T) {
	c := NewClock()
	c.Start()

	time.Sleep(10 * time.Millisecond)
	c.Update()

	assert.Greater(t, c.Elapsed(), 0.0)
	assert.Less(t, c.Elapsed(), 5.0)
}

func TestClockNotStarted(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Zero(t, c.Elapsed())
}

func TestClockStopFreezesElapsed(t *testing.T) {
	c := NewClock()
	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Update()
	elapsed := c.Elapsed()
	assert.Greater(t, elapsed, 0.0)

	c.Stop()
	time.Sleep(5 * time.Millisecond)
	c.Update()
	assert.Equal(t, elapsed, c.Elapsed())
}

func TestClockRestartResets(t *testing.T) {
	c := NewClock()
	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Update()

	c.Start()
	assert.Zero(t, c.Elapsed())
}
