package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupMetrics(t *testing.T) {
	t.Helper()
	assert.NoError(t, MetricsInitialize())
	*metricsState = MetricsState{}
}

func TestMetricsFrameTimeAverage(t *testing.T) {
	setupMetrics(t)

	// 30 frames at 40ms fill the rolling window.
	for i := uint8(0); i < AVG_COUNT; i++ {
		MetricsUpdate(0.040)
	}
	assert.InDelta(t, 40.0, MetricsFrameTime(), 0.001)
}

func TestMetricsFPSOverOneSecond(t *testing.T) {
	setupMetrics(t)

	// 25 frames accumulate exactly one second; the 26th crosses it and
	// publishes the count.
	for i := 0; i < 26; i++ {
		MetricsUpdate(0.040)
	}
	assert.InDelta(t, 25.0, MetricsFPS(), 0.001)
}

func TestMetricsFrameReturnsBoth(t *testing.T) {
	setupMetrics(t)

	for i := 0; i < 60; i++ {
		MetricsUpdate(0.020)
	}
	fps, frameTime := MetricsFrame()
	assert.Greater(t, fps, 0.0)
	assert.InDelta(t, 20.0, frameTime, 0.001)
}

func TestMetricsBeforeInitialize(t *testing.T) {
	saved := metricsState
	metricsState = nil
	defer func() { metricsState = saved }()

	MetricsUpdate(0.016)
	assert.Zero(t, MetricsFPS())
	assert.Zero(t, MetricsFrameTime())
}
