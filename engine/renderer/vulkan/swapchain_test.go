package vulkan

import (
	"math"
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseSurfaceFormatPrefersSRGB(t *testing.T) {
	formats := []vk.SurfaceFormat{
		{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear},
	}

	chosen, err := chooseSurfaceFormat(formats)
	require.NoError(t, err)
	assert.Equal(t, vk.FormatB8g8r8a8Srgb, chosen.Format)
	assert.Equal(t, vk.ColorSpaceSrgbNonlinear, chosen.ColorSpace)
}

func TestChooseSurfaceFormatFallsBackToFirst(t *testing.T) {
	formats := []vk.SurfaceFormat{
		{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
	}

	chosen, err := chooseSurfaceFormat(formats)
	require.NoError(t, err)
	assert.Equal(t, vk.FormatR8g8b8a8Unorm, chosen.Format)
}

func TestChooseSurfaceFormatEmptyIsError(t *testing.T) {
	// Support is re-queried on swapchain recreation; an empty answer must
	// surface as an error, not a panic.
	_, err := chooseSurfaceFormat(nil)
	assert.Error(t, err)

	_, err = chooseSurfaceFormat([]vk.SurfaceFormat{})
	assert.Error(t, err)
}

func TestChoosePresentMode(t *testing.T) {
	modes := []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox}

	// Mailbox wins when vsync is off and the device offers it.
	assert.Equal(t, vk.PresentModeMailbox, choosePresentMode(modes, false))
	// Vsync forces FIFO even when mailbox is available.
	assert.Equal(t, vk.PresentModeFifo, choosePresentMode(modes, true))
	// FIFO is the guaranteed fallback.
	assert.Equal(t, vk.PresentModeFifo, choosePresentMode([]vk.PresentMode{vk.PresentModeFifo}, false))
}

func TestChooseExtentUsesCurrentWhenFixed(t *testing.T) {
	capabilities := vk.SurfaceCapabilities{
		CurrentExtent: vk.Extent2D{Width: 1920, Height: 1080},
	}

	extent := chooseExtent(capabilities, 640, 480)
	assert.Equal(t, uint32(1920), extent.Width)
	assert.Equal(t, uint32(1080), extent.Height)
}

func TestChooseExtentClampsRequestedSize(t *testing.T) {
	capabilities := vk.SurfaceCapabilities{
		CurrentExtent:  vk.Extent2D{Width: math.MaxUint32, Height: math.MaxUint32},
		MinImageExtent: vk.Extent2D{Width: 64, Height: 64},
		MaxImageExtent: vk.Extent2D{Width: 4096, Height: 4096},
	}

	extent := chooseExtent(capabilities, 8192, 32)
	assert.Equal(t, uint32(4096), extent.Width)
	assert.Equal(t, uint32(64), extent.Height)

	extent = chooseExtent(capabilities, 1280, 720)
	assert.Equal(t, uint32(1280), extent.Width)
	assert.Equal(t, uint32(720), extent.Height)
}

func TestChooseImageCount(t *testing.T) {
	// One over the minimum.
	count := chooseImageCount(vk.SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 8})
	assert.Equal(t, uint32(3), count)

	// Capped by the maximum.
	count = chooseImageCount(vk.SurfaceCapabilities{MinImageCount: 3, MaxImageCount: 3})
	assert.Equal(t, uint32(3), count)

	// Zero maximum means unbounded.
	count = chooseImageCount(vk.SurfaceCapabilities{MinImageCount: 4, MaxImageCount: 0})
	assert.Equal(t, uint32(5), count)
}
