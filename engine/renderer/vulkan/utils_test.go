package vulkan

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"

	"github.com/lumen-gfx/lumen/engine/core"
)

func TestFrameErrorFromResult(t *testing.T) {
	assert.ErrorIs(t, FrameErrorFromResult(vk.ErrorOutOfDate), core.ErrSurfaceLost)
	assert.ErrorIs(t, FrameErrorFromResult(vk.ErrorSurfaceLost), core.ErrSurfaceLost)
	assert.ErrorIs(t, FrameErrorFromResult(vk.ErrorOutOfHostMemory), core.ErrOutOfMemory)
	assert.ErrorIs(t, FrameErrorFromResult(vk.ErrorOutOfDeviceMemory), core.ErrOutOfMemory)
	assert.ErrorIs(t, FrameErrorFromResult(vk.Timeout), core.ErrFrameTimeout)
	assert.ErrorIs(t, FrameErrorFromResult(vk.NotReady), core.ErrFrameTimeout)

	assert.NoError(t, FrameErrorFromResult(vk.Success))
	assert.NoError(t, FrameErrorFromResult(vk.Suboptimal))
	assert.NoError(t, FrameErrorFromResult(vk.ErrorDeviceLost))
}

func TestVulkanResultIsSuccess(t *testing.T) {
	assert.True(t, VulkanResultIsSuccess(vk.Success))
	assert.True(t, VulkanResultIsSuccess(vk.Suboptimal))
	assert.False(t, VulkanResultIsSuccess(vk.ErrorOutOfDate))
}

func TestVulkanSafeString(t *testing.T) {
	assert.Equal(t, "abc\x00", VulkanSafeString("abc"))
	assert.Equal(t, "abc\x00", VulkanSafeString("abc\x00"))
	assert.Equal(t, "\x00", VulkanSafeString(""))
}

func TestVulkanTrimString(t *testing.T) {
	assert.Equal(t, "VK_LAYER", VulkanTrimString([]byte("VK_LAYER\x00\x00\x00")))
	assert.Equal(t, "plain", VulkanTrimString([]byte("plain")))
	assert.Equal(t, "", VulkanTrimString([]byte{0}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, uint32(5), clamp(uint32(3), 5, 10))
	assert.Equal(t, uint32(10), clamp(uint32(12), 5, 10))
	assert.Equal(t, uint32(7), clamp(uint32(7), 5, 10))
}
