package vulkan

import (
	vk "github.com/goki/vulkan"
)

// VulkanContext carries every live handle of the backend. Fields are torn
// down in reverse creation order; the surface is destroyed before the
// instance and always before the platform window.
type VulkanContext struct {
	// The framebuffer's current width/height.
	FramebufferWidth  uint32
	FramebufferHeight uint32
	// Current generation of framebuffer size. When it does not match
	// FramebufferSizeLastGeneration the swapchain must be recreated.
	FramebufferSizeGeneration     uint64
	FramebufferSizeLastGeneration uint64

	Instance  vk.Instance
	Allocator *vk.AllocationCallbacks
	Surface   vk.Surface

	debugMessenger vk.DebugReportCallback

	Device *VulkanDevice

	Swapchain      *VulkanSwapchain
	MainRenderpass *VulkanRenderpass

	GraphicsCommandBuffers []*VulkanCommandBuffer

	ImageAvailableSemaphores []vk.Semaphore
	QueueCompleteSemaphores  []vk.Semaphore

	InFlightFences []*VulkanFence

	// Pointers to fences owned by InFlightFences, indexed by swapchain
	// image. Nil when the image is not in flight.
	ImagesInFlight []*VulkanFence

	ImageIndex   uint32
	CurrentFrame uint32

	RecreatingSwapchain bool
}
