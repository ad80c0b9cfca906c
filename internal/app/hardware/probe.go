package hardware

import (
	"os"
	"os/exec"
	"runtime"
)

// Device is a transcription device preference or a resolved device.
type Device string

const (
	DeviceAuto Device = "auto"
	DeviceCPU  Device = "cpu"
	DeviceGPU  Device = "gpu"
)

// IsValidDevice reports whether s is an accepted device preference.
func IsValidDevice(s string) bool {
	switch Device(s) {
	case DeviceAuto, DeviceCPU, DeviceGPU:
		return true
	default:
		return false
	}
}

// Probe detects whether an accelerated device is available. Backends take a
// Probe instead of touching the hardware directly so tests can substitute a
// stub.
type Probe interface {
	HasAccelerator() bool
}

// SystemProbe checks the running host for an accelerator.
type SystemProbe struct{}

func NewSystemProbe() *SystemProbe {
	return &SystemProbe{}
}

// HasAccelerator returns true when a CUDA GPU is visible or the host is an
// Apple Silicon machine (Metal). WHISPER_FORCE_CPU=1 overrides detection.
func (p *SystemProbe) HasAccelerator() bool {
	if os.Getenv("WHISPER_FORCE_CPU") == "1" {
		return false
	}
	if runtime.GOOS == "darwin" && runtime.GOARCH == "arm64" {
		return true
	}
	if _, err := exec.LookPath("nvidia-smi"); err == nil {
		return true
	}
	if _, err := os.Stat("/dev/nvidia0"); err == nil {
		return true
	}
	return false
}

// Resolve maps a device preference to the device to use for one invocation.
// "auto" picks the accelerator when the probe reports one, else the CPU.
// Resolution happens per call; nothing is cached across files.
func Resolve(pref Device, probe Probe) Device {
	if pref != DeviceAuto {
		return pref
	}
	if probe != nil && probe.HasAccelerator() {
		return DeviceGPU
	}
	return DeviceCPU
}

// UseReducedPrecision reports whether fp16 arithmetic should be enabled for
// the resolved device. Reduced precision is only worthwhile on the
// accelerator; the CPU path stays at full precision.
func UseReducedPrecision(resolved Device) bool {
	return resolved == DeviceGPU
}
