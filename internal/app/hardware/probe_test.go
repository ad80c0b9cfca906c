package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProbe struct {
	accelerator bool
}

func (s *stubProbe) HasAccelerator() bool { return s.accelerator }

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		pref        Device
		accelerator bool
		expected    Device
	}{
		{name: "auto_with_accelerator", pref: DeviceAuto, accelerator: true, expected: DeviceGPU},
		{name: "auto_without_accelerator", pref: DeviceAuto, accelerator: false, expected: DeviceCPU},
		{name: "explicit_cpu_ignores_accelerator", pref: DeviceCPU, accelerator: true, expected: DeviceCPU},
		{name: "explicit_gpu_without_accelerator", pref: DeviceGPU, accelerator: false, expected: DeviceGPU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Resolve(tt.pref, &stubProbe{accelerator: tt.accelerator})
			assert.Equal(t, tt.expected, resolved)
		})
	}
}

func TestResolve_NilProbeFallsBackToCPU(t *testing.T) {
	assert.Equal(t, DeviceCPU, Resolve(DeviceAuto, nil))
}

func TestUseReducedPrecision(t *testing.T) {
	assert.True(t, UseReducedPrecision(DeviceGPU))
	assert.False(t, UseReducedPrecision(DeviceCPU))
}

func TestIsValidDevice(t *testing.T) {
	for _, valid := range []string{"auto", "cpu", "gpu"} {
		assert.True(t, IsValidDevice(valid), valid)
	}
	for _, invalid := range []string{"", "cuda", "metal", "AUTO"} {
		assert.False(t, IsValidDevice(invalid), invalid)
	}
}
