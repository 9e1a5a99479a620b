package services

import (
	"fmt"
	"os"
	"strings"
)

const (
	DeviceAuto = "auto"
	DeviceCUDA = "cuda"
	DeviceCPU  = "cpu"
)

// nvidiaProbePaths exist when an NVIDIA driver is loaded on the host.
var nvidiaProbePaths = []string{
	"/proc/driver/nvidia/version",
	"/dev/nvidia0",
}

// SelectDevice resolves the requested device, preferring the GPU in auto mode.
func SelectDevice(requested string) (string, error) {
	return selectDevice(requested, nvidiaProbePaths)
}

func selectDevice(requested string, probePaths []string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(requested)) {
	case "", DeviceAuto:
		if gpuAvailable(probePaths) {
			return DeviceCUDA, nil
		}
		return DeviceCPU, nil
	case DeviceCUDA, "gpu":
		return DeviceCUDA, nil
	case DeviceCPU:
		return DeviceCPU, nil
	default:
		return "", fmt.Errorf("unsupported device: %s", requested)
	}
}

func gpuAvailable(probePaths []string) bool {
	for _, path := range probePaths {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}
