package gamemath

// ApplyDeadzone returns v if its magnitude is strictly above deadzone, else 0.
func ApplyDeadzone(v, deadzone float64) float64 {
	if v > deadzone || v < -deadzone {
		return v
	}
	return 0
}

// PastDeadzone reports whether |v| > deadzone.
func PastDeadzone(v, deadzone float64) bool {
	return v > deadzone || v < -deadzone
}

// ClampAxis clamps an analog axis value to [-1, 1].
func ClampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// RampSpawnRate returns the spawn period after one ramp step, floor-clamped.
func RampSpawnRate(rate, floor int) int {
	if rate-1 < floor {
		return floor
	}
	return rate - 1
}
