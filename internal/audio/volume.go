package audio

import "math"

// clampLevel bounds a volume level to the 0..100 scale.
func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// levelToVolume converts a 0..100 level to beep's Volume value.
// beep uses a logarithmic scale with base 2 where 0 means no change,
// -1 half volume, -2 quarter and so on. 100 maps to 0, 50 to -1,
// 25 to -2; 0 maps to -10 (essentially silent, the Silent flag does
// the real muting).
func levelToVolume(level int) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 100 {
		return 0
	}
	return math.Log2(float64(level) / 100)
}
