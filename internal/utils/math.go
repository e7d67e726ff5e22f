// internal/utils/math.go
package utils

// Abs возвращает модуль целого числа.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign возвращает -1, 0 или 1 по знаку x.
func Sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
