package number

import (
	"math"
	"strconv"
)

func DegreeToRadian(degree float64) float64 {
	return degree * math.Pi / 180.0
}

func RadianToDegree(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

func FloatToStr(f float64, decimals int) string {
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

func Clamp(val float64, min float64, max float64) float64 {
	if val < min {
		return min
	}

	if val > max {
		return max
	}

	return val
}
