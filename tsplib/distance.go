package tsplib

import "math"

// nint rounds to the nearest integer as TSPLIB does: (int)(x + 0.5).
func nint(x float64) float64 { return math.Floor(x + 0.5) }

func euc2D(a, b [2]float64) float64 {
	return nint(math.Hypot(a[0]-b[0], a[1]-b[1]))
}

func ceil2D(a, b [2]float64) float64 {
	return math.Ceil(math.Hypot(a[0]-b[0], a[1]-b[1]))
}

func att(a, b [2]float64) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	r := math.Sqrt((dx*dx + dy*dy) / 10)
	t := nint(r)
	if t < r {
		return t + 1
	}

	return t
}

const (
	geoPi     = 3.141592
	geoRadius = 6378.388
)

// geoRadians converts a DDD.MM coordinate to radians.
func geoRadians(x float64) float64 {
	deg := math.Trunc(x)
	minutes := x - deg

	return geoPi * (deg + 5*minutes/3) / 180
}

func geo(a, b [2]float64) float64 {
	latA, lonA := geoRadians(a[0]), geoRadians(a[1])
	latB, lonB := geoRadians(b[0]), geoRadians(b[1])
	q1 := math.Cos(lonA - lonB)
	q2 := math.Cos(latA - latB)
	q3 := math.Cos(latA + latB)

	return math.Trunc(geoRadius*math.Acos(0.5*((1+q1)*q2-(1-q1)*q3)) + 1)
}

// metric returns the distance function of a coordinate weight type, or nil.
func metric(weightType string) func(a, b [2]float64) float64 {
	switch weightType {
	case Euclidean2D:
		return euc2D
	case Ceiling2D:
		return ceil2D
	case PseudoEuc:
		return att
	case Geographic:
		return geo
	}

	return nil
}
