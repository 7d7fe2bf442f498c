package geo

import "math"

const (
	earthRadiusKM = 6371.0
)

// https://scikit-learn.org/stable/modules/generated/sklearn.metrics.pairwise.haversine_distances.html
// sin^2(a/2)
func havFunction(angleRad float64) float64 {
	return math.Pow(math.Sin(angleRad/2.0), 2)
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func radiansToDegree(angle float64) float64 {
	return angle * (180.0 / math.Pi)
}

// HaversineDistance returns the great-circle distance in kilometers between
// two coordinates given in decimal degrees. Symmetric in its argument pairs.
func HaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	hav := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	// floating-point error can push hav just outside [0,1] for near-identical
	// or antipodal points, and Asin(Sqrt(hav)) would then return NaN
	if hav < 0 {
		hav = 0
	} else if hav > 1 {
		hav = 1
	}

	centralAngleRad := 2.0 * math.Asin(math.Sqrt(hav))
	return earthRadiusKM * centralAngleRad
}

// Bearing returns the initial bearing in degrees [0,360) when walking from
// the first coordinate towards the second.
// https://www.movable-type.co.uk/scripts/latlong.html
func Bearing(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	latTwo = degreeToRadians(latTwo)
	diffLong := degreeToRadians(longTwo - longOne)

	y := math.Sin(diffLong) * math.Cos(latTwo)
	x := math.Cos(latOne)*math.Sin(latTwo) - math.Sin(latOne)*math.Cos(latTwo)*math.Cos(diffLong)

	bearing := radiansToDegree(math.Atan2(y, x))
	return math.Mod(bearing+360.0, 360.0)
}
