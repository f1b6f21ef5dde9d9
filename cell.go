package citybed

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// CellID is a 64-bit S2 cell identifier: a quadrilateral region of the unit
// sphere located by cube face and Hilbert-curve position.
type CellID = s2.CellID

// queryCellLevel is the fixed level at which the reverse resolver indexes
// and searches cities — a design parameter of C7, not of this library.
// A level-10 cell covers roughly 45–130 km² (about 81 km² on average).
const queryCellLevel = 10

// cellFromLatLng returns the leaf cell (level 30) containing the point at
// (latRad, lngRad), both in radians.
func cellFromLatLng(latRad, lngRad float64) CellID {
	ll := s2.LatLng{Lat: s1.Angle(latRad), Lng: s1.Angle(lngRad)}
	return s2.CellIDFromLatLng(ll)
}

// parentAtLevel returns the ancestor of cell at the given S2 level.
func parentAtLevel(cell CellID, level int) CellID {
	return cell.Parent(level)
}

// edgeNeighbors returns the four cells sharing an edge with cell, at the
// same level as cell. Neighbors across a cube-face boundary are resolved
// by s2's own face-wrapping logic.
func edgeNeighbors(cell CellID) [4]CellID {
	return cell.EdgeNeighbors()
}

// cellFace returns the cube face (0..5) a cell belongs to.
func cellFace(cell CellID) int {
	return cell.Face()
}

// angularDistance computes the great-circle distance, in radians, between
// two points on the unit sphere given in radians, via the haversine
// formula. The argument to asin is clamped to [0, 1] to guard against
// floating-point overshoot for antipodal or coincident points.
func angularDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat2 - lat1
	dLng := lng2 - lng1

	sinDLat2 := math.Sin(dLat / 2)
	sinDLng2 := math.Sin(dLng / 2)

	a := sinDLat2*sinDLat2 + math.Cos(lat1)*math.Cos(lat2)*sinDLng2*sinDLng2
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return 2 * math.Asin(math.Sqrt(a))
}

// degToRad converts degrees to radians.
func degToRad(d float64) float64 { return d * math.Pi / 180 }
