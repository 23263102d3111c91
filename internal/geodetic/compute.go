package geodetic

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var ErrUnknownStrategy = errors.New("geodetic: unknown computation strategy")

const (
	// EarthRadius is the mean radius used by the flat approximation, in meters.
	EarthRadius = 6371000.0

	// EarthRotation is the sidereal angular rate in rad/s.
	EarthRotation = 7.2921150e-5

	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563
	wgs84B = wgs84A * (1 - wgs84F)

	vincentyMaxIter = 200
	vincentyEpsilon = 1e-12
)

// Coordinate is a position on the Earth: degrees latitude/longitude and
// meters altitude above the reference surface.
type Coordinate struct {
	Lat float64
	Lon float64
	Alt float64
}

// Point returns the coordinate as an orb point (lon, lat).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// AddCoordinate moves origin by a local east/north/up offset in meters.
func (s Strategy) AddCoordinate(origin Coordinate, east, north, up float64) Coordinate {
	out := origin
	out.Alt += up
	if east == 0 && north == 0 {
		return out
	}

	switch s {
	case Flat:
		lat := origin.Lat * math.Pi / 180
		out.Lat = origin.Lat + north/EarthRadius*180/math.Pi
		out.Lon = origin.Lon + east/(EarthRadius*math.Cos(lat))*180/math.Pi
	case WGS84:
		dist := math.Hypot(east, north)
		azimuth := math.Atan2(east, north)
		lat, lon := vincentyDirect(origin.Lat*math.Pi/180, origin.Lon*math.Pi/180, azimuth, dist)
		out.Lat = lat * 180 / math.Pi
		out.Lon = lon * 180 / math.Pi
	default:
		dist := math.Hypot(east, north)
		bearing := math.Atan2(east, north) * 180 / math.Pi
		p := geo.PointAtBearingAndDistance(origin.Point(), bearing, dist)
		out.Lat = p.Lat()
		out.Lon = p.Lon()
	}

	out.Lon = normalizeLon(out.Lon)
	return out
}

// CoriolisAcceleration returns -2 Ω × v in the local east/north/up frame at
// the given position. Up is the ellipsoid normal, so the geodetic latitude is
// used directly for both round-earth strategies. The flat approximation
// ignores Earth rotation.
func (s Strategy) CoriolisAcceleration(at Coordinate, velocity [3]float64) [3]float64 {
	if s == Flat {
		return [3]float64{}
	}

	lat := at.Lat * math.Pi / 180
	sinLat, cosLat := math.Sincos(lat)
	wy := EarthRotation * cosLat
	wz := EarthRotation * sinLat

	vx, vy, vz := velocity[0], velocity[1], velocity[2]
	return [3]float64{
		-2 * (wy*vz - wz*vy),
		-2 * (wz * vx),
		-2 * (-wy * vx),
	}
}

func vincentyDirect(lat1, lon1, alpha1, s float64) (float64, float64) {
	sinAlpha1, cosAlpha1 := math.Sincos(alpha1)

	tanU1 := (1 - wgs84F) * math.Tan(lat1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	sigma1 := math.Atan2(tanU1, cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cosSqAlpha := 1 - sinAlpha*sinAlpha
	uSq := cosSqAlpha * (wgs84A*wgs84A - wgs84B*wgs84B) / (wgs84B * wgs84B)
	a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := s / (wgs84B * a)
	var sinSigma, cosSigma, cos2SigmaM float64
	for i := 0; i < vincentyMaxIter; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma, cosSigma = math.Sincos(sigma)
		deltaSigma := b * sinSigma * (cos2SigmaM + b/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			b/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		next := s/(wgs84B*a) + deltaSigma
		done := math.Abs(next-sigma) < vincentyEpsilon
		sigma = next
		if done {
			break
		}
	}

	cos2SigmaM = math.Cos(2*sigma1 + sigma)
	sinSigma, cosSigma = math.Sincos(sigma)

	tmp := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	lat2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1,
		(1-wgs84F)*math.Sqrt(sinAlpha*sinAlpha+tmp*tmp))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	c := wgs84F / 16 * cosSqAlpha * (4 + wgs84F*(4-3*cosSqAlpha))
	l := lambda - (1-c)*wgs84F*sinAlpha*
		(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

	return lat2, lon1 + l
}

func normalizeLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}
