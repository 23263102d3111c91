// Package geodetic implements the coordinate computation strategies a run
// can be configured with.
//
// [Flat] treats the earth as a plane with a constant radius scale,
// [Spherical] follows great circles on a sphere, and [WGS84] solves the
// Vincenty direct problem on the WGS84 ellipsoid. Strategies are written to
// options files by name ("flat", "spherical", "wgs84").
package geodetic
