package geodetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"flat", Flat, false},
		{"Spherical", Spherical, false},
		{" WGS84 ", WGS84, false},
		{"ellipsoid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownStrategy, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestValuesAreDescribed(t *testing.T) {
	for _, s := range Values() {
		assert.True(t, s.Valid())
		assert.NotEmpty(t, s.Description(), "strategy %s", s)
		assert.NotEmpty(t, s.Title(), "strategy %s", s)
	}
	assert.False(t, Strategy(42).Valid())
	assert.Equal(t, Spherical, Default)
}

func TestStrategyYAML(t *testing.T) {
	type doc struct {
		Strategy Strategy `yaml:"strategy"`
	}

	out, err := yaml.Marshal(doc{Strategy: WGS84})
	require.NoError(t, err)
	assert.Contains(t, string(out), "strategy: wgs84")

	var in doc
	require.NoError(t, yaml.Unmarshal([]byte("strategy: flat\n"), &in))
	assert.Equal(t, Flat, in.Strategy)

	err = yaml.Unmarshal([]byte("strategy: cube\n"), &in)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestAddCoordinate_SmallOffsetsAgree(t *testing.T) {
	origin := Coordinate{Lat: 0, Lon: 0, Alt: 100}

	for _, s := range Values() {
		got := s.AddCoordinate(origin, 0, 100, 5)
		assert.InDelta(t, 0.000899, got.Lat, 1e-5, "strategy %s", s)
		assert.InDelta(t, 0, got.Lon, 1e-9, "strategy %s", s)
		assert.Equal(t, 105.0, got.Alt, "strategy %s", s)
	}
}

func TestAddCoordinate_WGS84AlongEquator(t *testing.T) {
	got := WGS84.AddCoordinate(Coordinate{}, 1000, 0, 0)

	want := 1000 / wgs84A * 180 / math.Pi
	assert.InDelta(t, want, got.Lon, 1e-7)
	assert.InDelta(t, 0, got.Lat, 1e-9)
}

func TestAddCoordinate_ZeroOffset(t *testing.T) {
	origin := Coordinate{Lat: 45, Lon: 7, Alt: 0}
	for _, s := range Values() {
		assert.Equal(t, origin, s.AddCoordinate(origin, 0, 0, 0))
	}
}

func TestAddCoordinate_WrapsLongitude(t *testing.T) {
	got := Spherical.AddCoordinate(Coordinate{Lat: 0, Lon: 179.9999}, 1000, 0, 0)
	assert.Less(t, got.Lon, 0.0)
	assert.Greater(t, got.Lon, -180.0)
}

func TestCoriolisAcceleration(t *testing.T) {
	assert.Equal(t, [3]float64{}, Flat.CoriolisAcceleration(Coordinate{Lat: 45}, [3]float64{10, 10, 10}))

	// Vertical motion at the equator deflects westward.
	got := Spherical.CoriolisAcceleration(Coordinate{}, [3]float64{0, 0, 10})
	assert.InDelta(t, -2*EarthRotation*10, got[0], 1e-12)
	assert.InDelta(t, 0, got[1], 1e-12)
	assert.InDelta(t, 0, got[2], 1e-12)

	// Northward motion in the northern hemisphere deflects eastward.
	got = WGS84.CoriolisAcceleration(Coordinate{Lat: 60}, [3]float64{0, 10, 0})
	assert.Greater(t, got[0], 0.0)
}

func TestCoriolisAcceleration_WGS84UsesGeodeticLatitude(t *testing.T) {
	at := Coordinate{Lat: 45, Lon: 7}
	v := [3]float64{12, -30, 4}

	want := Spherical.CoriolisAcceleration(at, v)
	got := WGS84.CoriolisAcceleration(at, v)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-15, "component %d", i)
	}
}
