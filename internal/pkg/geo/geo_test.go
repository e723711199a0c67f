package geo

import (
	"math"
	"testing"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := HaversineDistance(-6.2088, 106.8456, -6.2088, 106.8456)
	if d != 0 {
		t.Errorf("distance between identical points = %f, want 0", d)
	}
}

func TestHaversineDistance_KnownDistance(t *testing.T) {
	// Jakarta (Monas) to Bandung (Gedung Sate), roughly 118 km.
	d := HaversineDistance(-6.1754, 106.8272, -6.9025, 107.6186)
	if d < 115000 || d > 122000 {
		t.Errorf("Jakarta-Bandung distance = %f m, want ~118 km", d)
	}
}

func TestHaversineDistance_ShortRange(t *testing.T) {
	// Two points ~111 meters apart (0.001 degrees of latitude).
	d := HaversineDistance(-6.2088, 106.8456, -6.2078, 106.8456)
	if math.Abs(d-111.2) > 1.0 {
		t.Errorf("short-range distance = %f m, want ~111.2 m", d)
	}
}

func TestHaversineDistance_Symmetry(t *testing.T) {
	a := HaversineDistance(-6.2088, 106.8456, -7.2575, 112.7521)
	b := HaversineDistance(-7.2575, 112.7521, -6.2088, 106.8456)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance not symmetric: %f vs %f", a, b)
	}
}
