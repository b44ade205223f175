package coordinate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, float32(5), Distance(New[float32](0, 0), New[float32](3, 4)))
	assert.Equal(t, 5.0, Distancef(New(0.0, 0.0), New(3.0, 4.0)))
	assert.Equal(t, 13.0, Distancef(New(-2.0, 1.0), New(3.0, 13.0)))
}

func TestDistance_MethodDelegates(t *testing.T) {
	a := New[float32](10, 20)
	b := New[float32](20, 30)
	assert.Equal(t, Distancef(a, b), a.Distance(b))

	ia := New[uint16](10, 20)
	ib := New[uint16](20, 30)
	assert.Equal(t,
		Distance(Convert[float32](ia), Convert[float32](ib)),
		ia.Distance(ib),
	)
	assert.InDelta(t, math.Sqrt(200), float64(ia.Distance(ib)), 1e-5)
}

func TestDistance_Symmetric(t *testing.T) {
	points := []Coord[float64]{
		New(0.0, 0.0),
		New(1.5, -2.25),
		New(-1e6, 3e-3),
		New(42.0, 42.0),
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Distancef(p, p))
		for _, q := range points {
			assert.Equal(t, Distancef(p, q), Distancef(q, p), "%v %v", p, q)
		}
	}
}

func TestDistance_SymmetricFloat32(t *testing.T) {
	points := []Coord[float32]{
		New[float32](0, 0),
		New[float32](1.5, -2.25),
		New[float32](-1e4, 3e-3),
		New[float32](42, 42),
	}
	for _, p := range points {
		assert.Equal(t, float32(0), Distance(p, p))
		assert.Equal(t, float32(0), p.Distance(p))
		for _, q := range points {
			assert.Equal(t, Distance(p, q), Distance(q, p), "%v %v", p, q)
			assert.Equal(t, p.Distance(q), q.Distance(p), "%v %v", p, q)
		}
	}
}

func TestDistance_SymmetricIntegerMethod(t *testing.T) {
	points := []Coord[int]{
		New(0, 0),
		New(3, 4),
		New(-7, 12),
		New(1000, -1000),
	}
	for _, p := range points {
		assert.Equal(t, float32(0), p.Distance(p))
		for _, q := range points {
			assert.Equal(t, p.Distance(q), q.Distance(p), "%v %v", p, q)
		}
	}
	assert.Equal(t, float32(5), New(0, 0).Distance(New(3, 4)))

	u := []Coord[uint16]{New[uint16](10, 20), New[uint16](20, 30), New[uint16](0, 0)}
	for _, p := range u {
		assert.Equal(t, float32(0), p.Distance(p))
		for _, q := range u {
			assert.Equal(t, p.Distance(q), q.Distance(p), "%v %v", p, q)
		}
	}
}

func TestDistance_Float32Precision(t *testing.T) {
	p := New[float32](0.1, 0.2)
	q := New[float32](0.4, 0.6)
	dx, dy := q.X-p.X, q.Y-p.Y
	want := float32(math.Sqrt(float64(float32(dx*dx) + float32(dy*dy))))
	assert.Equal(t, want, Distance(p, q))
}

func TestDistance_NonFinite(t *testing.T) {
	nan := Distancef(New(math.NaN(), 0), New(0.0, 0.0))
	assert.True(t, math.IsNaN(nan))

	inf := Distancef(New(math.Inf(-1), 0), New(0.0, 0.0))
	assert.True(t, math.IsInf(inf, 1))
}

func TestDistanceSquared(t *testing.T) {
	assert.Equal(t, 25, New(0, 0).DistanceSquared(New(3, 4)))
	assert.Equal(t, 25, New(3, 4).DistanceSquared(New(0, 0)))
	assert.Equal(t, 0, New(-7, 9).DistanceSquared(New(-7, 9)))
	assert.Equal(t, 6.25, New(1.0, 1.0).DistanceSquared(New(3.5, 1.0)))
}
