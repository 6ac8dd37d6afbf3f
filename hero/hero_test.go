package hero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		i, n     int
		expected int
	}{
		{"advance", 0, 4, 1},
		{"wrap", 3, 4, 0},
		{"out of range", 9, 4, 2},
		{"negative", -1, 4, 0},
		{"single slide", 0, 1, 0},
		{"no slides", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Next(tt.i, tt.n))
		})
	}
}

func TestNext_CyclesThroughAllSlides(t *testing.T) {
	seen := map[int]bool{}
	i := 0
	for range len(Slides) {
		seen[i] = true
		i = Next(i, len(Slides))
	}
	assert.Len(t, seen, len(Slides))
	assert.Equal(t, 0, i)
}

func TestServicePath(t *testing.T) {
	assert.Equal(t, "/services/boosting", Services[1].Path())
	assert.Len(t, Services, 5)
}

func TestParticles(t *testing.T) {
	a := Particles(20, 42)
	b := Particles(20, 42)

	assert.Len(t, a, 20)
	assert.Equal(t, a, b)
	for _, p := range a {
		assert.GreaterOrEqual(t, p.Left, 0.0)
		assert.Less(t, p.Left, 100.0)
		assert.GreaterOrEqual(t, p.Duration, 3.0)
		assert.Less(t, p.Duration, 5.0)
	}
	assert.Contains(t, a[0].Style(), "animation-duration")
}

func TestDefaultProps(t *testing.T) {
	p := DefaultProps()
	assert.Equal(t, "Shop Now", p.CTAText)
	assert.Equal(t, "/collections/all", p.CTALink)
}
