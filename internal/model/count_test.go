package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountPolicy_Calculate(t *testing.T) {
	tests := []struct {
		name   string
		policy CountPolicy
		size   int
		want   int
	}{
		{"empty population", NewCountPolicy(Int(1), nil, nil), 0, 0},
		{"negative population", NewCountPolicy(Int(1), nil, nil), -3, 0},
		{"default fraction rounds up", CountPolicy{}, 10, 3},
		{"default fraction on one", CountPolicy{}, 1, 1},
		{"exact product is not bumped", NewCountPolicy(nil, nil, Float(0.7)), 10, 7},
		{"ceil", NewCountPolicy(nil, nil, Float(0.25)), 10, 3},
		{"ceiling", NewCountPolicy(nil, Int(2), Float(0.5)), 10, 2},
		{"floor", NewCountPolicy(Int(4), nil, Float(0.1)), 10, 4},
		{"floor beats ceiling", NewCountPolicy(Int(5), Int(2), Float(0.1)), 10, 5},
		{"zero fraction", NewCountPolicy(nil, nil, Float(0)), 10, 0},
		{"zero fraction with floor", NewCountPolicy(Int(1), nil, Float(0)), 10, 1},
		{"negative fraction", NewCountPolicy(nil, nil, Float(-0.5)), 10, 0},
		{"negative fraction with floor", NewCountPolicy(Int(2), nil, Float(-0.5)), 10, 2},
		{"NaN fraction", NewCountPolicy(nil, nil, Float(math.NaN())), 10, 0},
		{"fraction above one", NewCountPolicy(nil, nil, Float(2)), 3, 6},
		{"floor may exceed size", NewCountPolicy(Int(10), nil, nil), 3, 10},
		{"tiny fraction still rounds up", NewCountPolicy(nil, nil, Float(1e-10)), 1, 1},
		{"product just above a whole number", NewCountPolicy(nil, nil, Float(0.3)), 10, 3},
		{"huge fraction saturates", NewCountPolicy(nil, nil, Float(1e300)), 10, math.MaxInt},
		{"infinite fraction saturates", NewCountPolicy(nil, nil, Float(math.Inf(1))), 10, math.MaxInt},
		{"huge fraction with ceiling", NewCountPolicy(nil, Int(7), Float(1e300)), 10, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Calculate(tt.size))
		})
	}
}
