package speed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodMs(t *testing.T) {
	assert.Equal(t, 7000.0, PeriodMs(1))
	assert.Equal(t, 1000.0, PeriodMs(100))
	assert.InDelta(t, 4030.303, PeriodMs(50), 0.001)
}

func TestPeriodMs_Clamps(t *testing.T) {
	assert.Equal(t, PeriodMs(Min), PeriodMs(-5))
	assert.Equal(t, PeriodMs(Max), PeriodMs(250))
}

func TestPeriodMs_MonotonicallyDecreasing(t *testing.T) {
	prev := PeriodMs(Min)
	for v := Min + 1; v <= Max; v++ {
		cur := PeriodMs(v)
		assert.Less(t, cur, prev, "period at %d", v)
		prev = cur
	}
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, 7*time.Second, Period(1))
	assert.Equal(t, time.Second, Period(100))
	assert.InDelta(t, float64(4030303030*time.Nanosecond), float64(Period(50)), float64(time.Microsecond))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{7000, "7.0s"},
		{4030.303, "4.0s"},
		{1000, "1.0s"},
		{1060.6, "1.1s"},
		{999.4, "999ms"},
		{12.5, "13ms"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.ms))
		})
	}
}

func TestStep(t *testing.T) {
	assert.Equal(t, 51, Step(50, 1))
	assert.Equal(t, 40, Step(50, -10))
	assert.Equal(t, Max, Step(98, 5))
	assert.Equal(t, Min, Step(3, -5))
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.0, Fraction(Min))
	assert.Equal(t, 1.0, Fraction(Max))
	assert.InDelta(t, 0.4949, Fraction(50), 0.0001)
}
