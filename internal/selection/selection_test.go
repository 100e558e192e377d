package selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		ids     []int
		wantErr error
	}{
		{"default pair", []int{1, 2}, nil},
		{"all eight", []int{8, 7, 6, 5, 4, 3, 2, 1}, nil},
		{"single", []int{1}, ErrTooFew},
		{"empty", nil, ErrTooFew},
		{"unknown", []int{1, 9}, ErrUnknownColor},
		{"zero id", []int{0, 1}, ErrUnknownColor},
		{"duplicate", []int{1, 1, 2}, ErrDuplicateColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.ids)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ids, s.IDs())
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	ids := []int{1, 2, 3}
	s, err := New(ids)
	require.NoError(t, err)

	ids[0] = 8
	assert.Equal(t, []int{1, 2, 3}, s.IDs())
}

func TestToggle_AppendsInInsertionOrder(t *testing.T) {
	s := Default()

	assert.True(t, s.Toggle(5))
	assert.True(t, s.Toggle(3))
	assert.Equal(t, []int{1, 2, 5, 3}, s.IDs())

	assert.True(t, s.Toggle(2))
	assert.Equal(t, []int{1, 5, 3}, s.IDs())
}

func TestToggle_RejectsBelowFloor(t *testing.T) {
	s := Default()

	assert.False(t, s.CanToggle(1))
	assert.False(t, s.Toggle(1))
	assert.False(t, s.Toggle(2))
	assert.Equal(t, []int{1, 2}, s.IDs())
}

func TestToggle_RejectsAboveCeiling(t *testing.T) {
	s, err := New([]int{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	// With every preset active the only inactive ids are outside the table.
	assert.True(t, s.CanToggle(4))
	assert.False(t, s.CanToggle(9))
	assert.False(t, s.Toggle(9))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s.IDs())
	assert.Equal(t, MaxActive, s.Len())
}

func TestToggle_FullSelectionRemoveThenAdd(t *testing.T) {
	s := Default()
	for id := 3; id <= 8; id++ {
		require.True(t, s.Toggle(id))
	}
	require.Equal(t, MaxActive, s.Len())

	require.True(t, s.Toggle(4))
	require.True(t, s.Toggle(4))
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8, 4}, s.IDs())
}

func TestToggle_UnknownID(t *testing.T) {
	s := Default()
	assert.False(t, s.Toggle(0))
	assert.False(t, s.Toggle(42))
	assert.Equal(t, []int{1, 2}, s.IDs())
}

func TestToggle_LengthStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := Default()

	for i := 0; i < 5000; i++ {
		before := s.IDs()
		id := rng.Intn(10)
		changed := s.Toggle(id)

		assert.GreaterOrEqual(t, s.Len(), MinActive)
		assert.LessOrEqual(t, s.Len(), MaxActive)
		if !changed {
			assert.Equal(t, before, s.IDs(), "rejected toggle of %d must not mutate", id)
		}
	}
}
