package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func TestValidateEmptyGrid(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), domain.Grid{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateRowConflict(t *testing.T) {
	var g domain.Grid
	g[2][1], g[2][7] = 6, 6

	ok, conf, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.Position{Row: 2, Col: 7})
}

func TestValidateColConflict(t *testing.T) {
	var g domain.Grid
	g[0][4], g[8][4] = 3, 3

	ok, conf, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.Position{Row: 8, Col: 4})
}

func TestValidateBoxConflict(t *testing.T) {
	var g domain.Grid
	g[3][3], g[5][5] = 9, 9 // same center box, different row and col

	ok, conf, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.Position{Row: 5, Col: 5})
}

func TestComplete(t *testing.T) {
	// shifted-rows base pattern, a valid complete solution
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	v := New()
	assert.True(t, v.Complete(g))

	g[4][4] = domain.Empty
	assert.False(t, v.Complete(g))

	g[4][4] = g[4][3] // filled again, but conflicting
	assert.False(t, v.Complete(g))
}
