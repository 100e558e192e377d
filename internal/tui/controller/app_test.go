package controller

import (
	"context"
	"testing"

	"colorcycle/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppModel(t *testing.T) {
	m := &model.Model{Width: 80, Height: 24}
	app := NewAppModel(m)

	assert.Equal(t, m, app.model)
}

func TestAppModel_Init(t *testing.T) {
	app := NewAppModel(newTestModel(t))
	assert.NotNil(t, app.Init())
}

func TestAppModel_UpdateAndView(t *testing.T) {
	app := NewAppModel(newTestModel(t))

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	next, ok := updated.(AppModel)
	require.True(t, ok)
	assert.Equal(t, 100, next.model.Width)
	assert.Contains(t, next.View(), "Speed")
}

func TestNewProgram(t *testing.T) {
	p, err := NewProgram(context.Background(), model.TUIConfig{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, p)
}
