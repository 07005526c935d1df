package view

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface records draw commands in call order
type fakeSurface struct {
	ops    []string
	colors []color.RGBA
}

func (s *fakeSurface) SetClearColor(c color.RGBA) {
	s.ops = append(s.ops, "setClearColor")
	s.colors = append(s.colors, c)
}

func (s *fakeSurface) Clear() {
	s.ops = append(s.ops, "clear")
}

func newContext(in Input) (*Context, *fakeSurface) {
	surface := &fakeSurface{}
	return &Context{Surface: surface, Input: in}, surface
}

func TestViews_ImplementView(t *testing.T) {
	// Compile-time check that both views implement View
	var _ View = ViewA{}
	var _ View = ViewB{}
}

func TestView_QuitRequestedTerminates(t *testing.T) {
	for _, v := range []View{ViewA{}, ViewB{}} {
		// Quit wins regardless of the other fields
		for _, in := range []Input{
			{Quit: true},
			{Quit: true, Escape: true},
			{Quit: true, Space: true},
			{Quit: true, Escape: true, Space: true},
		} {
			ctx, surface := newContext(in)
			action := v.Render(ctx, 1.0/60.0)

			assert.Equal(t, ActionQuit, action.Kind)
			assert.Nil(t, action.Next)
			assert.Empty(t, surface.ops, "No draw commands on terminate")
		}
	}
}

func TestView_EscapeTerminates(t *testing.T) {
	for _, v := range []View{ViewA{}, ViewB{}} {
		ctx, surface := newContext(Input{Escape: true})
		action := v.Render(ctx, 1.0/60.0)

		assert.Equal(t, ActionQuit, action.Kind)
		assert.Empty(t, surface.ops)
	}
}

func TestViewA_SpaceSwitchesToViewB(t *testing.T) {
	ctx, surface := newContext(Input{Space: true})
	action := ViewA{}.Render(ctx, 1.0/60.0)

	assert.Equal(t, ActionChange, action.Kind)
	require.NotNil(t, action.Next)
	assert.IsType(t, ViewB{}, action.Next)
	assert.Empty(t, surface.ops, "No draw commands on switch")
}

func TestViewB_SpaceSwitchesToViewA(t *testing.T) {
	ctx, _ := newContext(Input{Space: true})
	action := ViewB{}.Render(ctx, 1.0/60.0)

	assert.Equal(t, ActionChange, action.Kind)
	require.NotNil(t, action.Next)
	assert.IsType(t, ViewA{}, action.Next)
}

func TestView_TerminateBeatsSwitch(t *testing.T) {
	for _, v := range []View{ViewA{}, ViewB{}} {
		for _, in := range []Input{
			{Escape: true, Space: true},
			{Quit: true, Space: true},
		} {
			ctx, _ := newContext(in)
			action := v.Render(ctx, 1.0/60.0)

			assert.Equal(t, ActionQuit, action.Kind)
		}
	}
}

func TestViewA_IdleClearsRed(t *testing.T) {
	ctx, surface := newContext(Input{})
	action := ViewA{}.Render(ctx, 1.0/60.0)

	assert.Equal(t, ActionNone, action.Kind)
	assert.Nil(t, action.Next)

	// Exactly one clear-color call followed by one clear call
	require.Equal(t, []string{"setClearColor", "clear"}, surface.ops)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, surface.colors[0])
}

func TestViewB_IdleClearsBlue(t *testing.T) {
	ctx, surface := newContext(Input{})
	action := ViewB{}.Render(ctx, 1.0/60.0)

	assert.Equal(t, ActionNone, action.Kind)

	require.Equal(t, []string{"setClearColor", "clear"}, surface.ops)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, surface.colors[0])
}

func TestView_DeltaTimeIgnored(t *testing.T) {
	// The contract carries dt but the views do not depend on it
	for _, dt := range []float64{0, 1.0 / 60.0, 5.0} {
		ctx, _ := newContext(Input{Space: true})
		action := ViewA{}.Render(ctx, dt)

		assert.Equal(t, ActionChange, action.Kind)
	}
}

func TestFromName(t *testing.T) {
	a, err := FromName("a")
	require.NoError(t, err)
	assert.IsType(t, ViewA{}, a)

	b, err := FromName("b")
	require.NoError(t, err)
	assert.IsType(t, ViewB{}, b)

	_, err = FromName("c")
	assert.Error(t, err)
}

func TestActionKind_String(t *testing.T) {
	assert.Equal(t, "None", ActionNone.String())
	assert.Equal(t, "Change", ActionChange.String())
	assert.Equal(t, "Quit", ActionQuit.String())
	assert.Equal(t, "Unknown", ActionKind(99).String())
}

func TestActionConstructors(t *testing.T) {
	assert.Equal(t, Action{Kind: ActionNone}, None())
	assert.Equal(t, Action{Kind: ActionQuit}, Quit())

	action := ChangeTo(ViewB{})
	assert.Equal(t, ActionChange, action.Kind)
	assert.IsType(t, ViewB{}, action.Next)
}
