package widget

import (
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestIDPacking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.widget")
	defer teardown()
	//
	id := MakeID(Slider, 42)
	assert.Equal(t, ID(int32(Slider)<<16|42), id)
	assert.Equal(t, Slider, id.Type())
	assert.Equal(t, 42, id.Index())
	assert.Equal(t, "slider#42", id.String())
	sub := MakeID(Sublayout, 3)
	assert.Equal(t, Sublayout, sub.Type())
	assert.Equal(t, 3, sub.Index())
	assert.Equal(t, Invalid, NoID.Type())
	assert.Equal(t, Checkbox, TypeFromString("checkbox"))
	assert.Equal(t, Invalid, TypeFromString("gizmo"))
}

func TestStoreAllocateRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.widget")
	defer teardown()
	//
	s := NewStore()
	b1 := s.Allocate(Button)
	b2 := s.Allocate(Button)
	l1 := s.Allocate(Label)
	assert.Equal(t, 0, b1.Index())
	assert.Equal(t, 1, b2.Index())
	assert.Equal(t, 0, l1.Index())
	assert.Equal(t, 2, s.Count(Button))
	assert.Equal(t, 0, s.Count(Slider))
	//
	box := frame.BoxAt(dimen.R(1, 2, 3, 4))
	st := style.Descriptor{FgColor: 7}
	s.Record(b2, box, &st)
	assert.Equal(t, dimen.R(1, 2, 3, 4), s.Geometry(b2))
	assert.Equal(t, box, s.Box(b2))
	assert.Equal(t, uint32(7), uint32(s.Style(b2).FgColor))
	n := 0
	s.Each(Button, func(id ID, e *Entry) {
		if id == b2 {
			assert.True(t, e.Recorded)
		} else {
			assert.False(t, e.Recorded)
		}
		n++
	})
	assert.Equal(t, 2, n)
}

func TestStoreStatesSurviveReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.widget")
	defer teardown()
	//
	s := NewStore()
	id := s.Allocate(Checkbox)
	assert.Equal(t, style.StateDefault, s.State(id))
	s.SetState(id, style.StateChecked|style.StateHovered)
	s.Reset()
	assert.Equal(t, 0, s.Count(Checkbox))
	again := s.Allocate(Checkbox)
	assert.Equal(t, id, again)
	assert.Equal(t, style.StateChecked|style.StateHovered, s.State(again))
	assert.False(t, s.Box(again).Margin.Width() > 0)
}

func TestStoreUnknownID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.widget")
	defer teardown()
	//
	s := NewStore()
	s.Allocate(Label)
	defer func() {
		r := recover()
		assert.NotNil(t, r)
		err, ok := r.(error)
		assert.True(t, ok)
		assert.Equal(t, core.EMISSING, core.Code(err))
	}()
	s.Geometry(MakeID(Label, 5))
}
