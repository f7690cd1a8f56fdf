package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/shadergrid/internal/panel"
	"github.com/Faultbox/shadergrid/internal/uniform"
)

type widget interface {
	draw(id int)
}

type numberWidget struct {
	value          *float32
	min, max, step float32
	label          string
}

func (w *numberWidget) draw(id int) {
	if imgui.SliderFloatV(fmt.Sprintf("%s##%d", w.label, id), w.value, w.min, w.max, "%.3f", imgui.SliderFlagsNone) {
		*w.value = panel.Snap(*w.value, w.min, w.max, w.step)
	}
}

type colorWidget struct {
	holder   *uniform.RGB
	label    string
	onChange func()
}

func (w *colorWidget) draw(id int) {
	if imgui.ColorEdit3(fmt.Sprintf("%s##%d", w.label, id), (*[3]float32)(w.holder)) {
		w.onChange()
	}
}

type section struct {
	title   string
	widgets []widget
}

// Controls is an ImGui parameter panel. It implements panel.Panel: widgets
// registered once are redrawn every frame by Draw.
type Controls struct {
	Title    string
	sections []*section
}

// NewControls creates an empty panel.
func NewControls(title string) *Controls {
	return &Controls{Title: title}
}

// Section starts a collapsible group.
func (c *Controls) Section(title string) {
	c.sections = append(c.sections, &section{title: title})
}

// AddNumber adds a slider writing through value.
func (c *Controls) AddNumber(value *float32, min, max, step float32, label string) {
	c.current().widgets = append(c.current().widgets, &numberWidget{value, min, max, step, label})
}

// AddColor adds a colour editor writing through holder.
func (c *Controls) AddColor(holder *uniform.RGB, label string, onChange func()) {
	c.current().widgets = append(c.current().widgets, &colorWidget{holder, label, onChange})
}

func (c *Controls) current() *section {
	if len(c.sections) == 0 {
		c.Section("Controls")
	}
	return c.sections[len(c.sections)-1]
}

// Len returns the number of registered widgets.
func (c *Controls) Len() int {
	n := 0
	for _, s := range c.sections {
		n += len(s.widgets)
	}
	return n
}

// Draw renders the panel as a window at the given position and size.
func (c *Controls) Draw(x, y, w, h float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse
	if imgui.BeginV(c.Title, nil, flags) {
		if len(c.sections) == 0 {
			imgui.TextDisabled("No controls")
		}
		id := 0
		for i, s := range c.sections {
			header := fmt.Sprintf("%s##section%d", s.title, i)
			if !imgui.CollapsingHeaderTreeNodeFlagsV(header, imgui.TreeNodeFlagsDefaultOpen) {
				id += len(s.widgets)
				continue
			}
			for _, wg := range s.widgets {
				wg.draw(id)
				id++
			}
		}
	}
	imgui.End()
}

var _ panel.Panel = (*Controls)(nil)
