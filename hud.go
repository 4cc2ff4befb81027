package main

import (
	"image/color"

	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
	"github.com/milk9111/twocars/ecs/component"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUD is a corner panel listing each car's transform in CSS notation.
type HUD struct {
	ui     *ebitenui.UI
	labels []*widget.Text
}

// NewHUD builds the panel with colored nine-slices and the built-in basic
// font, so no theme assets are needed.
func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dimColor := color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("WASD / arrows to drive, F1 hides this panel, Esc quits", &face, dimColor),
	))

	hud := &HUD{labels: make([]*widget.Text, drive.EntityCount)}
	for i := range hud.labels {
		label := widget.NewText(
			widget.TextOpts.Text(drive.Transform{}.String(), &face, textColor),
		)
		hud.labels[i] = label
		panel.AddChild(label)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	hud.ui = &ebitenui.UI{Container: root}
	return hud
}

// Sync copies the cars' transform text into the labels.
func (h *HUD) Sync(w *ecs.World) {
	ecs.ForEach(w, component.CarComponent.Kind(), func(e ecs.Entity, car *component.Car) {
		if car.Slot < 0 || car.Slot >= len(h.labels) {
			return
		}
		text, ok := ecs.Get(w, e, component.TransformTextComponent.Kind())
		if !ok {
			return
		}
		h.labels[car.Slot].Label = car.Name + ": " + text.Value
	})
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
