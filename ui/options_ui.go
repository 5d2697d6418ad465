package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/automoto/gohta/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// OptionsUI holds the ebitenui widgets drawn on the OPTIONS menu
type OptionsUI struct {
	UI      *ebitenui.UI
	Options *components.OptionsData

	// Callbacks
	OnChange func()
	OnBack   func()

	// Widget references for updates
	volumeButton     *widget.Button
	muteButton       *widget.Button
	fullscreenButton *widget.Button
	resolutionButton *widget.Button

	labelFace  text.Face
	buttonFace text.Face
}

// NewOptionsUI creates the options widgets. The menu draws the background
// and title; the widgets fill the area below the title.
func NewOptionsUI(options *components.OptionsData, onChange, onBack func()) *OptionsUI {
	oui := &OptionsUI{
		Options:  options,
		OnChange: onChange,
		OnBack:   onBack,
	}

	oui.loadFonts()
	oui.buildUI()
	oui.UpdateUI()

	return oui
}

// Update runs the widget tree for one tick
func (oui *OptionsUI) Update() {
	oui.UI.Update()
}

// Draw renders the widget tree
func (oui *OptionsUI) Draw(screen *ebiten.Image) {
	oui.UI.Draw(screen)
}

func (oui *OptionsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	oui.labelFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Button.FontSize * 0.8,
	}
	oui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Button.FontSize,
	}
}

func (oui *OptionsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	w := systems.NewWindow(cfg.C.Width, cfg.C.Height, cfg.C.HeightDivisions)
	top := int(cfg.Menu.ButtonStartY*float64(w.HeightUnit)) - cfg.Button.Height/2
	padding := widget.Insets{Top: top}

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(int(cfg.Menu.ButtonGapY*float64(w.HeightUnit))),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	oui.volumeButton = oui.addRow(contentContainer, "SFX VOLUME", func() {
		systems.CycleSFXVolume(oui.Options)
	})
	oui.muteButton = oui.addRow(contentContainer, "MUTE", func() {
		systems.ToggleMute(oui.Options)
	})
	oui.fullscreenButton = oui.addRow(contentContainer, "FULLSCREEN", func() {
		systems.ToggleFullscreen(oui.Options)
		systems.ApplyDisplay(oui.Options)
	})
	oui.resolutionButton = oui.addRow(contentContainer, "RESOLUTION", func() {
		systems.CycleResolution(oui.Options, +1)
		systems.ApplyDisplay(oui.Options)
	})

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Button.Width, cfg.Button.Height),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text("BACK TO MAIN", &oui.buttonFace, oui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if oui.OnBack != nil {
				oui.OnBack()
			}
		}),
	)
	contentContainer.AddChild(backButton)

	rootContainer.AddChild(contentContainer)

	oui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// addRow adds a "LABEL [value]" row whose button runs change and refreshes
func (oui *OptionsUI) addRow(parent *widget.Container, label string, change func()) *widget.Button {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(16, 0),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, nil),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &oui.labelFace, &widget.LabelColor{
			Idle: cfg.Menu.Options.TitleColor,
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Button.Width/2, cfg.Button.Height)),
			widget.TextOpts.Position(widget.TextPositionStart, widget.TextPositionCenter),
		),
	))

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Button.Width/2, cfg.Button.Height),
		),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text("", &oui.buttonFace, oui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			change()
			oui.UpdateUI()
			if oui.OnChange != nil {
				oui.OnChange()
			}
		}),
	)
	row.AddChild(button)

	parent.AddChild(row)
	return button
}

func (oui *OptionsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Button.FillColor)
	hover := image.NewNineSliceColor(cfg.Button.HoverColor)
	pressed := image.NewNineSliceColor(cfg.Button.FocusColor)
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (oui *OptionsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     cfg.Button.TextColor,
		Hover:    cfg.Button.TextColor,
		Pressed:  cfg.Button.TextColor,
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

// UpdateUI refreshes button labels from the options state
func (oui *OptionsUI) UpdateUI() {
	setButtonLabel(oui.volumeButton, systems.VolumeLabel(oui.Options))
	setButtonLabel(oui.muteButton, systems.OnOffLabel(oui.Options.Muted))
	setButtonLabel(oui.fullscreenButton, systems.OnOffLabel(oui.Options.Fullscreen))
	setButtonLabel(oui.resolutionButton, systems.ResolutionLabel(oui.Options))

	// Resolution only applies in windowed mode
	if oui.resolutionButton != nil {
		oui.resolutionButton.GetWidget().Disabled = oui.Options.Fullscreen
	}
}

func setButtonLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}
