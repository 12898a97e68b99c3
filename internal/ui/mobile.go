package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI chooses between desktop and mobile variants of the layout
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// SplitLayout puts the entry list beside the editor on desktop and in
// landscape, and above it on a portrait phone
func (m *MobileUI) SplitLayout(list, editorPanel fyne.CanvasObject) *container.Split {
	if m.IsMobileDevice() && !m.IsLandscape() {
		split := container.NewVSplit(list, editorPanel)
		split.Offset = MobileListOffset
		return split
	}

	split := container.NewHSplit(list, editorPanel)
	split.Offset = DesktopListOffset
	return split
}

// CreateEntry creates a single-line entry with a placeholder
func (m *MobileUI) CreateEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	if m.IsMobileDevice() {
		entry.Wrapping = fyne.TextWrapOff
	}
	return entry
}

// CreateButton creates a button that meets the touch target size on mobile
func (m *MobileUI) CreateButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MinTouchTargetSize*2, MinTouchTargetSize))
	}
	return btn
}
