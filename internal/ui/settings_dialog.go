package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/langlearn/internal/config"
	"github.com/ytget/langlearn/internal/vocab"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	directoryEntry *widget.Entry
	policySelect   *widget.Select
	languageSelect *widget.Select

	// display name -> stored value
	policyValues   map[string]string
	languageValues map[string]string
}

// ShowSettingsDialog creates the settings dialog and shows it. onSaved runs
// after the user confirmed and the settings were stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.directoryEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	directoryRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.directoryEntry)

	// policy names map onto the policy_<name> text keys
	sd.policyValues = make(map[string]string)
	policyOptions := []string{}
	for _, name := range sd.settings.GetLoadPolicyOptions() {
		label := l.GetText("policy_" + name)
		sd.policyValues[label] = name
		policyOptions = append(policyOptions, label)
	}
	sd.policySelect = widget.NewSelect(policyOptions, nil)

	sd.languageValues = make(map[string]string)
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for _, code := range sortedKeys(languageLabels) {
		sd.languageValues[languageLabels[code]] = code
		languageOptions = append(languageOptions, languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDefaultDirectory)+":"),
		directoryRow,

		widget.NewLabel(l.GetText(KeyLoadPolicy)+":"),
		sd.policySelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyInterfaceLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.directoryEntry.SetText(sd.settings.GetLastDirectory())

	policy := sd.settings.GetLoadPolicy().String()
	for label, value := range sd.policyValues {
		if value == policy {
			sd.policySelect.SetSelected(label)
		}
	}

	language := sd.settings.GetLanguage()
	for label, value := range sd.languageValues {
		if value == language {
			sd.languageSelect.SetSelected(label)
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.directoryEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the values currently shown in the dialog
func (sd *SettingsDialog) apply() {
	if dir := sd.directoryEntry.Text; dir != "" {
		sd.settings.SetLastDirectory(dir)
	}

	if name, ok := sd.policyValues[sd.policySelect.Selected]; ok {
		if policy, err := vocab.ParseLoadPolicy(name); err == nil {
			sd.settings.SetLoadPolicy(policy)
		}
	}

	if code, ok := sd.languageValues[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
