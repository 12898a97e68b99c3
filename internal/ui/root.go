package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/langlearn/internal/config"
	"github.com/ytget/langlearn/internal/editor"
	"github.com/ytget/langlearn/internal/model"
	"github.com/ytget/langlearn/internal/platform"
	"github.com/ytget/langlearn/internal/vocab"
)

// RootUI represents the main window: the entry list beside the record editor
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	store        *vocab.Store
	form         *editor.Form
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	entryList     *widget.List
	languageLabel *widget.Label
	wordLabel     *widget.Label
	meaningLabel  *widget.Label
	languageEntry *widget.Entry
	wordEntry     *widget.Entry
	meaningEntry  *widget.Entry
	submitBtn     *widget.Button
	resetBtn      *widget.Button
	countLabel    *widget.Label
	statusLabel   *widget.Label

	// set while the list selection is changed from code
	syncingSelection bool
}

// NewRootUI creates the main UI and sets it as the window content
func NewRootUI(window fyne.Window, app fyne.App, store *vocab.Store, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        store,
		form:         editor.NewForm(),
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	log.Printf("RootUI initialized with %d entries", store.Len())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	ui.createShortcuts()

	ui.entryList = widget.NewList(
		func() int {
			return ui.store.Len()
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			entry, ok := ui.store.At(id)
			if !ok {
				return
			}
			obj.(*widget.Label).SetText(entry.Label())
		},
	)
	ui.entryList.OnSelected = ui.onEntrySelected
	ui.entryList.OnUnselected = ui.onEntryUnselected

	ui.languageEntry = ui.mobile.CreateEntry("")
	ui.wordEntry = ui.mobile.CreateEntry("")
	ui.meaningEntry = ui.mobile.CreateEntry("")
	// Enter in the last field submits
	ui.meaningEntry.OnSubmitted = func(string) {
		ui.onSubmit()
	}

	ui.languageLabel = widget.NewLabel("")
	ui.wordLabel = widget.NewLabel("")
	ui.meaningLabel = widget.NewLabel("")

	ui.submitBtn = ui.mobile.CreateButton("", ui.onSubmit)
	ui.submitBtn.Importance = widget.HighImportance
	ui.resetBtn = ui.mobile.CreateButton("", ui.onReset)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.countLabel = widget.NewLabel("")
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	fields := container.New(layout.NewFormLayout(),
		ui.languageLabel, ui.languageEntry,
		ui.wordLabel, ui.wordEntry,
		ui.meaningLabel, ui.meaningEntry,
	)
	buttons := container.NewGridWithColumns(2, ui.resetBtn, ui.submitBtn)

	var header fyne.CanvasObject = container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, settingsBtn)
	}

	editorPanel := container.NewVBox(header, fields, buttons)

	listPanel := container.NewBorder(nil, ui.countLabel, nil, nil, ui.entryList)

	content := container.NewBorder(
		nil,            // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		ui.mobile.SplitLayout(listPanel, editorPanel), // center
	)

	ui.refreshUITexts()
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	newItem := fyne.NewMenuItem(ui.localization.GetText(KeyNew), ui.onNew)
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpen), ui.onOpen)
	saveItem := fyne.NewMenuItem(ui.localization.GetText(KeySave), ui.onSave)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	exitItem := fyne.NewMenuItem(ui.localization.GetText(KeyExit), ui.onExit)
	exitItem.IsQuit = true

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyInterfaceLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range sortedKeys(availableLanguages) {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			newItem, openItem, saveItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
			fyne.NewMenuItemSeparator(),
			exitItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// createShortcuts binds Ctrl/Cmd+N, O and S to the file actions
func (ui *RootUI) createShortcuts() {
	bindings := map[fyne.KeyName]func(){
		fyne.KeyN: ui.onNew,
		fyne.KeyO: ui.onOpen,
		fyne.KeyS: ui.onSave,
	}
	for key, action := range bindings {
		run := action
		ui.window.Canvas().AddShortcut(
			&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault},
			func(fyne.Shortcut) { run() },
		)
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.languageLabel.SetText(l.GetText(KeyFieldLanguage))
	ui.wordLabel.SetText(l.GetText(KeyFieldWord))
	ui.meaningLabel.SetText(l.GetText(KeyFieldMeaning))
	ui.languageEntry.SetPlaceHolder(l.GetText(KeyLanguagePlaceholder))
	ui.wordEntry.SetPlaceHolder(l.GetText(KeyWordPlaceholder))
	ui.meaningEntry.SetPlaceHolder(l.GetText(KeyMeaningPlaceholder))
	ui.resetBtn.SetText(l.GetText(KeyReset))

	ui.refreshSubmitButton()
	ui.refreshCount()
}

// refreshSubmitButton labels the submit button after the form mode
func (ui *RootUI) refreshSubmitButton() {
	key := KeyAdd
	if ui.form.Mode() == model.SubmitUpdate {
		key = KeyUpdate
	}
	ui.submitBtn.SetText(ui.localization.GetText(key))
}

func (ui *RootUI) refreshCount() {
	ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyEntryCount), ui.store.Len()))
}

// refreshList redraws the list after the store changed
func (ui *RootUI) refreshList() {
	ui.entryList.Refresh()
	ui.refreshCount()
}

// onEntrySelected copies the selected entry into the form
func (ui *RootUI) onEntrySelected(id widget.ListItemID) {
	if ui.syncingSelection {
		return
	}
	entry, ok := ui.store.At(id)
	if !ok {
		return
	}

	ui.form.Select(id, entry)
	ui.languageEntry.SetText(entry.Language)
	ui.wordEntry.SetText(entry.Word)
	ui.meaningEntry.SetText(entry.Meaning)
	ui.refreshSubmitButton()
}

// onEntryUnselected returns the form to add mode without clearing it
func (ui *RootUI) onEntryUnselected(widget.ListItemID) {
	if ui.syncingSelection {
		return
	}
	ui.form.Deselect()
	ui.refreshSubmitButton()
}

// clearSelection unselects the list without touching the form
func (ui *RootUI) clearSelection() {
	ui.syncingSelection = true
	ui.entryList.UnselectAll()
	ui.syncingSelection = false
}

// onSubmit adds or updates an entry from the form fields
func (ui *RootUI) onSubmit() {
	ui.form.Language = ui.languageEntry.Text
	ui.form.Word = ui.wordEntry.Text
	ui.form.Meaning = ui.meaningEntry.Text
	mode := ui.form.Mode()

	entry, err := ui.form.Submit(ui.store)
	if err != nil {
		ui.showSubmitError(err)
		return
	}

	log.Printf("%s entry: %s", mode, entry.Line())

	ui.clearFields()
	ui.clearSelection()
	ui.refreshSubmitButton()
	ui.refreshList()

	if index := ui.store.IndexOf(entry.ID); index >= 0 {
		ui.entryList.ScrollTo(index)
	}
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyEntryStored), entry.Label()))
}

// showSubmitError tells the user why the form was not stored
func (ui *RootUI) showSubmitError(err error) {
	var verr *editor.ValidationError
	var dup *vocab.DuplicateWordError

	switch {
	case errors.As(err, &verr):
		key := KeyFieldsComma
		if verr.HasEmpty() {
			key = KeyFieldsBlank
		}
		ui.showError(ui.localization.GetText(KeyInputError), ui.localization.GetText(key))
	case errors.As(err, &dup):
		ui.showInfo(ui.localization.GetText(KeyDuplicateTitle),
			fmt.Sprintf(ui.localization.GetText(KeyDuplicateWord), dup.Word))
	default:
		ui.showError(ui.localization.GetText(KeyInputError), err.Error())
	}
}

// onReset clears the form and the selection
func (ui *RootUI) onReset() {
	ui.form.Reset()
	ui.clearFields()
	ui.clearSelection()
	ui.refreshSubmitButton()
}

// onNew starts an empty list
func (ui *RootUI) onNew() {
	ui.store.Clear()
	ui.onReset()
	ui.refreshList()
	ui.setStatus(ui.localization.GetText(KeyNewList))
	log.Printf("Started a new vocabulary list")
}

func (ui *RootUI) onExit() {
	log.Printf("Exiting")
	ui.app.Quit()
}

func (ui *RootUI) clearFields() {
	ui.languageEntry.SetText("")
	ui.wordEntry.SetText("")
	ui.meaningEntry.SetText("")
}

// onOpen lets the user pick a .lang file and loads it
func (ui *RootUI) onOpen() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showReadError(err)
			return
		}
		if reader == nil {
			ui.showInfo(ui.localization.GetText(KeyCanceled), ui.localization.GetText(KeyOpenCanceled))
			return
		}
		defer reader.Close()

		ui.rememberDirectory(reader.URI())
		ui.loadFrom(reader, reader.URI().Name())
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter([]string{platform.LangExtension}))
	ui.setDialogLocation(fd)
	fd.Show()
}

// OpenPath loads the vocabulary file at path, typically given on the command line
func (ui *RootUI) OpenPath(path string) {
	lines, err := platform.ReadLines(path)
	if err != nil {
		ui.showReadError(err)
		return
	}
	ui.settings.SetLastDirectory(filepath.Dir(path))
	ui.applyLines(lines, filepath.Base(path))
}

// loadFrom reads lines from r and replaces the store with them
func (ui *RootUI) loadFrom(r io.Reader, source string) {
	lines, err := platform.ReadLinesFrom(r)
	if err != nil {
		ui.showReadError(err)
		return
	}
	ui.applyLines(lines, source)
}

// applyLines reloads the store under the configured policy
func (ui *RootUI) applyLines(lines []string, source string) {
	policy := ui.settings.GetLoadPolicy()
	err := ui.store.Reload(lines, policy)

	var report *vocab.LoadReport
	switch {
	case err == nil:
	case errors.As(err, &report):
		log.Printf("Loaded %s with %d rejected lines", source, len(report.Rejected))
		ui.showError(ui.localization.GetText(KeyInvalidData),
			ui.localization.GetText(KeyLinesSkipped)+"\n"+ui.formatRejected(report.Rejected))
	default:
		log.Printf("Rejected %s: %v", source, err)
		ui.showError(ui.localization.GetText(KeyInvalidData),
			ui.localization.GetText(KeyLoadAborted)+"\n"+ui.formatRejected([]error{err}))
		return
	}

	ui.onReset()
	ui.refreshList()
	ui.entryList.ScrollToTop()
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyFileLoaded), ui.store.Len(), source))
}

// formatRejected lists at most MaxReportedLines errors, one per line
func (ui *RootUI) formatRejected(rejected []error) string {
	var b strings.Builder
	for i, err := range rejected {
		if i == MaxReportedLines {
			b.WriteString(fmt.Sprintf(ui.localization.GetText(KeyMoreLines), len(rejected)-MaxReportedLines))
			break
		}
		b.WriteString(ReportLinePrefix)
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (ui *RootUI) showReadError(err error) {
	log.Printf("Failed to read vocabulary file: %v", err)
	if errors.Is(err, fs.ErrNotExist) {
		ui.showError(ui.localization.GetText(KeyFileNotFound), ui.localization.GetText(KeyFileNotFoundMsg))
		return
	}
	ui.showError(ui.localization.GetText(KeyIOError), ui.localization.GetText(KeyReadError))
}

// onSave lets the user pick a destination and writes the store to it
func (ui *RootUI) onSave() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.showWriteError(err)
			return
		}
		if writer == nil {
			ui.showInfo(ui.localization.GetText(KeyCanceled), ui.localization.GetText(KeySaveCanceled))
			return
		}

		ui.rememberDirectory(writer.URI())
		ui.saveTo(writer)
	}, ui.window)

	fd.SetFileName(platform.DefaultFileName)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{platform.LangExtension}))
	ui.setDialogLocation(fd)
	fd.Show()
}

// saveTo writes every entry line to w and closes it
func (ui *RootUI) saveTo(w io.WriteCloser) {
	err := platform.WriteLinesTo(w, ui.store.Lines())
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		ui.showWriteError(err)
		return
	}

	log.Printf("Saved %d entries", ui.store.Len())
	ui.onReset()
	ui.showInfo(ui.localization.GetText(KeySuccess), ui.localization.GetText(KeySaveSuccessful))
}

func (ui *RootUI) showWriteError(err error) {
	log.Printf("Failed to write vocabulary file: %v", err)
	ui.showError(ui.localization.GetText(KeyIOError), ui.localization.GetText(KeyWriteError))
}

// setDialogLocation starts a file dialog in the last used directory
func (ui *RootUI) setDialogLocation(fd *dialog.FileDialog) {
	dir := ui.settings.GetLastDirectory()
	if dir == "" {
		return
	}
	location, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	fd.SetLocation(location)
}

// rememberDirectory stores the parent of uri as the next dialog location
func (ui *RootUI) rememberDirectory(uri fyne.URI) {
	parent, err := storage.Parent(uri)
	if err != nil || parent.Scheme() != "file" {
		return
	}
	ui.settings.SetLastDirectory(parent.Path())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.setStatus(ui.localization.GetText(KeySettingsSaved))
	})
}

// setStatus shows message in the status line under the panes
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

func (ui *RootUI) showInfo(title, message string) {
	ui.setStatus(message)
	dialog.ShowInformation(title, message, ui.window)
}

func (ui *RootUI) showError(title, message string) {
	ui.setStatus(title + MiddleDotSeparator + firstLine(message))

	content := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil,
		widget.NewLabel(message))
	dialog.NewCustom(title, "OK", content, ui.window).Show()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
