package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/langlearn/internal/platform"
	"github.com/ytget/langlearn/internal/vocab"
)

// Settings keys for Fyne preferences
const (
	KeyLastDirectory = "last_directory"
	KeyLoadPolicy    = "load_policy"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultLoadPolicy = vocab.PolicyNameSkip
	DefaultLanguage   = "system"
)

// Settings manages the desktop application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastDirectory returns the directory the file dialogs start in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeDocumentsDir()
		if err != nil {
			return ""
		}
		s.SetLastDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetLastDirectory remembers the directory of the last opened or saved file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetLoadPolicy returns how malformed lines are handled when opening a file
func (s *Settings) GetLoadPolicy() vocab.LoadPolicy {
	name := s.app.Preferences().String(KeyLoadPolicy)
	policy, err := vocab.ParseLoadPolicy(name)
	if err != nil {
		s.app.Preferences().SetString(KeyLoadPolicy, DefaultLoadPolicy)
		return vocab.LoadSkipMalformed
	}
	return policy
}

// SetLoadPolicy sets the load policy
func (s *Settings) SetLoadPolicy(policy vocab.LoadPolicy) {
	s.app.Preferences().SetString(KeyLoadPolicy, policy.String())
}

// GetLoadPolicyOptions returns the load policy names for selection widgets
func (s *Settings) GetLoadPolicyOptions() []string {
	return vocab.LoadPolicyNames()
}

// GetLanguage returns the configured interface language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the interface language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
