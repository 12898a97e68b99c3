package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/langlearn/internal/vocab"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLastDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetLastDirectory()
	if dir == "" {
		t.Error("Last directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/vocabulary"
	settings.SetLastDirectory(customDir)

	if got := settings.GetLastDirectory(); got != customDir {
		t.Errorf("Expected last directory %s, got %s", customDir, got)
	}
}

func TestLoadPolicy(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if policy := settings.GetLoadPolicy(); policy != vocab.LoadSkipMalformed {
		t.Errorf("Expected default load policy %s, got %s", vocab.LoadSkipMalformed, policy)
	}

	settings.SetLoadPolicy(vocab.LoadAbortOnMalformed)
	if policy := settings.GetLoadPolicy(); policy != vocab.LoadAbortOnMalformed {
		t.Errorf("Expected load policy %s, got %s", vocab.LoadAbortOnMalformed, policy)
	}

	// Unknown stored value falls back to the default
	app.Preferences().SetString(KeyLoadPolicy, "retry")
	if policy := settings.GetLoadPolicy(); policy != vocab.LoadSkipMalformed {
		t.Errorf("Expected fallback to %s, got %s", vocab.LoadSkipMalformed, policy)
	}
	if stored := app.Preferences().String(KeyLoadPolicy); stored != DefaultLoadPolicy {
		t.Errorf("Expected stored policy to be reset to %s, got %s", DefaultLoadPolicy, stored)
	}
}

func TestLoadPolicyOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLoadPolicyOptions()
	if len(options) != 2 {
		t.Fatalf("Expected 2 load policy options, got %d", len(options))
	}
	for _, option := range options {
		if _, err := vocab.ParseLoadPolicy(option); err != nil {
			t.Errorf("Option %q is not a valid policy: %v", option, err)
		}
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}
}

func TestLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, exists := options[code]; !exists {
			t.Errorf("Expected language option %s to exist", code)
		}
	}
}
