package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/quicksplit/internal/models"
)

// isolate points config discovery at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUICKSPLIT_CONFIG", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.Currency != "INR" {
		t.Errorf("currency = %q, want INR", c.UI.Currency)
	}
	if c.UI.Locale != "en" {
		t.Errorf("locale = %q, want en", c.UI.Locale)
	}
	if c.Form.MaxParticipants != 50 {
		t.Errorf("max_participants = %d, want 50", c.Form.MaxParticipants)
	}
	if c.Log.Level != "info" {
		t.Errorf("log.level = %q, want info", c.Log.Level)
	}
	if mode, err := c.Mode(); err != nil || mode != models.ModeEqual {
		t.Errorf("Mode() = %v, %v; want equal", mode, err)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[ui]
currency = "EUR"
currency_symbol = "EUR"
locale = "de"
default_mode = "shares"

[form]
max_participants = 12

[export]
dir = "/tmp/splits"

[metrics]
textfile = "/var/lib/node_exporter/quicksplit.prom"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.Currency != "EUR" || c.UI.CurrencySymbol != "EUR" || c.UI.Locale != "de" {
		t.Errorf("ui = %+v", c.UI)
	}
	if mode, _ := c.Mode(); mode != models.ModeShares {
		t.Errorf("Mode() = %v, want shares", mode)
	}
	if c.Form.MaxParticipants != 12 {
		t.Errorf("max_participants = %d, want 12", c.Form.MaxParticipants)
	}
	if c.Export.Dir != "/tmp/splits" {
		t.Errorf("export.dir = %q", c.Export.Dir)
	}
	if c.Metrics.Textfile != "/var/lib/node_exporter/quicksplit.prom" {
		t.Errorf("metrics.textfile = %q", c.Metrics.Textfile)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[ui]\ncurrency = \"EUR\"\n")
	t.Setenv("QUICKSPLIT_CONFIG", path)
	t.Setenv("QUICKSPLIT_UI_CURRENCY", "USD")
	t.Setenv("QUICKSPLIT_LOG_LEVEL", "debug")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.Currency != "USD" {
		t.Errorf("currency = %q, want USD from env", c.UI.Currency)
	}
	if c.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", c.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad mode", body: "[ui]\ndefault_mode = \"thirds\"\n"},
		{name: "bad max", body: "[form]\nmax_participants = 0\n"},
		{name: "bad toml", body: "[ui\ncurrency = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of a missing explicit file should fail")
	}
}
