package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Lang != "en" {
		t.Errorf("Lang = %q, want %q", cfg.Lang, "en")
	}
	if cfg.Output.Path != "output.htm" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "output.htm")
	}
	if cfg.Input.Default != "" {
		t.Errorf("Input.Default = %q, want empty", cfg.Input.Default)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		wantLang string
		wantOut  string
		wantErr  error
	}{
		{
			name:     "full config",
			yaml:     "input:\n  default: page.html\noutput:\n  path: site.htm\nlang: fr\n",
			wantLang: "fr",
			wantOut:  "site.htm",
		},
		{
			name:     "partial config keeps defaults",
			yaml:     "lang: de\n",
			wantLang: "de",
			wantOut:  "output.htm",
		},
		{
			name:    "unknown field rejected",
			yaml:    "language: fr\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "invalid lang rejected",
			yaml:    "lang: \"fr fr\"\n",
			wantErr: ErrInvalidLang,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}

			cfg, err := LoadConfig(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Lang != tt.wantLang {
				t.Errorf("Lang = %q, want %q", cfg.Lang, tt.wantLang)
			}
			if cfg.Output.Path != tt.wantOut {
				t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, tt.wantOut)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig() error = %v, want ErrEmptyConfigName", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lang    string
		wantErr bool
	}{
		{name: "simple code", lang: "en"},
		{name: "region subtag", lang: "pt-BR"},
		{name: "empty lang allowed", lang: ""},
		{name: "embedded quote", lang: `en"`, wantErr: true},
		{name: "whitespace", lang: "fr fr", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Lang = tt.lang
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
