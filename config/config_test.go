package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "no-such.yaml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", path, err)
		}
		if cfg.Company.Name != "Lessy Communication Agency" {
			t.Errorf("company name = %q, want the built-in profile", cfg.Company.Name)
		}
		if cfg.Invoice.DueInDays != 14 || cfg.Invoice.DefaultCurrency != "USD" {
			t.Errorf("invoice defaults = %+v", cfg.Invoice)
		}
	}
}

func TestLoadOverlaysOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
company:
  name: Acme Studio
invoice:
  due_in_days: 30
  default_pay_method: Wire
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Company.Name != "Acme Studio" {
		t.Errorf("company name = %q, want Acme Studio", cfg.Company.Name)
	}
	if cfg.Invoice.DueInDays != 30 || cfg.Invoice.DefaultPayMethod != "Wire" {
		t.Errorf("invoice overrides = %+v", cfg.Invoice)
	}
	// fields the file does not mention keep their defaults
	if cfg.Bank.AccountNumber != "08544740008" {
		t.Errorf("bank account = %q, want the default", cfg.Bank.AccountNumber)
	}
	if cfg.Invoice.DefaultCurrency != "USD" {
		t.Errorf("default currency = %q, want USD", cfg.Invoice.DefaultCurrency)
	}
}

func TestLoadClampsDueInDays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "invoice:\n  due_in_days: -5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Invoice.DueInDays != 14 {
		t.Errorf("DueInDays = %d, want the 14-day fallback", cfg.Invoice.DueInDays)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("company: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML accepted")
	}
}
