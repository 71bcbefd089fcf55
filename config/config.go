package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the business profile printed on every generated document,
// plus invoice defaults. All fields have working defaults so the server can
// run without a config file.
type Config struct {
	Company CompanyConfig `yaml:"company"`
	Bank    BankConfig    `yaml:"bank"`
	Invoice InvoiceConfig `yaml:"invoice"`
}

// CompanyConfig is the "From" block on invoices and receipts.
type CompanyConfig struct {
	Name    string   `yaml:"name"`
	Address []string `yaml:"address"`
	Phone   string   `yaml:"phone"`
	Email   string   `yaml:"email"`
}

// BankConfig is the fixed payment details block.
type BankConfig struct {
	AccountName   string `yaml:"account_name"`
	Currency      string `yaml:"currency"`
	AccountNumber string `yaml:"account_number"`
	BankName      string `yaml:"bank_name"`
	Branch        string `yaml:"branch"`
	BankCode      string `yaml:"bank_code"`
	BranchCode    string `yaml:"branch_code"`
	Swift         string `yaml:"swift"`
	MpesaPaybill  string `yaml:"mpesa_paybill"`
	MpesaAccount  string `yaml:"mpesa_account"`
}

// InvoiceConfig holds draft defaults.
type InvoiceConfig struct {
	DueInDays        int    `yaml:"due_in_days"`       // due date offset from issue date
	DefaultCurrency  string `yaml:"default_currency"`  // currency preselected on new drafts
	DefaultPayMethod string `yaml:"default_pay_method"`
}

// Default returns the built-in business profile.
func Default() *Config {
	return &Config{
		Company: CompanyConfig{
			Name: "Lessy Communication Agency",
			Address: []string{
				"RED DIAMOND GROUND FLOOR ROOM: 2, RUARAKA, OTERING ROAD",
				"Nairobi, Kenya",
			},
			Phone: "+254717321229",
			Email: "admin@lessycommunications.co.ke",
		},
		Bank: BankConfig{
			AccountName:   "LESSY COMMUNICATIONS AGEN",
			Currency:      "KES",
			AccountNumber: "08544740008",
			BankName:      "Bank of Africa Kenya Limited",
			Branch:        "EMBAKASI",
			BankCode:      "019",
			BranchCode:    "012",
			Swift:         "AFRIKENX",
			MpesaPaybill:  "972900",
			MpesaAccount:  "08544740008",
		},
		Invoice: InvoiceConfig{
			DueInDays:        14,
			DefaultCurrency:  "USD",
			DefaultPayMethod: "M-Pesa",
		},
	}
}

// Load reads the YAML config at path, overlaying it on the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Invoice.DueInDays <= 0 {
		cfg.Invoice.DueInDays = 14
	}
	if cfg.Invoice.DefaultCurrency == "" {
		cfg.Invoice.DefaultCurrency = "USD"
	}
	return cfg, nil
}
