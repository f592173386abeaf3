package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileName is the config file a project directory carries.
const FileName = "faturai.yaml"

// dueDateFormat is the wire format of statement.due_date.
const dueDateFormat = "2006-01-02"

// Config represents the top-level faturai.yaml configuration.
type Config struct {
	Statement StatementConfig `yaml:"statement"`
	Income    IncomeConfig    `yaml:"income"`
}

// StatementConfig anchors statement processing.
type StatementConfig struct {
	// DueDate is the reference due date of the current statement cycle,
	// "YYYY-MM-DD". Every installment purchase in a batch anchors its
	// first retained installment here.
	DueDate string `yaml:"due_date"`
	// DefaultLayout is used when process is run without --layout.
	DefaultLayout string `yaml:"default_layout,omitempty"`
}

// IncomeConfig feeds the income-commitment summary. Monthly is kept as a
// string in the file so the value parses losslessly into a decimal.
type IncomeConfig struct {
	Monthly string `yaml:"monthly,omitempty"`
}

// Load reads a faturai.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for a new project.
func Default(dueDate string) *Config {
	return &Config{
		Statement: StatementConfig{
			DueDate:       dueDate,
			DefaultLayout: "nubank",
		},
		Income: IncomeConfig{},
	}
}

// ReferenceDueDate parses statement.due_date.
func (c *Config) ReferenceDueDate() (time.Time, error) {
	t, err := time.Parse(dueDateFormat, c.Statement.DueDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing statement due_date %q: %w", c.Statement.DueDate, err)
	}
	return t, nil
}

// MonthlyIncome parses income.monthly; an unset value is zero.
func (c *Config) MonthlyIncome() (decimal.Decimal, error) {
	if c.Income.Monthly == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(c.Income.Monthly)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing income monthly %q: %w", c.Income.Monthly, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("income monthly must not be negative, got %q", c.Income.Monthly)
	}
	return d, nil
}
