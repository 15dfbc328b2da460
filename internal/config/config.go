package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Location struct {
		Column      string `yaml:"column"`
		FillUnknown bool   `yaml:"fill_unknown"`
	} `yaml:"location"`

	Salary struct {
		MeanColumn   string `yaml:"mean_column"`
		MinColumn    string `yaml:"min_column"`
		MaxColumn    string `yaml:"max_column"`
		FillStrategy string `yaml:"fill_strategy"` // median | mean | none
		EnforceInt   bool   `yaml:"enforce_int"`
		RoundMethod  string `yaml:"round_method"` // round | floor | ceil
	} `yaml:"salary"`

	Title struct {
		Column           string   `yaml:"column"`
		OutColumn        string   `yaml:"out_column"`
		CoerceOther      bool     `yaml:"coerce_other_to_software"`
		KeepTopNOther    int      `yaml:"keep_top_n_other"`
		DataPatterns     []string `yaml:"data_patterns"`     // empty = built-ins
		SoftwarePatterns []string `yaml:"software_patterns"` // empty = built-ins
	} `yaml:"title"`

	Export struct {
		Format string `yaml:"format"` // parquet | csv
	} `yaml:"export"`

	Workers int `yaml:"workers"` // 0 = one per CPU
}

// Default mirrors the knobs most runs want: fill placeholders, median
// back-fill, integer salaries rounded to nearest, unmatched titles coerced
// to Software Engineer.
func Default() Config {
	var cfg Config
	cfg.Location.Column = "location"
	cfg.Location.FillUnknown = true
	cfg.Salary.MeanColumn = "mean_salary"
	cfg.Salary.MinColumn = "min_amount"
	cfg.Salary.MaxColumn = "max_amount"
	cfg.Salary.FillStrategy = "median"
	cfg.Salary.EnforceInt = true
	cfg.Salary.RoundMethod = "round"
	cfg.Title.Column = "title"
	cfg.Title.OutColumn = "title_clean"
	cfg.Title.CoerceOther = true
	cfg.Export.Format = "parquet"
	return cfg
}

// Load reads a YAML config on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
