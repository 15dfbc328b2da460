package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validate rejects configurations that would only fail later inside a pass.
// Pattern lists are compiled here so a bad expression surfaces at startup,
// not mid-run.
func Validate(cfg Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Location.Column) == "" {
		errs = append(errs, "location.column must not be empty")
	}
	if strings.TrimSpace(cfg.Title.Column) == "" {
		errs = append(errs, "title.column must not be empty")
	}
	if strings.TrimSpace(cfg.Title.OutColumn) == "" {
		errs = append(errs, "title.out_column must not be empty")
	}
	if cfg.Title.KeepTopNOther < 0 {
		errs = append(errs, "title.keep_top_n_other must be >= 0")
	}

	switch cfg.Salary.FillStrategy {
	case "", "none", "median", "mean":
	default:
		errs = append(errs, fmt.Sprintf("salary.fill_strategy %q must be median, mean or none", cfg.Salary.FillStrategy))
	}
	switch cfg.Salary.RoundMethod {
	case "", "round", "floor", "ceil":
	default:
		errs = append(errs, fmt.Sprintf("salary.round_method %q must be round, floor or ceil", cfg.Salary.RoundMethod))
	}

	switch cfg.Export.Format {
	case "parquet", "csv":
	default:
		errs = append(errs, fmt.Sprintf("export.format %q must be parquet or csv", cfg.Export.Format))
	}

	if cfg.Workers < 0 {
		errs = append(errs, "workers must be >= 0")
	}

	checkPatterns := func(name string, pats []string) {
		for i, p := range pats {
			if p == "" {
				errs = append(errs, fmt.Sprintf("%s[%d] cannot be empty", name, i))
				continue
			}
			if _, err := regexp.Compile(`(?i)` + p); err != nil {
				errs = append(errs, fmt.Sprintf("%s[%d] %q does not compile: %v", name, i, p, err))
			}
		}
	}
	checkPatterns("title.data_patterns", cfg.Title.DataPatterns)
	checkPatterns("title.software_patterns", cfg.Title.SoftwarePatterns)

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
