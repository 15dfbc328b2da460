// Command jobclean normalizes the messy free-text columns of a job-listing
// table (location, salary, title) into structured columns, then writes the
// enriched table back to SQLite or exports it.
//
//	jobclean -in listings.csv -out cleaned.parquet
//	jobclean -in listings.db -db-table listings            # in-place writeback
//	jobclean -in listings.db -db-table listings -out cleaned.csv -format csv
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"jobclean/internal/clean"
	"jobclean/internal/config"
	"jobclean/internal/enrich"
	"jobclean/internal/export"
	"jobclean/internal/table"
)

// enrichedColumns is the writeback contract: the columns the cleaning passes
// add or overwrite.
var enrichedColumns = []string{
	"location_city", "location_state", "location_country",
	"is_remote", "location_missing", "location_display",
	"min_salary", "max_salary", "mean_salary",
	"title_clean",
}

func main() {
	var (
		in         = flag.String("in", "", "input: CSV file, or SQLite database when -db-table is set")
		dbTable    = flag.String("db-table", "", "SQLite table name inside -in")
		out        = flag.String("out", "", "output path; empty with -db-table writes back in place")
		format     = flag.String("format", "", "export format (parquet or csv); default from config")
		configPath = flag.String("config", "", "YAML config path (created with defaults when missing)")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("missing -in")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Ensure(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *format != "" {
		cfg.Export.Format = *format
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal(err)
	}

	classifier, err := clean.NewTitleClassifier(cfg.Title.DataPatterns, cfg.Title.SoftwarePatterns, cfg.Title.CoerceOther)
	if err != nil {
		log.Fatalf("title patterns: %v", err)
	}

	ctx := context.Background()
	start := time.Now()

	var (
		t     *table.Table
		sqldb *sql.DB
	)
	if *dbTable != "" {
		sqldb, err = table.Open(*in)
		if err != nil {
			log.Fatalf("open %s: %v", *in, err)
		}
		defer sqldb.Close()
		if t, err = table.Load(ctx, sqldb, *dbTable); err != nil {
			log.Fatal(err)
		}
	} else {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("open %s: %v", *in, err)
		}
		t, err = table.ReadCSV(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}

	log.Infof("[load] %s: %d rows, %d columns", *in, t.Rows(), len(t.Columns()))

	if err := enrich.Locations(t, enrich.LocationOptions{
		Column:      cfg.Location.Column,
		FillUnknown: cfg.Location.FillUnknown,
		Workers:     cfg.Workers,
	}); err != nil {
		log.Fatalf("locations: %v", err)
	}

	if err := enrich.Salaries(t, enrich.SalaryOptions{
		MeanColumn:   cfg.Salary.MeanColumn,
		MinColumn:    cfg.Salary.MinColumn,
		MaxColumn:    cfg.Salary.MaxColumn,
		FillStrategy: cfg.Salary.FillStrategy,
		EnforceInt:   cfg.Salary.EnforceInt,
		RoundMethod:  cfg.Salary.RoundMethod,
		Workers:      cfg.Workers,
	}); err != nil {
		log.Fatalf("salaries: %v", err)
	}

	if err := enrich.Titles(t, enrich.TitleOptions{
		Column:        cfg.Title.Column,
		OutColumn:     cfg.Title.OutColumn,
		Classifier:    classifier,
		KeepTopNOther: cfg.Title.KeepTopNOther,
		Workers:       cfg.Workers,
	}); err != nil {
		log.Fatalf("titles: %v", err)
	}

	if sqldb != nil && *out == "" {
		if err := table.Save(ctx, sqldb, *dbTable, t, enrichedColumns...); err != nil {
			log.Fatalf("writeback: %v", err)
		}
		log.Infof("[done] wrote %d columns back to %s in %s",
			len(enrichedColumns), *dbTable, time.Since(start).Round(time.Millisecond))
		return
	}

	if *out == "" {
		log.Fatal("missing -out (required for CSV input)")
	}
	if err := export.Write(*out, t, cfg.Export.Format); err != nil {
		log.Fatal(err)
	}
	log.Infof("[done] exported %s (%s) in %s", *out, cfg.Export.Format, time.Since(start).Round(time.Millisecond))
}
