package enrich

import (
	"fmt"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"

	"jobclean/internal/clean"
	"jobclean/internal/table"
)

type SalaryOptions struct {
	// Source columns, consulted in fixed priority order mean, min, max; the
	// first parsed value for each output field wins. Missing columns are
	// simply skipped.
	MeanColumn string // default "mean_salary"
	MinColumn  string // default "min_amount"
	MaxColumn  string // default "max_amount"

	// FillStrategy back-fills rows that stayed undefined after parsing:
	// "median" (median of known mins/maxes, mean of known means), "mean", or
	// "" to leave them undefined.
	FillStrategy string

	// EnforceInt emits integer columns, converted per RoundMethod: "round"
	// (default), "floor" or "ceil".
	EnforceInt  bool
	RoundMethod string

	Workers int
}

// Salaries reconciles up to three messy salary columns into numeric
// min_salary, max_salary and mean_salary output columns.
func Salaries(t *table.Table, opts SalaryOptions) error {
	if opts.MeanColumn == "" {
		opts.MeanColumn = "mean_salary"
	}
	if opts.MinColumn == "" {
		opts.MinColumn = "min_amount"
	}
	if opts.MaxColumn == "" {
		opts.MaxColumn = "max_amount"
	}
	switch opts.FillStrategy {
	case "", "none", "median", "mean":
	default:
		return fmt.Errorf("unknown fill strategy %q (want median, mean or none)", opts.FillStrategy)
	}
	switch opts.RoundMethod {
	case "", "round", "floor", "ceil":
	default:
		return fmt.Errorf("unknown round method %q (want round, floor or ceil)", opts.RoundMethod)
	}

	n := t.Rows()
	mins := make([]clean.Amount, n)
	maxs := make([]clean.Amount, n)
	means := make([]clean.Amount, n)

	// priority order: the mean column is usually the cleanest, min and max
	// only fill slots the earlier columns left open
	for _, name := range []string{opts.MeanColumn, opts.MinColumn, opts.MaxColumn} {
		src := t.Column(name)
		if src == nil {
			continue
		}
		forEachRow(n, opts.Workers, func(i int) {
			s := clean.ParseSalaryField(cellAt(src, i))
			if s.Min.Valid && !mins[i].Valid {
				mins[i] = s.Min
			}
			if s.Max.Valid && !maxs[i].Valid {
				maxs[i] = s.Max
			}
			if s.Mean.Valid && !means[i].Valid {
				means[i] = s.Mean
			}
		})
	}

	// consistency pass: a known mean stands in for a missing bound, and a
	// missing mean is the midpoint of known bounds
	for i := 0; i < n; i++ {
		if !mins[i].Valid && means[i].Valid {
			mins[i] = means[i]
		}
		if !maxs[i].Valid && means[i].Valid {
			maxs[i] = means[i]
		}
		if !means[i].Valid && mins[i].Valid && maxs[i].Valid {
			means[i] = clean.Amount{Value: (mins[i].Value + maxs[i].Value) / 2, Valid: true}
		}
	}

	var filled int
	switch opts.FillStrategy {
	case "median":
		filled += backfill(mins, median)
		filled += backfill(maxs, median)
		filled += backfill(means, mean)
	case "mean":
		filled += backfill(mins, mean)
		filled += backfill(maxs, mean)
		filled += backfill(means, mean)
	}

	writeAmounts(t, "min_salary", mins, opts)
	writeAmounts(t, "max_salary", maxs, opts)
	writeAmounts(t, "mean_salary", means, opts)

	var known int
	for i := 0; i < n; i++ {
		if means[i].Valid {
			known++
		}
	}
	log.Infof("[salary] rows=%d known=%d backfilled=%d", n, known, filled)
	return nil
}

// backfill replaces invalid slots with stat over the valid ones. A column
// with zero known values stays entirely undefined.
func backfill(vals []clean.Amount, stat func([]float64) float64) int {
	var known []float64
	for _, a := range vals {
		if a.Valid {
			known = append(known, a.Value)
		}
	}
	if len(known) == 0 {
		return 0
	}
	fill := stat(known)
	var filled int
	for i := range vals {
		if !vals[i].Valid {
			vals[i] = clean.Amount{Value: fill, Valid: true}
			filled++
		}
	}
	return filled
}

func median(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func writeAmounts(t *table.Table, name string, vals []clean.Amount, opts SalaryOptions) {
	if opts.EnforceInt {
		col := t.IntColumn(name)
		for i, a := range vals {
			if a.Valid {
				col.SetInt(i, roundTo(a.Value, opts.RoundMethod))
			}
		}
		return
	}
	col := t.FloatColumn(name)
	for i, a := range vals {
		if a.Valid {
			col.SetFloat(i, a.Value)
		}
	}
}

func roundTo(v float64, method string) int64 {
	switch method {
	case "floor":
		return int64(math.Floor(v))
	case "ceil":
		return int64(math.Ceil(v))
	default: // nearest
		return int64(math.Round(v))
	}
}
