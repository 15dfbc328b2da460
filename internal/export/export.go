// Package export persists an enriched table to disk: parquet when typed
// nullable columns must survive, CSV for plain interchange.
package export

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"jobclean/internal/table"
)

// Write exports t to path in the given format ("parquet" or "csv"). An
// unknown format is a programmer error and fails loudly; it is the one error
// in the cleaning flow that no data can cause. The output path is held under
// an exclusive flock while writing so concurrent runs cannot interleave.
func Write(path string, t *table.Table, format string) error {
	switch format {
	case "parquet", "csv":
	default:
		return fmt.Errorf("unknown export format %q (want parquet or csv)", format)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	switch format {
	case "parquet":
		err = writeParquet(f, t)
	case "csv":
		err = table.WriteCSV(f, t)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
