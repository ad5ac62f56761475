// Configuration tests.
//
// Config{} must be usable as is: Open fills defaults for format,
// checksum, line limit and logger. LoadConfig reads the same fields from
// YAML and rejects values Open would refuse.
package coldb

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenDefaultConfig(t *testing.T) {
	s := openTestStore(t)

	if s.config.Format != FormatText {
		t.Errorf("Format = %d, want %d", s.config.Format, FormatText)
	}
	if s.config.Checksum != AlgXXHash3 {
		t.Errorf("Checksum = %d, want %d", s.config.Checksum, AlgXXHash3)
	}
	if s.config.MaxLineSize != DefaultMaxLineSize {
		t.Errorf("MaxLineSize = %d, want %d", s.config.MaxLineSize, DefaultMaxLineSize)
	}
	if s.config.Logger != slog.Default() {
		t.Error("Logger not defaulted to slog.Default()")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coldb.yaml")
	writeFile(t, path, "format: 2\nchecksum: 3\nsync_writes: true\nmax_line_size: 4096\ncheck_external: true\n")

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{Format: FormatJSONL, Checksum: AlgBlake2b, SyncWrites: true, MaxLineSize: 4096, CheckExternal: true}
	if c != want {
		t.Errorf("LoadConfig = %+v, want %+v", c, want)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coldb.yaml")
	writeFile(t, path, "sync_writes: true\n")

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Format != 0 || !c.SyncWrites {
		t.Errorf("LoadConfig = %+v", c)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"bad yaml":      "format: [\n",
		"bad format":    "format: 7\n",
		"bad checksum":  "checksum: 9\n",
		"negative line": "max_line_size: -1\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			writeFile(t, path, content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig accepted invalid config")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(dir, "absent.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}
