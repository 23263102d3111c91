package example

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/simopts/internal/listener"
)

// CSVDirEnv overrides the directory CSVSaveListener writes into.
const CSVDirEnv = "SIMOPTS_CSV_DIR"

const csvFileName = "simulation.csv"

// CSVSaveListener writes one row per step with time and position.
type CSVSaveListener struct {
	dir  string
	file *os.File
	w    *csv.Writer
	log  *slog.Logger
}

func (c *CSVSaveListener) Init() error {
	c.log = slog.Default().With("component", "csv_listener")
	c.dir = os.Getenv(CSVDirEnv)
	if c.dir == "" {
		c.dir = "."
	}
	info, err := os.Stat(c.dir)
	if err != nil {
		return fmt.Errorf("csv output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("csv output directory: %s is not a directory", c.dir)
	}
	return nil
}

// Path is where the CSV file is written.
func (c *CSVSaveListener) Path() string {
	return filepath.Join(c.dir, csvFileName)
}

func (c *CSVSaveListener) StartSimulation(s listener.Status) error {
	f, err := os.Create(c.Path())
	if err != nil {
		return err
	}
	c.file = f
	c.w = csv.NewWriter(f)
	return c.w.Write([]string{"time", "time_step", "lat", "lon", "alt", "v_east", "v_north", "v_up"})
}

func (c *CSVSaveListener) PostStep(s listener.Status) error {
	if c.w == nil {
		return nil
	}
	row := []string{
		formatFloat(s.Time),
		formatFloat(s.TimeStep),
		formatFloat(s.Position.Lat),
		formatFloat(s.Position.Lon),
		formatFloat(s.Position.Alt),
		formatFloat(s.Velocity[0]),
		formatFloat(s.Velocity[1]),
		formatFloat(s.Velocity[2]),
	}
	return c.w.Write(row)
}

// EndSimulation flushes and closes the file, logging buffered write and
// close errors.
func (c *CSVSaveListener) EndSimulation(s listener.Status, err error) {
	if c.w != nil {
		c.w.Flush()
		if ferr := c.w.Error(); ferr != nil {
			c.log.Error("Failed to write csv", "path", c.Path(), "error", ferr)
		}
	}
	if c.file != nil {
		if cerr := c.file.Close(); cerr != nil {
			c.log.Error("Failed to close csv", "path", c.Path(), "error", cerr)
		}
	}
	c.w = nil
	c.file = nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
