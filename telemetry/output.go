package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/lilypad/config"
)

// TraceRecord is one sampled tick of the actor and flowers.
type TraceRecord struct {
	Tick      int64   `csv:"tick"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	VX        float64 `csv:"vx"`
	VY        float64 `csv:"vy"`
	OnGround  bool    `csv:"on_ground"`
	Move      float64 `csv:"move"`
	Jump      bool    `csv:"jump"`
	Bloomed   int     `csv:"bloomed"`
	Particles int     `csv:"particles"`
}

// BurstRecord is one flower reaching full bloom.
type BurstRecord struct {
	Tick    int64   `csv:"tick"`
	Bloom   int     `csv:"bloom"`
	AnchorX float64 `csv:"anchor_x"`
	AnchorY float64 `csv:"anchor_y"`
}

// csvFile is an output file whose header row is written with the first record.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

func writeRecords[T any](cf *csvFile, records []T) error {
	if !cf.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, cf.f); err != nil {
			return err
		}
		cf.headerWritten = true
		return nil
	}
	// Subsequent writes skip headers
	return gocsv.MarshalWithoutHeaders(records, cf.f)
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir    string
	trace  *csvFile
	bursts *csvFile
	stats  *csvFile
	perf   *csvFile
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	files := []struct {
		name string
		dst  **csvFile
	}{
		{"trace.csv", &om.trace},
		{"bursts.csv", &om.bursts},
		{"stats.csv", &om.stats},
		{"perf.csv", &om.perf},
	}
	for _, file := range files {
		f, err := os.Create(filepath.Join(dir, file.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", file.name, err)
		}
		*file.dst = &csvFile{f: f}
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTrace writes a sampled tick to trace.csv.
func (om *OutputManager) WriteTrace(r TraceRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.trace, []TraceRecord{r}); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// WriteBurst writes a burst record to bursts.csv.
func (om *OutputManager) WriteBurst(r BurstRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.bursts, []BurstRecord{r}); err != nil {
		return fmt.Errorf("writing burst: %w", err)
	}
	return nil
}

// WriteStats writes a window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.stats, []WindowStats{stats}); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int64) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.perf, []PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, cf := range []*csvFile{om.trace, om.bursts, om.stats, om.perf} {
		if cf == nil {
			continue
		}
		if err := cf.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
