package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	gguf "github.com/gpustack/gguf-parser-go"

	"llmcalc/internal/common/fsutil"
	"llmcalc/internal/estimator"
	"llmcalc/pkg/types"
)

// Metadata is the subset of GGUF header fields the registry uses.
type Metadata struct {
	Architecture string
	Parameters   uint64
	FileType     string
}

// MetadataReader reads model metadata from a local file.
type MetadataReader interface {
	ReadMetadata(path string) (*Metadata, error)
}

type ggufReader struct{}

func (ggufReader) ReadMetadata(path string) (*Metadata, error) {
	f, err := gguf.ParseGGUFFile(path)
	if err != nil {
		return nil, err
	}
	m := f.Metadata()
	return &Metadata{
		Architecture: m.Architecture,
		Parameters:   uint64(m.Parameters),
		FileType:     m.FileType.String(),
	}, nil
}

// GGUFScanner discovers *.gguf files in a directory.
type GGUFScanner struct {
	Reader MetadataReader
}

// NewGGUFScanner returns a scanner that reads GGUF headers with gguf-parser-go.
func NewGGUFScanner() *GGUFScanner { return &GGUFScanner{Reader: ggufReader{}} }

// Scan lists *.gguf files (case-insensitive) in dir, sorted by ID. Parameter
// count and quantization come from the GGUF header when it can be read and
// from the file name otherwise.
func (s *GGUFScanner) Scan(dir string) ([]types.Model, error) {
	abs, err := fsutil.ResolveDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if e.IsDir() || !fsutil.HasExt(e.Name(), ".gguf") {
			continue
		}
		models = append(models, s.describe(filepath.Join(abs, e.Name())))
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
	return models, nil
}

func (s *GGUFScanner) describe(path string) types.Model {
	id := filepath.Base(path)
	name := strings.TrimSuffix(id, filepath.Ext(id))
	m := types.Model{
		ID:             id,
		Name:           name,
		Path:           path,
		Family:         inferFamily(name),
		ParamsBillions: inferParams(name),
	}
	if q, ok := inferQuant(name); ok {
		m.Quant = string(q)
	}
	if fi, err := os.Stat(path); err == nil {
		m.SizeBytes = fi.Size()
	}
	if s.Reader == nil {
		return m
	}
	md, err := s.Reader.ReadMetadata(path)
	if err != nil || md == nil {
		return m
	}
	if md.Parameters > 0 {
		m.ParamsBillions = float64(md.Parameters) / 1e9
	}
	if q, ok := estimator.ParseQuantization(md.FileType); ok {
		m.Quant = string(q)
	}
	if md.Architecture != "" {
		m.Family = md.Architecture
	}
	return m
}

// LoadDir scans dir with the default GGUF scanner.
func LoadDir(dir string) ([]types.Model, error) {
	return NewGGUFScanner().Scan(dir)
}

// paramsRe matches size tokens such as "7b", "3.8B" and "8x7b".
var paramsRe = regexp.MustCompile(`(?i)(?:^|[-_.])(?:(\d+)x)?(\d+(?:\.\d+)?)b(?:$|[-_.])`)

func inferParams(name string) float64 {
	m := paramsRe.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0
	}
	if m[1] != "" {
		experts, err := strconv.Atoi(m[1])
		if err == nil {
			v *= float64(experts)
		}
	}
	return v
}

func splitName(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '.' || r == ' ' })
}

// inferQuant checks name tokens from the end, where quant suffixes usually sit.
func inferQuant(name string) (estimator.Quantization, bool) {
	tok := splitName(name)
	for i := len(tok) - 1; i >= 0; i-- {
		if q, ok := estimator.ParseQuantization(tok[i]); ok {
			return q, true
		}
	}
	return "", false
}

func inferFamily(name string) string {
	tok := splitName(name)
	if len(tok) == 0 {
		return ""
	}
	return strings.ToLower(strings.SplitN(tok[0], "_", 2)[0])
}
