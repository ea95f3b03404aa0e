// outliner is a command-line tool for inferring document titles and
// heading outlines from the visual layout of PDF files.
//
// It writes one JSON file per input document, named after the input
// file with a .json extension.
//
// Usage:
//
//	outliner -input ./docs -output ./out [options]
//
// Required flags:
//
//	-input string    PDF file or directory of PDFs to process
//	-output string   Directory to write JSON results to
//
// Processing options:
//
//	-workers int          Number of documents processed concurrently (default 4)
//	-profile string       Heuristic profile: generic, academic, or form (default generic)
//	-profile-file string  YAML file overriding threshold settings
//	-max-pages int        Cap on pages inspected per document
//
// Examples:
//
// Process a directory of papers with the academic profile:
//
//	outliner -input ./papers -output ./outlines -profile academic
//
// Process one form document with custom thresholds:
//
//	outliner -input claim.pdf -output ./out -profile form -profile-file thresholds.yaml
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
	"github.com/tsawler/outliner/structure"
)

// yamlProfile overrides selected config fields from a YAML file.
// Zero values leave the profile's setting untouched.
type yamlProfile struct {
	TitleFloor float64 `yaml:"title_floor"`
	H1Floor    float64 `yaml:"h1_floor"`
	H2Floor    float64 `yaml:"h2_floor"`
	H3Floor    float64 `yaml:"h3_floor"`
	MaxPages   int     `yaml:"max_pages"`
	EmitH4     bool    `yaml:"emit_h4"`
}

// loadProfileFile reads a YAML override file and applies it to cfg.
func loadProfileFile(path string, cfg structure.Config) (structure.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var yp yamlProfile
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return cfg, err
	}
	if yp.TitleFloor > 0 {
		cfg.TitleFloor = yp.TitleFloor
	}
	if yp.H1Floor > 0 {
		cfg.H1Floor = yp.H1Floor
	}
	if yp.H2Floor > 0 {
		cfg.H2Floor = yp.H2Floor
	}
	if yp.H3Floor > 0 {
		cfg.H3Floor = yp.H3Floor
	}
	if yp.MaxPages > 0 {
		cfg.MaxPages = yp.MaxPages
	}
	cfg.EmitH4 = yp.EmitH4
	return cfg, nil
}

func main() {
	inputPath := flag.String("input", "", "PDF file or directory of PDFs to process")
	outputDir := flag.String("output", "", "Directory to write JSON results to")
	workers := flag.Int("workers", 4, "Number of documents processed concurrently")
	profileName := flag.String("profile", "generic", "Heuristic profile: generic, academic, or form")
	profileFile := flag.String("profile-file", "", "YAML file overriding threshold settings")
	maxPages := flag.Int("max-pages", 0, "Cap on pages inspected per document")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if *inputPath == "" || *outputDir == "" {
		log.Error("both -input and -output are required")
		os.Exit(1)
	}

	profile, err := structure.ParseProfile(*profileName)
	if err != nil {
		log.Error("invalid profile", "profile", *profileName, "error", err)
		os.Exit(1)
	}

	cfg := structure.ConfigForProfile(profile)
	if *profileFile != "" {
		cfg, err = loadProfileFile(*profileFile, cfg)
		if err != nil {
			log.Error("invalid profile file", "path", *profileFile, "error", err)
			os.Exit(1)
		}
	}
	if *maxPages > 0 {
		cfg.MaxPages = *maxPages
	}

	inputs, err := collectInputs(*inputPath)
	if err != nil {
		log.Error("reading input", "path", *inputPath, "error", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		log.Error("no PDF files found", "path", *inputPath)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Error("creating output directory", "path", *outputDir, "error", err)
		os.Exit(1)
	}

	if *workers < 1 {
		*workers = 1
	}

	log.Info("processing documents",
		"count", len(inputs),
		"workers", *workers,
		"profile", profile.String())

	jobs := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				processDocument(path, *outputDir, cfg, log)
			}
		}()
	}

	for _, path := range inputs {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	log.Info("done", "count", len(inputs))
}

// collectInputs lists the PDF files to process. A file path yields
// itself; a directory yields its .pdf entries sorted by name.
func collectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			inputs = append(inputs, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(inputs)
	return inputs, nil
}

// processDocument runs one document through the engine and writes its
// JSON result. A document the reader rejects still produces a degraded
// record so batch output stays complete.
func processDocument(path, outputDir string, cfg structure.Config, log *slog.Logger) {
	result, err := runEngine(path, cfg)
	if err != nil {
		var openErr *reader.OpenError
		if errors.As(err, &openErr) {
			log.Warn("document unreadable, writing degraded record", "path", path, "error", err)
			result = model.DocumentResult{Title: "", Outline: model.Outline{}}
		} else {
			log.Error("processing failed", "path", path, "error", err)
			return
		}
	}

	outPath := filepath.Join(outputDir, outputName(path))
	if err := writeResult(outPath, result); err != nil {
		log.Error("writing result", "path", outPath, "error", err)
		return
	}

	log.Info("processed",
		"path", path,
		"title", result.Title,
		"headings", len(result.Outline))
}

func runEngine(path string, cfg structure.Config) (model.DocumentResult, error) {
	doc, err := reader.Open(path)
	if err != nil {
		return model.DocumentResult{}, err
	}
	defer doc.Close()

	engine := structure.NewEngineWithConfig(cfg)
	return engine.Process(doc), nil
}

// outputName maps input.pdf to input.json.
func outputName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".json"
}

func writeResult(path string, result model.DocumentResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
