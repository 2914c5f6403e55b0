// Package organizer holds the set of ingested files and derives folders, statistics and
// filtered listings from it on every read.
package organizer

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/common"
	"github.com/Veraticus/sift/internal/extract"
	"github.com/Veraticus/sift/internal/model"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// TextExtractor decodes an uploaded file into text.
type TextExtractor interface {
	Extract(ctx context.Context, name string, data []byte) (string, error)
}

// Upload is a raw file handed to the organizer.
type Upload struct {
	Name string
	// Type is the MIME type reported by the client; detected from the name when empty.
	Type string
	Data []byte
}

// Failure records an upload that could not be decoded.
type Failure struct {
	Err  error  `json:"-" yaml:"-"`
	Name string `json:"name" yaml:"name"`
	// Message is Err rendered for clients.
	Message string `json:"error" yaml:"error"`
}

// Report summarizes one AddFiles call.
type Report struct {
	Added  []model.OrganizedFile `json:"files" yaml:"files"`
	Failed []Failure             `json:"failed" yaml:"failed"`
}

// ProgressFunc is called after each upload finishes, successfully or not.
type ProgressFunc func(done, total int)

// Percent converts progress counts into a whole percentage.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// Config controls analysis and ingestion.
type Config struct {
	// Registerer receives the organizer metrics; nil uses the Prometheus default registerer.
	Registerer prometheus.Registerer
	TopN       int
	MinScore   int
	Workers    int
	CacheSize  int
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		TopN:      classification.DefaultTopN,
		MinScore:  classification.DefaultMinScore,
		Workers:   4,
		CacheSize: 512,
	}
}

// Organizer is the state container for ingested files. It is safe for concurrent use.
type Organizer struct {
	extractor TextExtractor
	analyzer  *Analyzer
	metrics   *Metrics
	now       func() time.Time
	newID     func() string
	selected  model.CategoryName
	query     string
	files     []model.OrganizedFile
	workers   int
	mu        sync.RWMutex
}

// New creates an empty organizer.
func New(extractor TextExtractor, cfg Config) (*Organizer, error) {
	if extractor == nil {
		return nil, fmt.Errorf("%w: extractor", common.ErrMissingConfig)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	analyzer, err := NewAnalyzer(cfg.TopN, cfg.MinScore, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	metrics, err := NewMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	return &Organizer{
		extractor: extractor,
		analyzer:  analyzer,
		metrics:   metrics,
		workers:   cfg.Workers,
		now:       time.Now,
		newID:     uuid.NewString,
	}, nil
}

// Analyzer exposes the organizer's analysis pipeline for ad hoc text.
func (o *Organizer) Analyzer() *Analyzer {
	return o.analyzer
}

type outcome struct {
	err  error
	file model.OrganizedFile
}

// AddFiles decodes, analyzes and stores uploads. Decoding runs concurrently, but files are
// stored in upload order. Uploads that fail to decode are skipped and listed in the report.
// If ctx ends first, nothing is stored and the context error is returned.
func (o *Organizer) AddFiles(ctx context.Context, uploads []Upload, progress ProgressFunc) (Report, error) {
	if len(uploads) == 0 {
		return Report{}, common.ErrNoFiles
	}

	start := time.Now()
	total := len(uploads)
	outcomes := make([]outcome, total)

	var (
		progressMu sync.Mutex
		done       int
	)
	finished := func() {
		progressMu.Lock()
		defer progressMu.Unlock()
		done++
		if progress != nil {
			progress(done, total)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, upload := range uploads {
		g.Go(func() error {
			text, err := o.extractor.Extract(gctx, upload.Name, upload.Data)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				outcomes[i] = outcome{err: err}
				finished()
				return nil
			}

			outcomes[i] = outcome{file: o.newRecord(upload, text)}
			finished()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	var report Report
	for i, out := range outcomes {
		if out.err != nil {
			common.LogError(out.err, "Failed to process file", common.Fields{"file": uploads[i].Name})
			o.metrics.decodeFailed(extract.Extension(uploads[i].Name))
			report.Failed = append(report.Failed, Failure{
				Name:    uploads[i].Name,
				Err:     out.err,
				Message: out.err.Error(),
			})
			continue
		}
		o.metrics.fileOrganized(out.file.Category)
		report.Added = append(report.Added, out.file)
	}

	o.mu.Lock()
	for _, f := range report.Added {
		o.files = append(o.files, cloneFile(f))
	}
	o.mu.Unlock()

	o.metrics.batchDone(time.Since(start))

	common.LogInfo("Organized files", common.Fields{
		"added":  len(report.Added),
		"failed": len(report.Failed),
	})

	return report, nil
}

func (o *Organizer) newRecord(upload Upload, text string) model.OrganizedFile {
	analysis := o.analyzer.Analyze(text)

	mimeType := upload.Type
	if mimeType == "" {
		mimeType = extract.DetectType(upload.Name)
	}

	common.LogDebug("Categorized file", common.Fields{
		"file":     upload.Name,
		"category": analysis.Result.Category,
		"score":    analysis.Result.Score,
	})

	return model.OrganizedFile{
		ID:         o.newID(),
		Name:       upload.Name,
		Size:       int64(len(upload.Data)),
		Type:       mimeType,
		Content:    text,
		Keywords:   analysis.Keywords,
		Category:   analysis.Result.Category,
		UploadedAt: o.now(),
	}
}

// Remove deletes the file with the given ID.
func (o *Organizer) Remove(id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, f := range o.files {
		if f.ID == id {
			o.files = append(o.files[:i], o.files[i+1:]...)
			common.LogInfo("File removed", common.Fields{"id": id, "file": f.Name})
			return nil
		}
	}
	return fmt.Errorf("%w: %s", common.ErrFileNotFound, id)
}

// Clear removes every file. Filters are kept.
func (o *Organizer) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.files = nil
}

// Get returns the file with the given ID.
func (o *Organizer) Get(id string) (model.OrganizedFile, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, f := range o.files {
		if f.ID == id {
			return cloneFile(f), nil
		}
	}
	return model.OrganizedFile{}, fmt.Errorf("%w: %s", common.ErrFileNotFound, id)
}

// SetCategoryFilter restricts Files to one category. An empty name clears the filter.
func (o *Organizer) SetCategoryFilter(name model.CategoryName) error {
	if name != "" && !name.Valid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, name)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selected = name
	return nil
}

// CategoryFilter returns the selected category, or "" when unfiltered.
func (o *Organizer) CategoryFilter() model.CategoryName {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.selected
}

// SetSearchQuery sets the free-text search applied by Files.
func (o *Organizer) SetSearchQuery(query string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.query = query
}

// SearchQuery returns the current search text.
func (o *Organizer) SearchQuery() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.query
}

// Files returns the stored files narrowed by the category filter and search query.
func (o *Organizer) Files() []model.OrganizedFile {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return FilterFiles(o.files, o.selected, o.query)
}

// AllFiles returns every stored file in upload order.
func (o *Organizer) AllFiles() []model.OrganizedFile {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return cloneFiles(o.files)
}

// Folders groups the stored files by category.
func (o *Organizer) Folders() []model.SemanticFolder {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return BuildFolders(o.files)
}

// Stats summarizes the stored files.
func (o *Organizer) Stats() model.Stats {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return BuildStats(o.files)
}
