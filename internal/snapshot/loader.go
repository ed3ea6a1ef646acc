package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/campus-events/internal/event"
	"github.com/pfrederiksen/campus-events/internal/logger"
)

const (
	UserAgent      = "campus-events/1.0 (github.com/pfrederiksen/campus-events)"
	DefaultTimeout = 30 * time.Second

	// StdinSource reads the snapshot from standard input
	StdinSource = "-"

	maxSnapshotBytes = 10 * 1024 * 1024
)

// ErrLoad marks every snapshot load failure
var ErrLoad = errors.New("snapshot load failed")

// Result is a successfully loaded batch
type Result struct {
	Batch *event.Batch

	// Dropped lists, in snapshot order, the IDs of events removed because
	// they did not decode or their date was not a single YYYY-MM-DD day.
	// Entries without a usable ID, including nulls, are listed as "".
	Dropped []string
}

// Loader fetches and decodes the snapshot from one source
type Loader struct {
	source  string
	client  *http.Client
	stdin   io.Reader
	log     *logger.Logger
	metrics *logger.Metrics
}

// Option configures a Loader
type Option func(*Loader)

// WithHTTPClient sets the HTTP client used for URL sources
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.client = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithMetrics sets the metrics tracker
func WithMetrics(m *logger.Metrics) Option {
	return func(l *Loader) {
		if m != nil {
			l.metrics = m
		}
	}
}

// WithStdin sets the reader used for the "-" source
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		if r != nil {
			l.stdin = r
		}
	}
}

// New creates a Loader for source: a file path, "-" for stdin, or an
// http(s) URL.
func New(source string, opts ...Option) (*Loader, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: snapshot source is required", ErrLoad)
	}

	l := &Loader{
		source:  source,
		client:  &http.Client{Timeout: DefaultTimeout},
		stdin:   os.Stdin,
		log:     logger.Default(),
		metrics: logger.NewMetrics(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Source returns the configured source
func (l *Loader) Source() string {
	return l.source
}

// Metrics returns the loader's metrics tracker
func (l *Loader) Metrics() *logger.Metrics {
	return l.metrics
}

// Load fetches, decodes and checks the snapshot.
// Every error wraps ErrLoad; no partial result is ever returned.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	start := time.Now()
	l.metrics.IncrCounter("snapshot.loads")

	res, err := l.load(ctx)
	l.metrics.RecordTiming("snapshot.load", time.Since(start))
	if err != nil {
		l.metrics.IncrCounter("snapshot.failures")
		l.log.Error("Snapshot load failed", logger.Fields{"source": l.source}, err)
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	l.metrics.SetGauge("snapshot.events", float64(len(res.Batch.Events)))
	l.metrics.AddCounter("snapshot.dropped", int64(len(res.Dropped)))
	l.log.Info("Snapshot loaded", logger.Fields{
		"source":       l.source,
		"events":       len(res.Batch.Events),
		"sources":      len(res.Batch.Sources),
		"dropped":      len(res.Dropped),
		"last_updated": res.Batch.LastUpdated.UTC().Format(time.RFC3339),
	})
	return res, nil
}

func (l *Loader) load(ctx context.Context) (*Result, error) {
	switch {
	case l.source == StdinSource:
		return l.decode(l.stdin, "")
	case isURL(l.source):
		return l.fetch(ctx)
	default:
		return l.readFile()
	}
}

func (l *Loader) readFile() (*Result, error) {
	f, err := os.Open(expandPath(l.source))
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	contentType := ""
	if ext := strings.ToLower(filepath.Ext(l.source)); ext == ".html" || ext == ".htm" {
		contentType = "text/html"
	}
	return l.decode(f, contentType)
}

func (l *Loader) fetch(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return l.decode(resp.Body, resp.Header.Get("Content-Type"))
}

// decode reads the whole body, extracts the JSON from HTML if needed, and
// drops events that do not decode or whose date is not a single day.
func (l *Loader) decode(r io.Reader, contentType string) (*Result, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSnapshotBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if len(data) > maxSnapshotBytes {
		return nil, fmt.Errorf("snapshot exceeds %d bytes", maxSnapshotBytes)
	}

	if looksLikeHTML(data, contentType) {
		data, err = extractEmbedded(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	}

	wire, err := parseWire(data)
	if err != nil {
		return nil, err
	}

	batch := wire.batch()
	res := &Result{Batch: batch}
	for i, raw := range wire.Events {
		evt, err := decodeEvent(raw)
		if err != nil {
			id := rawEventID(raw)
			l.log.Warn("Dropping malformed event", logger.Fields{
				"index": i,
				"id":    id,
				"error": err.Error(),
			})
			res.Dropped = append(res.Dropped, id)
			continue
		}
		if !evt.HasValidDate() {
			l.log.Warn("Dropping event with invalid date", logger.Fields{
				"id":   evt.ID,
				"date": evt.Date,
			})
			res.Dropped = append(res.Dropped, evt.ID)
			continue
		}
		batch.Events = append(batch.Events, evt)
	}

	return res, nil
}

var errNullEvent = errors.New("event is null")

// wireSnapshot is the snapshot document with each event left undecoded
type wireSnapshot struct {
	Events      []json.RawMessage       `json:"events"`
	Sources     []event.GroundingSource `json:"sources"`
	LastUpdated int64                   `json:"lastUpdated"`
}

func parseWire(data []byte) (*wireSnapshot, error) {
	var wire wireSnapshot
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if wire.Events == nil {
		return nil, errors.New("parsing snapshot: missing events array")
	}
	return &wire, nil
}

// batch returns the batch header with an empty, non-nil event list
func (w *wireSnapshot) batch() *event.Batch {
	b := &event.Batch{
		Events:  make([]*event.Event, 0, len(w.Events)),
		Sources: w.Sources,
	}
	if b.Sources == nil {
		b.Sources = []event.GroundingSource{}
	}
	if w.LastUpdated != 0 {
		b.LastUpdated = time.UnixMilli(w.LastUpdated)
	}
	return b
}

func decodeEvent(raw json.RawMessage) (*event.Event, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, errNullEvent
	}
	var evt event.Event
	if err := json.Unmarshal(raw, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}

// rawEventID recovers the id of an entry that failed to decode, if it has one
func rawEventID(raw json.RawMessage) string {
	var head struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil || head.ID == nil {
		return ""
	}
	return fmt.Sprint(head.ID)
}

// Decode parses snapshot JSON into a batch. Entries in "events" that do not
// decode as an event are skipped; a document without an "events" array is
// rejected.
func Decode(data []byte) (*event.Batch, error) {
	wire, err := parseWire(data)
	if err != nil {
		return nil, err
	}

	batch := wire.batch()
	for _, raw := range wire.Events {
		if evt, err := decodeEvent(raw); err == nil {
			batch.Events = append(batch.Events, evt)
		}
	}
	return batch, nil
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func looksLikeHTML(data []byte, contentType string) bool {
	if strings.Contains(strings.ToLower(contentType), "html") {
		return true
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '<'
}

// expandPath expands a leading ~ to the home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
