package timetable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultBaseURL is the hosted timetable API
const DefaultBaseURL = "https://easechaos-api.onrender.com"

const (
	timetablePath = "/get_time_table"

	scheduleKind = "schedule"
	examKind     = "exam"
)

// revalidateTimeout bounds a background refresh
const revalidateTimeout = 20 * time.Second

// Client fetches timetables from the EaseCHAOS API and caches them
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      Cache
	log        *zap.Logger
	validate   *validator.Validate
	now        func() time.Time

	wg         sync.WaitGroup
	mu         sync.Mutex
	refreshing map[string]bool
}

// Result carries a fetched week along with where it came from
type Result struct {
	Week    WeekSchedule
	Version string
	// FromCache is set when no network request was made
	FromCache bool
	// Stale is set when the network failed and an expired copy was served
	Stale bool
}

// ExamResult is the exam counterpart of Result
type ExamResult struct {
	Days      []ExamDay
	Version   string
	FromCache bool
	Stale     bool
}

// NewClient creates a new API client. A nil cache disables caching and a
// nil logger discards logs.
func NewClient(baseURL string, cache Cache, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache:      cache,
		log:        log,
		validate:   validator.New(),
		now:        time.Now,
		refreshing: make(map[string]bool),
	}
}

// Wait blocks until background refreshes started by earlier fetches finish.
func (c *Client) Wait() {
	c.wg.Wait()
}

// FetchWeek returns the class timetable for req.
func (c *Client) FetchWeek(ctx context.Context, req Request) (*Result, error) {
	payload, meta, err := c.fetch(ctx, scheduleKind, timetablePath, req, checkWeek)
	if err != nil {
		return nil, err
	}

	resp, err := decodeWeek(payload)
	if err != nil {
		return nil, err
	}

	return &Result{
		Week:      resp.Data,
		Version:   resp.Version,
		FromCache: meta.fromCache,
		Stale:     meta.stale,
	}, nil
}

// FetchExams returns the exam timetable for req.
func (c *Client) FetchExams(ctx context.Context, req Request) (*ExamResult, error) {
	req.IsExam = true

	payload, meta, err := c.fetch(ctx, examKind, timetablePath, req, checkExams)
	if err != nil {
		return nil, err
	}

	resp, err := decodeExams(payload)
	if err != nil {
		return nil, err
	}

	return &ExamResult{
		Days:      resp.Data,
		Version:   resp.Version,
		FromCache: meta.fromCache,
		Stale:     meta.stale,
	}, nil
}

// decodeWeek parses a class timetable response and normalizes its days
func decodeWeek(payload []byte) (*WeekResponse, error) {
	var resp WeekResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	resp.Data = resp.Data.Normalize()
	if err := resp.Data.Validate(); err != nil {
		return nil, err
	}
	return &resp, nil
}

func decodeExams(payload []byte) (*ExamResponse, error) {
	var resp ExamResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

func checkWeek(payload []byte) error {
	_, err := decodeWeek(payload)
	return err
}

func checkExams(payload []byte) error {
	_, err := decodeExams(payload)
	return err
}

type fetchMeta struct {
	fromCache bool
	stale     bool
}

// fetch serves from cache when fresh, falls back to an expired entry when the
// network fails, and refreshes in the background once an entry is half way
// to expiry. Only payloads that pass check are cached or served.
func (c *Client) fetch(ctx context.Context, kind, path string, req Request, check func([]byte) error) ([]byte, fetchMeta, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fetchMeta{}, fmt.Errorf("invalid request: %w", err)
	}

	key := CacheKey(kind, req)
	cached := c.readCache(ctx, key)
	if cached != nil && check(cached.Payload) != nil {
		c.log.Debug("ignoring unusable cache entry", zap.String("key", key))
		cached = nil
	}

	if cached != nil && cached.Fresh(c.now()) {
		if cached.Age(c.now()) > cacheDuration/2 {
			c.revalidate(key, path, req, check)
		}
		c.log.Debug("serving cached timetable", zap.String("key", key))
		return cached.Payload, fetchMeta{fromCache: true}, nil
	}

	payload, err := c.post(ctx, path, req)
	if err != nil {
		if cached != nil {
			c.log.Warn("network failed, serving stale timetable",
				zap.String("key", key),
				zap.Duration("age", cached.Age(c.now())),
				zap.Error(err))
			return cached.Payload, fetchMeta{fromCache: true, stale: true}, nil
		}
		return nil, fetchMeta{}, err
	}

	if err := check(payload); err != nil {
		return nil, fetchMeta{}, err
	}
	c.writeCache(ctx, key, payload)

	return payload, fetchMeta{}, nil
}

// revalidate refreshes key in the background. At most one refresh per key
// runs at a time.
func (c *Client) revalidate(key, path string, req Request, check func([]byte) error) {
	c.mu.Lock()
	if c.refreshing[key] {
		c.mu.Unlock()
		return
	}
	c.refreshing[key] = true
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			c.mu.Lock()
			delete(c.refreshing, key)
			c.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), revalidateTimeout)
		defer cancel()

		payload, err := c.post(ctx, path, req)
		if err != nil {
			c.log.Debug("background refresh failed", zap.String("key", key), zap.Error(err))
			return
		}
		if err := check(payload); err != nil {
			c.log.Warn("background refresh returned an unusable timetable", zap.String("key", key), zap.Error(err))
			return
		}
		c.writeCache(ctx, key, payload)
	}()
}

func (c *Client) readCache(ctx context.Context, key string) *CacheEntry {
	if c.cache == nil {
		return nil
	}
	entry, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	if entry.AppVersion != AppVersion {
		return nil
	}
	return entry
}

func (c *Client) writeCache(ctx context.Context, key string, payload []byte) {
	if c.cache == nil {
		return
	}

	var head struct {
		Version string `json:"version"`
	}
	_ = json.Unmarshal(payload, &head)

	entry := &CacheEntry{
		Timestamp:  c.now(),
		AppVersion: AppVersion,
		Version:    head.Version,
		Payload:    payload,
	}
	if err := c.cache.Put(ctx, key, entry); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// post sends req to path and returns the raw response body
func (c *Client) post(ctx context.Context, path string, req Request) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "easechaos/"+AppVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, req.ClassPattern)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return buf.Bytes(), nil
}

// ErrNotFound is returned when the API has no timetable for a class.
var ErrNotFound = errors.New("timetable not found")
