// Package catalog loads the immutable recipe dataset and its version
// manifest. The dataset is fetched at most once per process; across runs a
// cached copy in the local store answers when the network is down, and a
// manifest version comparison decides when the full document must be
// refetched.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Settings keys for the persisted cache. Both are written in one transaction
// so version and payload can never disagree.
const (
	settingCatalogVersion = "catalog_version"
	settingCatalogCache   = "catalog_cache"
)

// Compile-time interface check.
var _ domain.CatalogSource = (*Loader)(nil)

// Option configures the loader.
type Option func(*Loader)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// Loader implements domain.CatalogSource over plain HTTP GET of two static
// documents: manifest.json and recipes.json.
type Loader struct {
	baseURL  string
	client   *http.Client
	settings domain.SettingStore
	log      *zap.Logger

	mu      sync.RWMutex
	recipes []domain.Recipe
	version string
	loaded  bool
}

// New creates a loader reading from baseURL and caching through settings.
func New(baseURL string, settings domain.SettingStore, log *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		settings: settings,
		log:      log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the full catalog. The first call per process fetches (or
// falls back to the persisted cache); later calls return the in-memory copy.
// Network failure degrades to cached data, then to an empty list. It never
// returns an error for transport problems.
func (l *Loader) Load(ctx context.Context) ([]domain.Recipe, error) {
	l.mu.RLock()
	if l.loaded {
		defer l.mu.RUnlock()
		return l.recipes, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return l.recipes, nil
	}

	if err := l.refreshLocked(ctx, false); err != nil {
		l.log.Warn("catalog fetch failed, using cached copy", zap.Error(err))
		l.recipes, l.version = l.cached(ctx)
	}
	l.loaded = true
	return l.recipes, nil
}

// Get returns a single recipe by ID, or ErrNotFound.
func (l *Loader) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	recipes, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Refresh re-checks the manifest and reports whether the catalog version
// changed, in which case the in-memory copy has been replaced and callers
// must rebuild derived views. Transport failures report no change.
func (l *Loader) Refresh(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	before := l.version
	if err := l.refreshLocked(ctx, false); err != nil {
		l.log.Warn("catalog refresh failed", zap.Error(err))
		return false, nil
	}
	l.loaded = true
	return l.version != before, nil
}

// ForceRefresh bypasses intermediary caches and refetches both documents
// regardless of the manifest version.
func (l *Loader) ForceRefresh(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	manifest, err := l.fetchManifest(ctx, true)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if err := l.fetchCatalog(ctx, manifest.Version, true); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	l.loaded = true
	return nil
}

// refreshLocked runs the manifest-gated load. Callers hold l.mu.
func (l *Loader) refreshLocked(ctx context.Context, force bool) error {
	manifest, err := l.fetchManifest(ctx, force)
	if err != nil {
		return err
	}

	// An unchanged version reuses the cached payload without refetching
	// the recipe document.
	if cached, cachedVersion := l.cached(ctx); cachedVersion == manifest.Version && cached != nil {
		l.recipes = cached
		l.version = cachedVersion
		return nil
	}

	return l.fetchCatalog(ctx, manifest.Version, force)
}

// fetchCatalog retrieves recipes.json and replaces both the persisted cache
// and the in-memory copy. Version and payload persist atomically.
func (l *Loader) fetchCatalog(ctx context.Context, version string, force bool) error {
	var recipes []domain.Recipe
	raw, err := l.fetchJSON(ctx, "recipes.json", force, &recipes)
	if err != nil {
		return err
	}

	err = l.settings.SetSettings(ctx, map[string]any{
		settingCatalogVersion: version,
		settingCatalogCache:   json.RawMessage(raw),
	})
	if err != nil {
		// The fetched data is still good for this session; only the
		// offline fallback is affected.
		l.log.Warn("persisting catalog cache failed", zap.Error(err))
	}

	l.recipes = recipes
	l.version = version
	l.log.Info("catalog loaded",
		zap.String("version", version),
		zap.Int("recipes", len(recipes)))
	return nil
}

// cached returns the persisted catalog payload and its version, or nil.
func (l *Loader) cached(ctx context.Context) ([]domain.Recipe, string) {
	var version string
	if ok, err := l.settings.Setting(ctx, settingCatalogVersion, &version); err != nil || !ok {
		return nil, ""
	}

	var raw json.RawMessage
	if ok, err := l.settings.Setting(ctx, settingCatalogCache, &raw); err != nil || !ok {
		return nil, ""
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		l.log.Warn("cached catalog is corrupt, ignoring", zap.Error(err))
		return nil, ""
	}
	return recipes, version
}

func (l *Loader) fetchManifest(ctx context.Context, force bool) (*domain.Manifest, error) {
	var manifest domain.Manifest
	if _, err := l.fetchJSON(ctx, "manifest.json", force, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// fetchJSON GETs a document relative to the base URL and decodes it into
// out, returning the raw bytes. When force is set, no-cache headers and a
// cache-busting query parameter defeat any content-addressed intermediary.
func (l *Loader) fetchJSON(ctx context.Context, name string, force bool, out any) ([]byte, error) {
	u, err := url.JoinPath(l.baseURL, name)
	if err != nil {
		return nil, fmt.Errorf("building url for %s: %w", name, err)
	}
	if force {
		u = fmt.Sprintf("%s?t=%d", u, time.Now().UnixNano())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", name, err)
	}
	if force {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", name, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return raw, nil
}
