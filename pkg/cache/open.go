package cache

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultDir returns $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func DefaultDir(app string) (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, app), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", app), nil
}

// Open returns the backend named by rawURL:
//
//	file:///path/to/dir      FileCache
//	redis://host:6379/0      RedisCache
//	mongodb://host/db        MongoCache
//
// An empty URL opens a FileCache in dir.
func Open(ctx context.Context, rawURL, dir string, logger *log.Logger) (Cache, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	if rawURL == "" {
		logger.Debug("cache", "backend", "file", "dir", dir)
		return NewFileCache(dir)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		logger.Debug("cache", "backend", "file", "dir", u.Path)
		return NewFileCache(u.Path)
	case "redis", "rediss":
		logger.Debug("cache", "backend", "redis", "host", u.Host)
		return NewRedisCache(ctx, rawURL)
	case "mongodb", "mongodb+srv":
		logger.Debug("cache", "backend", "mongo", "host", u.Host)
		return NewMongoCache(ctx, rawURL)
	}
	return nil, fmt.Errorf("%w: scheme %q", ErrUnsupported, u.Scheme)
}
