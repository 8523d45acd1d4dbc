package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/comicjam/storyboard-api/internal/core/domain"
)

// stubGenerator counts calls and optionally blocks until release is closed.
type stubGenerator struct {
	image   string
	caption string
	theme   domain.ChallengeTheme
	err     error

	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (g *stubGenerator) wait() {
	n := g.calls.Add(1)
	if g.started != nil && n == 1 {
		close(g.started)
	}
	if g.release != nil {
		<-g.release
	}
}

func (g *stubGenerator) GenerateImage(_ context.Context, _ string) (string, error) {
	g.wait()
	return g.image, g.err
}

func (g *stubGenerator) SuggestCaption(_ context.Context, _ string) (string, error) {
	g.wait()
	return g.caption, g.err
}

func (g *stubGenerator) GenerateTheme(_ context.Context) (domain.ChallengeTheme, error) {
	g.wait()
	return g.theme, g.err
}

// mapCache is an in-process GenerationCache.
type mapCache struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	sets   int
}

func newMapCache() *mapCache {
	return &mapCache{values: make(map[string]string)}
}

func (c *mapCache) Get(_ context.Context, kind, prompt string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.values[kind+"|"+prompt]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, kind, prompt, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.values[kind+"|"+prompt] = value
	return nil
}
