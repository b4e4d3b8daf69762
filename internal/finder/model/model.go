package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/roomplanner/genai/llm"
	provider "github.com/viant/roomplanner/genai/llm/provider"
)

// ensure Finder implements the public interface
var _ llm.Finder = (*Finder)(nil)

// modelFactory creates a model from provider options.
type modelFactory interface {
	CreateModel(ctx context.Context, options *provider.Options) (llm.Model, error)
}

// Finder resolves models by config id and caches successfully created ones.
// Failed creations (e.g. a missing credential) are not cached, so a later
// call picks up a newly configured key.
type Finder struct {
	modelFactory modelFactory
	configs      map[string]*provider.Config
	models       map[string]llm.Model
	mux          sync.RWMutex
}

func (d *Finder) Find(ctx context.Context, id string) (llm.Model, error) {
	d.mux.RLock()
	ret, ok := d.models[id]
	d.mux.RUnlock()
	if ok {
		return ret, nil
	}
	d.mux.Lock()
	defer d.mux.Unlock()
	if ret, ok = d.models[id]; ok {
		return ret, nil
	}
	config, ok := d.configs[id]
	if !ok || config == nil {
		return nil, fmt.Errorf("model config not found: %s", id)
	}
	model, err := d.modelFactory.CreateModel(ctx, &config.Options)
	if err != nil {
		return nil, err
	}
	d.models[id] = model
	return model, nil
}

// Config returns the config registered under id.
func (d *Finder) Config(id string) *provider.Config {
	d.mux.RLock()
	defer d.mux.RUnlock()
	return d.configs[id]
}

func New(options ...Option) *Finder {
	dao := &Finder{
		modelFactory: provider.New(),
		configs:      map[string]*provider.Config{},
		models:       map[string]llm.Model{},
	}
	for _, option := range options {
		option(dao)
	}
	return dao
}
