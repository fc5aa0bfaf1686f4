package gpu

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

// PipelineConfig is the cache key of a specialized render pipeline. Scene
// passes define one config type per pipeline family, carrying the fields
// that actually change the compiled pipeline (target format, blend state,
// ...). Configs must be comparable value types, they are used as map keys.
type PipelineConfig interface {
	// Specialize builds the pipeline for this config.
	Specialize(device *wgpu.Device) (*wgpu.RenderPipeline, error)
}

// CachedPipeline is a pipeline together with its lazily fetched bind group
// layouts.
type CachedPipeline struct {
	Pipeline *wgpu.RenderPipeline

	bindGroups *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

// BindGroupLayout returns the layout at the given group index, fetching it
// from the pipeline on the first request.
func (c *CachedPipeline) BindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	if layout, ok := c.bindGroups.Get(idx); ok {
		return layout
	}

	layout := c.Pipeline.GetBindGroupLayout(idx)
	c.bindGroups.Add(idx, layout)

	return layout
}

// PipelineCache keeps the most recently used pipeline specializations of all
// scene passes alive. The surface owns one cache for its device and hands it
// to the passes with the render target; evicted pipelines are released.
type PipelineCache struct {
	device *wgpu.Device
	cache  *lru.Cache[PipelineConfig, CachedPipeline]
}

func newPipelineCache(device *wgpu.Device) *PipelineCache {
	cache, _ := lru.NewWithEvict[PipelineConfig, CachedPipeline](16, releaseOnEviction)

	return &PipelineCache{
		device: device,
		cache:  cache,
	}
}

// Get returns the pipeline for the config, building it on a miss.
func (p *PipelineCache) Get(conf PipelineConfig) (CachedPipeline, error) {
	if cached, ok := p.cache.Get(conf); ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return CachedPipeline{}, fmt.Errorf("build pipeline: %w", err)
	}

	bindGroups, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](16, releaseLayoutOnEviction)

	cached := CachedPipeline{Pipeline: pipeline, bindGroups: bindGroups}
	p.cache.Add(conf, cached)

	return cached, nil
}

// Release drops all cached pipelines, releasing them. Must happen before the
// device goes away.
func (p *PipelineCache) Release() {
	p.cache.Purge()
}

func releaseOnEviction(_ PipelineConfig, cached CachedPipeline) {
	cached.bindGroups.Purge()
	cached.Pipeline.Release()
}

func releaseLayoutOnEviction(_ uint32, layout *wgpu.BindGroupLayout) {
	layout.Release()
}
