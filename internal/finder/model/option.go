package model

import modelprovider "github.com/viant/roomplanner/genai/llm/provider"

// Option defines a functional option for Finder
type Option func(dao *Finder)

// WithInitial adds model configurations to the Finder instance.
func WithInitial(configs ...*modelprovider.Config) Option {
	return func(dao *Finder) {
		for _, modelConfig := range configs {
			if modelConfig == nil {
				continue
			}
			dao.configs[modelConfig.ID] = modelConfig
		}
	}
}

// WithFactory replaces the model factory.
func WithFactory(factory modelFactory) Option {
	return func(dao *Finder) {
		if factory != nil {
			dao.modelFactory = factory
		}
	}
}
