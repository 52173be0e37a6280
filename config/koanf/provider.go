package koanf

import (
	"github.com/delegate-go/delegate/config"
	"github.com/knadh/koanf"
)

// provider of binding configurations populated by the koanf library.
// https://github.com/knadh/koanf
type provider struct {
	k *koanf.Koanf
}

func (p *provider) Unmarshal(path string, output any) error {
	return p.k.UnmarshalWithConf(path, output,
		koanf.UnmarshalConf{Tag: "path"})
}

// P returns a config.Provider using the Koanf instance.
func P(k *koanf.Koanf) config.Provider {
	if k == nil {
		panic("k cannot be nil")
	}
	return &provider{k}
}
