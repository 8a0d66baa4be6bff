package parser

import (
	"fmt"

	"github.com/indaco/bumpfile/internal/accessor"
	"github.com/indaco/bumpfile/internal/accessor/action"
	"github.com/indaco/bumpfile/internal/accessor/manifest"
	"github.com/indaco/bumpfile/internal/accessor/pkgjson"
)

// Resolver maps a kind to the accessor handling it.
type Resolver struct {
	accessors map[accessor.Kind]accessor.Accessor
}

// NewResolver returns a Resolver with the default accessors: the action
// accessor, the manifest Editor and the JSON package accessor.
func NewResolver() *Resolver {
	return &Resolver{
		accessors: map[accessor.Kind]accessor.Accessor{
			accessor.KindAction:   action.New(),
			accessor.KindManifest: manifest.NewEditor(),
			accessor.KindPackage:  pkgjson.New(),
		},
	}
}

// Register replaces the accessor used for kind.
func (r *Resolver) Register(kind accessor.Kind, a accessor.Accessor) *Resolver {
	r.accessors[kind] = a
	return r
}

// For returns the accessor for kind.
func (r *Resolver) For(kind accessor.Kind) (accessor.Accessor, error) {
	a, ok := r.accessors[kind]
	if !ok {
		return nil, fmt.Errorf("no accessor registered for kind %q", kind)
	}
	return a, nil
}
