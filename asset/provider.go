// Package asset supplies ready-made scene subtrees from model files
package asset

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/core"
	"github.com/lixenwraith/templewalk/event"
	"github.com/lixenwraith/templewalk/scene"
)

var (
	ErrEmptyModel = errors.New("asset: model has no nodes")
	ErrNoPath     = errors.New("asset: empty model path")
)

// Provider loads a model and returns its root node, detached from any graph
type Provider interface {
	Load(ctx context.Context, path string) (*scene.Node, error)
}

// Placement is where a loaded model is put in the world
type Placement struct {
	Name   string
	Scale  float64
	Offset mgl64.Vec3
}

// Apply names, scales and positions the model root
func (p Placement) Apply(n *scene.Node) {
	if p.Name != "" {
		n.Name = p.Name
	}
	n.Scale = mgl64.Vec3{p.Scale, p.Scale, p.Scale}
	n.Position = p.Offset
}

// LoadAsync loads path on its own goroutine and posts the outcome as one EventModelLoaded
// The loader never touches the scene, insertion happens when the loop consumes the event
func LoadAsync(ctx context.Context, p Provider, path string, poster event.Poster) {
	core.Go(func() {
		node, err := p.Load(ctx, path)
		if err != nil {
			log.Printf("asset: load %q failed: %v", path, err)
		}
		poster.Push(event.Event{
			Type:    event.EventModelLoaded,
			Payload: &event.ModelLoadedPayload{Path: path, Node: node, Err: err},
		})
	})
}

func wrapLoad(path string, err error) error {
	return fmt.Errorf("load %s: %w", path, err)
}
