package assets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetpipe/internal/adapters/fs"
	"go.trai.ch/assetpipe/internal/adapters/logger"
	"go.trai.ch/assetpipe/internal/adapters/manifest"
	"go.trai.ch/assetpipe/internal/adapters/shell"
	"go.trai.ch/assetpipe/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline factory Graft node.
const NodeID graft.ID = "adapter.assets"

func init() {
	graft.Register(graft.Node[ports.PipelineFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID, manifest.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PipelineFactory, error) {
			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}
			vendor, err := graft.Dep[ports.VendorManifest](ctx)
			if err != nil {
				return nil, err
			}
			tools, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(resolver, vendor, tools, log), nil
		},
	})
}
