package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetpipe/internal/core/ports"
)

// NodeID is the unique identifier for the vendor manifest Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.VendorManifest]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VendorManifest, error) {
			return NewReader(), nil
		},
	})
}
