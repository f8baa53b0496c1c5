package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dataloader/internal/core/ports"
)

const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewOSFS(), nil
		},
	})
}
