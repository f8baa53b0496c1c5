package vault

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dataloader/internal/core/ports"
)

const NodeID graft.ID = "adapter.vault"

func init() {
	graft.Register(graft.Node[ports.Vault]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Vault, error) {
			return New(), nil
		},
	})
}
