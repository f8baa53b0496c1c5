package parser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dataloader/internal/adapters/logger"
	"go.trai.ch/dataloader/internal/core/ports"
)

const NodeID graft.ID = "adapter.parser"

func init() {
	graft.Register(graft.Node[ports.DocumentParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DocumentParser, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
