package ports

import (
	"context"

	"go.trai.ch/squeeze/internal/core/domain"
)

// Transformer maps source text to a minified artifact.
// Implementations must be deterministic: equal input yields byte-identical output.
//
//go:generate mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks
type Transformer interface {
	Transform(ctx context.Context, src domain.SourceFile) (domain.Artifact, error)
}
