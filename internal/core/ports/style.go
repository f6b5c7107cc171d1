package ports

import (
	"context"

	"go.trai.ch/assetpipe/internal/core/domain"
)

// StyleCompiler compiles stylesheet sources into CSS.
//
//go:generate mockgen -source=style.go -destination=mocks/mock_style.go -package=mocks
type StyleCompiler interface {
	// Compile compiles src. loadPath is used to resolve imports.
	Compile(ctx context.Context, src []byte, loadPath string, style domain.StyleOutput) ([]byte, error)
}
