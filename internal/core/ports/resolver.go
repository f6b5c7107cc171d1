package ports

// InputResolver defines the interface for resolving input files.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs expands glob patterns relative to root into file paths
	// relative to root. Results follow pattern order, sorted within one
	// pattern, without duplicates.
	ResolveInputs(patterns []string, root string) ([]string, error)
}
