package ports

// VendorManifest resolves the ordered vendor source list of a manifest.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type VendorManifest interface {
	// Resolve returns the entries of the manifest at path in order.
	// A missing manifest resolves to an empty list.
	Resolve(path string) ([]string, error)
}
