package ports

// DefinitionScanPort discovers definition files below a directory.
type DefinitionScanPort interface {
	FindDefinitions(root string) ([]string, error)
}
