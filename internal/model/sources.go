package model

// SourceBundle holds the raw alphabet sources in argument order.
// Files holds file contents, not paths.
type SourceBundle struct {
	Literals []string
	Files    []string
	Classes  []string
}
