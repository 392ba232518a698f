package model

// FileResult is the outcome of fixing one input.
type FileResult struct {
	Path     string
	Original string
	Fixed    string
	Diagrams int // diagram blocks repaired
	Lines    int // lines whose text changed
	Err      error
}

// Changed reports whether fixing altered the input.
func (r FileResult) Changed() bool {
	return r.Err == nil && r.Original != r.Fixed
}

// Summary holds the results of an operation for display.
type Summary struct {
	Modified  []string
	Unchanged []string
	Failed    []string
	Message   string
	DryRun    bool // Modified lists files that would change
}
