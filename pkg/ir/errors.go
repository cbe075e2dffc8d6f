package ir

// StructuralError indicates that the source document lacks the structure the
// pipeline requires (no pages, no renderable root frame). It is fatal: there
// is no recovery inside the pipeline, and retrying the same document cannot
// succeed.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "document structure: " + e.Reason
}
