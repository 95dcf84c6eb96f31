// pipeline.go runs a Rewriter's stages in order without a host.

package search

// Fragments are the three pieces of a listing query the stages transform.
type Fragments struct {
	Join     string
	Where    string
	Distinct string
}

// Pipeline runs JOIN, WHERE and DISTINCT in that order.
type Pipeline struct {
	rw *Rewriter
}

// NewPipeline returns a pipeline over rw.
func NewPipeline(rw *Rewriter) Pipeline {
	return Pipeline{rw: rw}
}

// Run passes each fragment through its stage.
func (p Pipeline) Run(f Fragments) Fragments {
	f.Join = p.rw.ExtendJoin(f.Join)
	f.Where = p.rw.ExtendWhere(f.Where)
	f.Distinct = p.rw.ForceDistinct(f.Distinct)
	return f
}
