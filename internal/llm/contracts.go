package llm

import "context"

// GenerateRequest carries one drawing and the requested production quantity
// to the document generator.
type GenerateRequest struct {
	PDF      []byte
	Filename string
	Quantity int
}

// RouterGenerator is the boundary to the external document generator: given
// a drawing and a quantity it returns free-form text purportedly containing
// a CSV router. The output is adversarially unstructured; the repair
// pipeline owns making it renderable.
type RouterGenerator interface {
	GenerateRouter(ctx context.Context, req GenerateRequest) (string, error)
}
