package print

import "context"

// Renderer turns an assembled view into the fixed printable artifact. The
// concrete implementation produces PDF bytes; tests can inject a stub.
type Renderer interface {
	Render(ctx context.Context, view *View) ([]byte, error)
}
