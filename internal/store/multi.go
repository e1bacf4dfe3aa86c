package store

import (
	"context"

	"eca-density/internal/eval"
)

// Multi saves each report to every wrapped persister in order, stopping at
// the first error.
type Multi []eval.Persister

// Save implements eval.Persister.
func (m Multi) Save(ctx context.Context, r *eval.Report) error {
	for _, p := range m {
		if err := p.Save(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
