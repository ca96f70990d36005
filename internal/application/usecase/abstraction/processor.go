package abstraction

import "context"

// Processor runs the derivation pipeline for one accepted image and writes
// its terminal state. Stage failures are absorbed into the record; a
// returned error means the run could not reach a terminal write at all.
type Processor interface {
	Run(ctx context.Context, id string) error
}
