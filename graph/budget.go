package graph

import "github.com/pkg/errors"

// checkBudget returns ErrAllocationFailure if extraBytes would push the
// graph's tracked footprint past Params.MaxBytes. MaxBytes == 0 means
// unbounded, matching spec.md §6's "0 = unbounded" default.
func (c *core) checkBudget(extraBytes int64) error {
	if c.params.MaxBytes == 0 {
		return nil
	}
	if c.usedBytes+extraBytes > c.params.MaxBytes {
		return errors.Wrapf(ErrAllocationFailure, "would use %d bytes, budget is %d", c.usedBytes+extraBytes, c.params.MaxBytes)
	}
	return nil
}

// chargeBudget records extraBytes as committed against the graph's
// tracked footprint. Call only after the allocation it accounts for has
// actually succeeded.
func (c *core) chargeBudget(extraBytes int64) {
	c.usedBytes += extraBytes
}
