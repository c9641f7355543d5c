package errors

import (
	"sync"

	multierror "github.com/hashicorp/go-multierror"
)

// Collector accumulates independent failures for deferred, non-fatal
// aggregate reporting. End-job hands every worker failure to a Collector so
// partial shutdown proceeds even when several workers fail to end cleanly.
type Collector struct {
	mu   sync.Mutex
	errs *multierror.Error
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Collect(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = multierror.Append(c.errs, err)
}

func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs.ErrorOrNil() != nil
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.errs == nil {
		return 0
	}
	return c.errs.Len()
}

// Errors returns the collected failures in collection order.
func (c *Collector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.errs == nil {
		return nil
	}
	return c.errs.WrappedErrors()
}

// Err returns the aggregate error, or nil when nothing was collected.
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs.ErrorOrNil()
}
