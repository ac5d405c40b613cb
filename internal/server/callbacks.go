package server

import (
	"fmt"
	"slices"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/layout"
	"github.com/yildizm/LaunchDash/internal/monitor"
)

// Callback binds a resolver to the output slot it fills and the input
// widgets whose changes re-run it
type Callback struct {
	Output    string
	Inputs    []string
	Operation monitor.OperationType
	Resolve   func(chart.Selection) any
}

// Callbacks is the registry of output slots, kept in registration order
type Callbacks struct {
	byOutput map[string]Callback
	order    []string
}

// NewCallbacks creates an empty registry
func NewCallbacks() *Callbacks {
	return &Callbacks{byOutput: make(map[string]Callback)}
}

// Register adds cb. Each output slot takes exactly one callback.
func (c *Callbacks) Register(cb Callback) error {
	if cb.Output == "" {
		return fmt.Errorf("callback output must not be empty")
	}
	if cb.Resolve == nil {
		return fmt.Errorf("callback for %s has no resolver", cb.Output)
	}
	if _, exists := c.byOutput[cb.Output]; exists {
		return fmt.Errorf("output %s already has a callback", cb.Output)
	}

	c.byOutput[cb.Output] = cb
	c.order = append(c.order, cb.Output)
	return nil
}

// Lookup returns the callback registered for output
func (c *Callbacks) Lookup(output string) (Callback, bool) {
	cb, ok := c.byOutput[output]
	return cb, ok
}

// Outputs lists the registered output slots
func (c *Callbacks) Outputs() []string {
	return slices.Clone(c.order)
}

// DefaultCallbacks wires the pie and scatter resolvers over ds to the
// dashboard's graph slots
func DefaultCallbacks(ds *dataset.Dataset) *Callbacks {
	c := NewCallbacks()

	// both outputs are fresh, so Register cannot fail here
	_ = c.Register(Callback{
		Output:    layout.PieGraphID,
		Inputs:    []string{layout.SiteDropdownID},
		Operation: monitor.OperationPie,
		Resolve: func(sel chart.Selection) any {
			return chart.Pie(ds, sel.Site)
		},
	})
	_ = c.Register(Callback{
		Output:    layout.ScatterGraphID,
		Inputs:    []string{layout.SiteDropdownID, layout.PayloadSliderID},
		Operation: monitor.OperationScatter,
		Resolve: func(sel chart.Selection) any {
			return chart.Scatter(ds, sel.Site, sel.Payload)
		},
	})

	return c
}
