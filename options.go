package tabmate

// Overrides carries optional changes to Options. Nil fields keep the
// current value.
type Overrides struct {
	Tabs     *int
	TabWidth *int
}

// Int returns a pointer to v for use in Overrides.
func Int(v int) *int {
	return &v
}

// Apply returns base with the set fields of o replaced.
func (o Overrides) Apply(base Options) Options {
	if o.Tabs != nil {
		base.Tabs = *o.Tabs
	}
	if o.TabWidth != nil {
		base.TabWidth = *o.TabWidth
	}
	return base
}
