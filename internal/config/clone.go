package config

import "github.com/mohae/deepcopy"

// Clone returns a deep copy of d so a generator constructed over it never
// aliases caller-owned state. A nil receiver clones to an empty document.
func (d *Document) Clone() *Document {
	if d == nil {
		return &Document{}
	}
	out, _ := deepcopy.Copy(d).(*Document)
	return out
}
