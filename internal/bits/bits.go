// Package bits packs named boolean flags into a fixed-width unsigned
// integer. The enumerant list is open: callers supply their own table
// and unknown bits survive round trips untouched.
package bits

import "sort"

// Flag pairs a bit mask with the name reported when the bit is set.
type Flag struct {
	Mask uint64
	Name string
}

// OptionSet is a flag word interpreted through an enumerant table.
type OptionSet struct {
	Value uint64
	Flags []Flag
}

// Has reports whether every bit in mask is set.
func (s OptionSet) Has(mask uint64) bool {
	return s.Value&mask == mask
}

// Set turns the bits in mask on.
func (s *OptionSet) Set(mask uint64) {
	s.Value |= mask
}

// Clear turns the bits in mask off.
func (s *OptionSet) Clear(mask uint64) {
	s.Value &^= mask
}

// Names returns the names of the set flags in mask order. Bits without
// a table entry are not reported.
func (s OptionSet) Names() []string {
	flags := make([]Flag, len(s.Flags))
	copy(flags, s.Flags)
	sort.Slice(flags, func(i, j int) bool { return flags[i].Mask < flags[j].Mask })
	var names []string
	for _, f := range flags {
		if s.Value&f.Mask != 0 {
			names = append(names, f.Name)
		}
	}
	return names
}
