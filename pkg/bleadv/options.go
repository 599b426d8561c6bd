package bleadv

import (
	"github.com/daveverwer/Bluetooth/internal/adv"
	"github.com/daveverwer/Bluetooth/internal/gap"
)

// AnalyzeOptions configures decoding.
type AnalyzeOptions struct {
	// IgnoreUnknown skips record types without a registry entry
	// instead of failing the whole decode.
	IgnoreUnknown bool

	// Records replaces the default decode registry. Later entries win
	// on duplicate type codes.
	Records []adv.Record
}

func (opts AnalyzeOptions) records() []adv.Record {
	if opts.Records != nil {
		return opts.Records
	}
	return gap.DefaultRecords()
}
