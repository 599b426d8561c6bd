// Package bleadv decodes and builds Bluetooth LE advertising payloads:
// the GAP record streams carried by advertising and scan-response PDUs.
package bleadv

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/daveverwer/Bluetooth/internal/adv"
	"github.com/daveverwer/Bluetooth/internal/gap"
)

// Result captures the outcome of AnalyzeHex.
type Result struct {
	RawHex    string
	ByteCount int
	Records   []adv.Record
	Fields    map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"byte_count":   r.ByteCount,
		"raw_hex":      r.RawHex,
		"record_count": len(r.Records),
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("bytes:%d raw:%s (marshal error: %v)", r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// AnalyzeHex decodes an advertising payload hex dump with the default
// registry in strict mode.
func AnalyzeHex(ctx context.Context, raw string) (Result, error) {
	return AnalyzeHexWithOptions(ctx, raw, AnalyzeOptions{})
}

// AnalyzeHexWithOptions decodes an advertising payload hex dump with
// custom options.
func AnalyzeHexWithOptions(ctx context.Context, raw string, opts AnalyzeOptions) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	decoder := adv.NewDecoder(opts.records()...)
	decoder.IgnoreUnknownType = opts.IgnoreUnknown
	records, err := decoder.Decode(adv.NewSlice(data))
	if err != nil {
		return Result{}, err
	}
	return Result{
		RawHex:    strings.ToUpper(stripWhitespace(raw)),
		ByteCount: len(data),
		Records:   records,
		Fields:    buildFields(records),
	}, nil
}

// Encode serializes records into a fresh advertising buffer, enforcing
// the 31-byte payload limit atomically.
func Encode(records []adv.Record) (*adv.AdvertisingBuffer, error) {
	return adv.EncodeAdvertising(records)
}

// DefaultRecords returns the prototype list backing the default decode
// registry.
func DefaultRecords() []adv.Record {
	return gap.DefaultRecords()
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(strings.ToUpper(clean), "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
