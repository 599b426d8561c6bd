package bleadv

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daveverwer/Bluetooth/internal/adv"
	"github.com/daveverwer/Bluetooth/internal/gap"
)

func TestDecodeHex(t *testing.T) {
	raw := " |0201_06| "
	data, err := decodeHex(raw)
	require.NoError(t, err)
	require.Len(t, data, 3)
}

func TestDecodeHexOddLength(t *testing.T) {
	_, err := decodeHex("ABC")
	require.Error(t, err)
}

func TestAnalyzeHexStrictUnknownType(t *testing.T) {
	_, err := AnalyzeHex(context.Background(), "02010602F0AA")
	var unkErr *adv.UnknownTypeError
	require.ErrorAs(t, err, &unkErr)
	require.Equal(t, adv.RecordType(0xF0), unkErr.Type)
}

func TestAnalyzeHexLenient(t *testing.T) {
	result, err := AnalyzeHexWithOptions(context.Background(), "02010602F0AA", AnalyzeOptions{IgnoreUnknown: true})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	require.Equal(t, "0x06", result.Fields["flags"])
}

func TestAnalyzeHexCustomRegistry(t *testing.T) {
	opts := AnalyzeOptions{Records: []adv.Record{gap.Flags{}}}
	result, err := AnalyzeHexWithOptions(context.Background(), "020106", opts)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	_, err = AnalyzeHexWithOptions(context.Background(), "020A04", opts)
	var unkErr *adv.UnknownTypeError
	require.ErrorAs(t, err, &unkErr)
}

func TestEncodeAnalyzeRoundTrip(t *testing.T) {
	records := []adv.Record{
		gap.Flags{Flags: 0x06},
		gap.LocalName{Name: "edge-07"},
		gap.TxPowerLevel{Level: -8},
	}
	buf, err := Encode(records)
	require.NoError(t, err)

	result, err := AnalyzeHex(context.Background(), hex.EncodeToString(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, records, result.Records)
	require.Equal(t, "edge-07", result.Fields["local_name"])
	require.Equal(t, -8, result.Fields["tx_power_dbm"])
}

func TestEncodeSizeExceeded(t *testing.T) {
	_, err := Encode([]adv.Record{gap.LocalName{Name: strings.Repeat("x", 30)}})
	var sizeErr *adv.SizeExceededError
	require.ErrorAs(t, err, &sizeErr)
	require.Equal(t, 32, sizeErr.Size)
}

func TestFieldSet(t *testing.T) {
	result, err := AnalyzeHex(context.Background(), "02010605094B697465020A04")
	require.NoError(t, err)
	fs := result.FieldSet()

	name, err := fs.String("local_name")
	require.NoError(t, err)
	require.Equal(t, "Kite", name)

	power, err := fs.Int("tx_power_dbm")
	require.NoError(t, err)
	require.Equal(t, int64(4), power)

	discoverable, err := fs.Bool("le_general_discoverable")
	require.NoError(t, err)
	require.True(t, discoverable)

	_, err = fs.Float("missing")
	require.Error(t, err)
}

func TestResultString(t *testing.T) {
	result, err := AnalyzeHex(context.Background(), "020106")
	require.NoError(t, err)
	s := result.String()
	require.Contains(t, s, "020106")
	require.Contains(t, s, "record_count")
}

func TestAnalyzeHexEmpty(t *testing.T) {
	result, err := AnalyzeHex(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, result.Records)
	require.Zero(t, result.ByteCount)
}

func TestAnalyzeHexCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := AnalyzeHex(ctx, "020106")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeHexTruncated(t *testing.T) {
	_, err := AnalyzeHex(context.Background(), "05094142")
	var insErr *adv.InsufficientBytesError
	require.ErrorAs(t, err, &insErr)
	require.Equal(t, 4, insErr.Actual)
	require.Equal(t, 6, insErr.Expected)
}
