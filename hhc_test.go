package hhc

import (
	"math/big"
	"sort"
	"testing"

	"github.com/arloliu/hhc/internal/errs"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)

	return n
}

func TestEncodeDecode(t *testing.T) {
	n := mustBig(t, "302231454903657293676544")
	require.Equal(t, "fDpEShMz-qput", Encode(n))
	require.Equal(t, "-", Encode(big.NewInt(0)))
	require.Equal(t, "~", Encode(big.NewInt(65)))
	require.Equal(t, ",zz", Encode(big.NewInt(-67)))

	got, err := Decode("fDpEShMz-qput")
	require.NoError(t, err)
	require.Equal(t, 0, n.Cmp(got))
}

func TestSortableEncode(t *testing.T) {
	require.Equal(t, "-", SortableEncode(big.NewInt(0), 0, false))
	require.Equal(t, "~", SortableEncode(big.NewInt(65), 0, false))
	require.Equal(t, ".-", SortableEncode(big.NewInt(66), 0, true))
	require.Equal(t, "..", SortableEncode(big.NewInt(67), 0, true))
	require.Equal(t, "-..", SortableEncode(big.NewInt(67), 0, false))
	require.Equal(t, "-.", SortableEncode(big.NewInt(1), 0, false))
	require.Equal(t, ",zz", SortableEncode(big.NewInt(-67), 0, false))
	require.Equal(t, "fDpEShMz-qput", SortableEncode(mustBig(t, "302231454903657293676544"), 0, false))

	for _, s := range []string{SortableEncode(big.NewInt(1), 0, false), SortableEncode(big.NewInt(67), 0, false)} {
		require.NotContains(t, []string{".", ".."}, s)
	}

	v, err := DecodeInt64(SortableEncode(big.NewInt(1), 0, false))
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
	v, err = DecodeInt64(SortableEncode(big.NewInt(67), 0, false))
	require.NoError(t, err)
	require.Equal(t, int64(67), v)
}

func TestSortableEncode_Order(t *testing.T) {
	var encoded []string
	for v := int64(-512); v <= 512; v++ {
		encoded = append(encoded, SortableEncode(big.NewInt(v), 3, false))
	}
	require.True(t, sort.StringsAreSorted(encoded))
}

func TestLegacy(t *testing.T) {
	tests := []struct {
		n    string
		want string
	}{
		{"0", "0"},
		{"65", "~"},
		{"66", "10"},
		{"67", "11"},
		{"302231454903657293676544", "iFsGUkO.0tsxw"},
		{"-67", ",11"},
	}
	for _, tt := range tests {
		t.Run(tt.n, func(t *testing.T) {
			n := mustBig(t, tt.n)
			require.Equal(t, tt.want, EncodeLegacy(n))

			got, err := DecodeLegacy(tt.want)
			require.NoError(t, err)
			require.Equal(t, 0, n.Cmp(got))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(",,zz")
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	_, err = DecodeLegacy(",,11")
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	_, err = Decode("")
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	_, err = DecodeInt64("fDpEShMz-qput")
	require.ErrorIs(t, err, errs.ErrOverflow)
}

func TestDecode_NegativeZero(t *testing.T) {
	n, err := Decode(",~")
	require.NoError(t, err)
	require.Equal(t, 0, n.Sign())

	n, err = DecodeLegacy(",0")
	require.NoError(t, err)
	require.Equal(t, 0, n.Sign())
}

func TestEncodeInt64(t *testing.T) {
	require.Equal(t, ".XW", EncodeInt64(6700))
	require.Equal(t, ",zST", EncodeInt64(-6700))
}

func TestBinaryHelpers(t *testing.T) {
	require.Equal(t, []byte{0x00}, IntToBytes(big.NewInt(0)))
	require.Equal(t, []byte{0xff}, IntToBytes(big.NewInt(255)))
	require.Equal(t, []byte{0x02, 0x03}, IntToBytes(big.NewInt(515)))

	require.Equal(t, int64(0), BytesToInt([]byte{0x00}).Int64())
	require.Equal(t, int64(255), BytesToInt([]byte{0xff}).Int64())
	require.Equal(t, int64(515), BytesToInt([]byte{0x02, 0x03}).Int64())
}

func TestURLQuote(t *testing.T) {
	tests := []struct {
		in   string
		safe string
		want string
	}{
		{"~", "", "~"},
		{",zz", "", "%2Czz"},
		{"a b~/", "", "a%20b~%2F"},
		{"a b~/", "/", "a%20b~/"},
		{"fDpEShMz-qput", "", "fDpEShMz-qput"},
		{"é", "", "%C3%A9"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, URLQuote(tt.in, tt.safe))
		})
	}

	require.Equal(t, "~", URLQuote(Encode(big.NewInt(65)), ""))
}
