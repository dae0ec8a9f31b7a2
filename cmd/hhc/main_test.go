package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/hhc/format"
	"github.com/arloliu/hhc/id"
	"github.com/arloliu/hhc/internal/errs"
	"github.com/arloliu/hhc/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out, &errOut)
	err := app.Run(append([]string{"hhc"}, args...))

	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestEncode(t *testing.T) {
	out, _, err := run(t, "", "encode", "0", "65", "66", "67", "-67", "302231454903657293676544")
	require.NoError(t, err)
	assert.Equal(t, []string{"-", "~", ".-", "-..", ",zz", "fDpEShMz-qput"}, lines(out))

	out, _, err = run(t, "", "encode", "--legacy", "66", "4288", "-67")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "..", ",11"}, lines(out))

	out, _, err = run(t, "", "encode", "--width", "5", "--quote", "1", "-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"----.", "%2C~~~z"}, lines(out))

	out, _, err = run(t, "", "encode", "--allow-special", "67")
	require.NoError(t, err)
	assert.Equal(t, "..\n", out)
}

func TestEncode_Errors(t *testing.T) {
	_, _, err := run(t, "", "encode")
	require.ErrorIs(t, err, errMissingArgs)

	_, _, err = run(t, "", "encode", "12x")
	require.ErrorContains(t, err, "invalid integer")

	_, _, err = run(t, "", "encode", "--width", "-1", "5")
	require.ErrorIs(t, err, errs.ErrInvalidWidth)
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "", "decode", "fDpEShMz-qput", ",zz", ",~")
	require.NoError(t, err)
	assert.Equal(t, []string{"302231454903657293676544", "-67", "0"}, lines(out))

	out, _, err = run(t, "", "decode", "-l", "iFsGUkO.0tsxw")
	require.NoError(t, err)
	assert.Equal(t, "302231454903657293676544\n", out)

	_, _, err = run(t, "", "decode", ",,zz")
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestQuote(t *testing.T) {
	out, _, err := run(t, "", "quote", ",zz", "a b~/")
	require.NoError(t, err)
	assert.Equal(t, []string{"%2Czz", "a%20b~%2F"}, lines(out))

	out, _, err = run(t, "", "quote", "--safe", "/", "a b~/")
	require.NoError(t, err)
	assert.Equal(t, "a%20b~/\n", out)
}

func TestID(t *testing.T) {
	out, _, err := run(t, "", "id", "-n", "3")
	require.NoError(t, err)
	ids := lines(out)
	require.Len(t, ids, 3)
	for _, s := range ids {
		assert.Len(t, s, id.Width)
		_, err := id.Parse(s)
		require.NoError(t, err)
	}

	out, _, err = run(t, "", "id", "--key", "user:42")
	require.NoError(t, err)
	assert.Equal(t, id.FromKey("user:42")+"\n", out)

	out, _, err = run(t, "", "id", "--key", "/docs", "--key", "/blog")
	require.NoError(t, err)
	assert.Equal(t, []string{id.FromKey("/docs") + " /docs", id.FromKey("/blog") + " /blog"}, lines(out))

	_, _, err = run(t, "", "id", "--key", "/docs", "--key", "/docs")
	require.ErrorIs(t, err, errs.ErrDuplicateKey)

	out, _, err = run(t, "", "id", "--parse", strings.Repeat("-", id.Width))
	require.NoError(t, err)
	assert.Equal(t, "00000000000000000000000000 1970-01-01T00:00:00Z\n", out)

	_, _, err = run(t, "", "id", "--parse", "short")
	require.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestPackUnpack(t *testing.T) {
	data := strings.Repeat("hexahexacontadecimal ", 20)

	for _, compression := range []string{"none", "zstd", "s2", "lz4"} {
		t.Run(compression, func(t *testing.T) {
			out, _, err := run(t, data, "pack", "--compression", compression, "--checksum")
			require.NoError(t, err)
			token := strings.TrimSpace(out)
			assert.NotContains(t, token, ",")

			out, _, err = run(t, "", "unpack", token)
			require.NoError(t, err)
			assert.Equal(t, data, out)

			out, _, err = run(t, token+"\n", "unpack")
			require.NoError(t, err)
			assert.Equal(t, data, out)
		})
	}
}

func TestPack_LogsStats(t *testing.T) {
	_, errOut, err := run(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "-v", "--log-format", "json", "pack", "--compression", "s2")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"message":"Packed payload"`)
	assert.Contains(t, errOut, `"original":32`)
}

func TestPack_Errors(t *testing.T) {
	_, _, err := run(t, "x", "pack", "--compression", "brotli")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, _, err = run(t, "", "unpack")
	require.ErrorIs(t, err, errMissingArgs)
}

func TestBatch(t *testing.T) {
	var in strings.Builder
	var want []string
	for v := -300; v <= 300; v++ {
		fmt.Fprintf(&in, "%d\n", v)
	}
	in.WriteString("\n")

	out, _, err := run(t, in.String(), "batch", "--workers", "4", "--width", "3")
	require.NoError(t, err)
	encoded := lines(out)
	require.Len(t, encoded, 601)
	assert.Equal(t, ",zz", encoded[300-67])
	assert.Equal(t, "---", encoded[300])
	assert.Equal(t, "-..", encoded[300+67])
	assert.IsNonDecreasing(t, encoded)

	out, _, err = run(t, out, "batch", "--decode", "--workers", "3")
	require.NoError(t, err)
	for v := -300; v <= 300; v++ {
		want = append(want, fmt.Sprint(v))
	}
	assert.Equal(t, want, lines(out))
}

func TestBatch_Errors(t *testing.T) {
	_, _, err := run(t, "1\n2\nthree\n4\n", "batch")
	require.ErrorContains(t, err, "line 3")

	_, _, err = run(t, "1\n", "batch", "--workers", "0")
	require.ErrorContains(t, err, "workers must be positive")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hhc.toml")
	content := "[encode]\nlegacy = true\nwidth = 4\n\n[batch]\nworkers = 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, _, err := run(t, "", "--config", path, "encode", "67")
	require.NoError(t, err)
	assert.Equal(t, "0011\n", out)

	out, _, err = run(t, "", "-c", path, "encode", "--legacy=false", "--width", "0", "67")
	require.NoError(t, err)
	assert.Equal(t, "-..\n", out)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[encode]\nwidth = -3\n"), 0o600))
	_, _, err = run(t, "", "--config", bad, "encode", "1")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestConfigFile_PayloadAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hhc.toml")
	content := "[encode]\nlegacy = true\nallow_special = false\n\n[payload]\ncompression = \"lz4\"\nchecksum = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data := strings.Repeat("sortable ", 30)
	out, _, err := run(t, data, "-c", path, "pack")
	require.NoError(t, err)

	want, err := payload.Encode([]byte(data),
		payload.WithCompression(format.CompressionLZ4),
		payload.WithChecksum(true),
		payload.WithVariant(format.VariantLegacy),
	)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	out, _, err = run(t, "", "-c", path, "unpack", want)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	// allow_special = false in the file, overridden by the flag
	out, _, err = run(t, "", "-c", path, "encode", "4288")
	require.NoError(t, err)
	assert.Equal(t, "0..\n", out)

	out, _, err = run(t, "", "-c", path, "encode", "--allow-special", "4288")
	require.NoError(t, err)
	assert.Equal(t, "..\n", out)
}
