package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"otpmig/internal/otp"
	"otpmig/internal/render"
)

func sampleAccounts() []otp.Account {
	return []otp.Account{
		{
			Name:   "alice@example.com",
			Issuer: "Example Corp",
			Secret: []byte("12345678901234567890"),
			Type:   otp.TypeTOTP,
			Digits: otp.DigitsSix,
		},
		{
			Name:    "legacy",
			Secret:  []byte("12345678901234567890"),
			Type:    otp.TypeHOTP,
			Digits:  otp.DigitsEight,
			Counter: 5,
		},
	}
}

func TestTextBlocks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, sampleAccounts()))

	want := "Account #1\n" +
		"  Name   : alice@example.com\n" +
		"  Issuer : Example Corp\n" +
		"  Type   : TOTP\n" +
		"  Digits : 6\n" +
		"  Period : 30\n" +
		"  Secret : GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ\n" +
		"\n" +
		"Account #2\n" +
		"  Name   : legacy\n" +
		"  Issuer : (none)\n" +
		"  Type   : HOTP\n" +
		"  Digits : 8\n" +
		"  Counter: 5\n" +
		"  Secret : GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, sampleAccounts()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	totp, hotp := got[0], got[1]
	assert.Equal(t, "alice@example.com", totp["name"])
	assert.Equal(t, "Example Corp", totp["issuer"])
	assert.Equal(t, "TOTP", totp["type"])
	assert.EqualValues(t, 6, totp["digits"])
	assert.EqualValues(t, 30, totp["period"])
	assert.NotContains(t, totp, "counter")
	assert.Equal(t, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", totp["secret"])
	assert.Contains(t, totp["uri"], "otpauth://totp/")

	assert.Equal(t, "HOTP", hotp["type"])
	assert.EqualValues(t, 5, hotp["counter"])
	assert.NotContains(t, hotp, "period")
	assert.NotContains(t, hotp, "issuer")
}

func TestJSONCounterZeroKept(t *testing.T) {
	a := sampleAccounts()[1]
	a.Counter = 0

	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, []otp.Account{a}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.EqualValues(t, 0, got[0]["counter"])
}

func TestYAMLShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.YAML(&buf, sampleAccounts()))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "TOTP", got[0]["type"])
	assert.EqualValues(t, 30, got[0]["period"])
	assert.EqualValues(t, 5, got[1]["counter"])
}

func TestURIsOnePerLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.URIs(&buf, sampleAccounts()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "otpauth://totp/"))
	assert.True(t, strings.HasPrefix(lines[1], "otpauth://hotp/"))
	assert.Contains(t, lines[1], "counter=5")
}

func TestRenderDispatch(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml", "uri"} {
		var buf bytes.Buffer
		require.NoError(t, render.Render(&buf, format, sampleAccounts()), format)
		assert.NotEmpty(t, buf.String(), format)
	}

	err := render.Render(&bytes.Buffer{}, "xml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestSelection(t *testing.T) {
	accounts := sampleAccounts()

	all := render.NewSelection(nil, nil)
	assert.Equal(t, accounts, all.Apply(accounts))

	byIssuer := render.NewSelection([]string{"Example Corp"}, nil)
	got := byIssuer.Apply(accounts)
	require.Len(t, got, 1)
	assert.Equal(t, "alice@example.com", got[0].Name)

	byName := render.NewSelection(nil, []string{"legacy"})
	got = byName.Apply(accounts)
	require.Len(t, got, 1)
	assert.Equal(t, "legacy", got[0].Name)

	both := render.NewSelection([]string{"Example Corp"}, []string{"legacy"})
	assert.Empty(t, both.Apply(accounts))

	none := render.NewSelection([]string{"Nobody"}, nil)
	assert.Empty(t, none.Apply(accounts))
}
