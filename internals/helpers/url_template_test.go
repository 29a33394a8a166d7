package helper

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyURLTokens_QueryBracketToken(t *testing.T) {
	got := ApplyURLTokens("https://provider.test/s?rid=[identifier]&lang=en", map[string]string{
		"identifier": "R123",
	})

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "R123", q.Get("rid"))
	assert.Equal(t, "en", q.Get("lang"))
}

func TestApplyURLTokens_MultipleTokens(t *testing.T) {
	got := ApplyURLTokens("https://provider.test/s?rid=[identifier]&p=[projectId]&s=[supplierId]", map[string]string{
		"identifier": "R123",
		"projectId":  "P1",
		"supplierId": "S1",
	})

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "R123", q.Get("rid"))
	assert.Equal(t, "P1", q.Get("p"))
	assert.Equal(t, "S1", q.Get("s"))
}

// Aturan legacy: key id/rid dengan nilai kata polos "identifier" tetap diganti,
// case-insensitive di key maupun value. Key lain tidak kena.
func TestApplyURLTokens_LegacyBareIdentifier(t *testing.T) {
	values := map[string]string{"identifier": "R123"}

	for _, tmpl := range []string{
		"https://provider.test/s?id=identifier",
		"https://provider.test/s?rid=identifier",
		"https://provider.test/s?RID=Identifier",
		"https://provider.test/s?Id=IDENTIFIER",
	} {
		got := ApplyURLTokens(tmpl, values)
		u, err := url.Parse(got)
		require.NoError(t, err, tmpl)
		found := false
		for _, vals := range u.Query() {
			for _, v := range vals {
				if v == "R123" {
					found = true
				}
			}
		}
		assert.True(t, found, "nilai tidak diganti: %s -> %s", tmpl, got)
	}

	// key di luar daftar legacy: nilai "identifier" dibiarkan apa adanya
	got := ApplyURLTokens("https://provider.test/s?uid=identifier", values)
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "identifier", u.Query().Get("uid"))
}

func TestApplyURLTokens_PathToken(t *testing.T) {
	got := ApplyURLTokens("https://provider.test/r/[identifier]/start", map[string]string{
		"identifier": "R123",
	})
	assert.Equal(t, "https://provider.test/r/R123/start", got)
}

func TestApplyURLTokens_NotAURL(t *testing.T) {
	got := ApplyURLTokens("resp=[identifier];proj=[projectId]", map[string]string{
		"identifier": "R123",
		"projectId":  "P1",
	})
	assert.Equal(t, "resp=R123;proj=P1", got)
}

func TestApplyURLTokens_UnknownTokenLeftAlone(t *testing.T) {
	got := ApplyURLTokens("https://provider.test/s?rid=[identifier]&x=[unknown]", map[string]string{
		"identifier": "R123",
	})
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "[unknown]", u.Query().Get("x"))
}

func TestApplyURLTokens_NoTokens(t *testing.T) {
	tmpl := "https://provider.test/s?fixed=1"
	assert.Equal(t, tmpl, ApplyURLTokens(tmpl, map[string]string{"identifier": "R123"}))
}
