package helper

import (
	"net/url"
	"strings"
)

// Kunci query legacy yang masih boleh pakai kata "identifier" polos
// (tanpa kurung). Jangan ditambah — ini kompatibilitas link supplier lama.
var legacyIdentifierKeys = map[string]struct{}{
	"id":  {},
	"rid": {},
}

// ApplyURLTokens mengganti token [nama] di template URL dengan nilai dari values.
// Dua tahap:
//  1. parse sebagai URL → ganti nilai query param yang persis "[nama]"
//     (plus aturan legacy: key id/rid dengan nilai kata polos "identifier",
//     case-insensitive dua-duanya);
//  2. sisa token (di path, atau kalau template bukan URL valid) diganti
//     ReplaceAll biasa.
func ApplyURLTokens(template string, values map[string]string) string {
	out := template

	if u, err := url.Parse(template); err == nil && u.RawQuery != "" {
		q := u.Query()
		changed := false
		for key, vals := range q {
			for i, v := range vals {
				if nv, ok := substituteTokenValue(key, v, values); ok {
					vals[i] = nv
					changed = true
				}
			}
			q[key] = vals
		}
		if changed {
			u.RawQuery = q.Encode()
			out = u.String()
		}
	}

	for name, v := range values {
		out = strings.ReplaceAll(out, "["+name+"]", v)
	}
	return out
}

func substituteTokenValue(key, val string, values map[string]string) (string, bool) {
	if strings.HasPrefix(val, "[") && strings.HasSuffix(val, "]") && len(val) > 2 {
		if nv, ok := values[val[1:len(val)-1]]; ok {
			return nv, true
		}
	}
	if _, ok := legacyIdentifierKeys[strings.ToLower(key)]; ok && strings.EqualFold(val, "identifier") {
		if nv, ok := values["identifier"]; ok {
			return nv, true
		}
	}
	return "", false
}
