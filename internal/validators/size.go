package validators

import "encoding/json"

// encodedSize returns the length of v serialized as compact JSON with
// characters written literally: no HTML escaping, U+2028 and U+2029 counted
// as their three UTF-8 bytes and no trailing newline. Only growth that comes
// from decoding the body (invalid UTF-8 turned into U+FFFD, for instance) is
// counted, never growth added by the encoder itself.
func encodedSize(v any) (int64, error) {
	var c sizeCounter

	enc := json.NewEncoder(&c)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return 0, err
	}

	return c.n - 1, nil
}

// sizeCounter counts written bytes without keeping them.
type sizeCounter struct {
	n int64
}

func (c *sizeCounter) Write(p []byte) (int, error) {
	c.n += int64(len(p)) - lineSeparatorSlack(p)
	return len(p), nil
}

// lineSeparatorSlack returns the bytes added by the encoder writing U+2028
// and U+2029 as six-byte escapes instead of three raw bytes. An escaped
// backslash followed by "u2028" is literal text and is skipped.
func lineSeparatorSlack(p []byte) int64 {
	var slack int64
	for i := 0; i < len(p); {
		if p[i] != '\\' {
			i++
			continue
		}
		if i+5 < len(p) && p[i+1] == 'u' && p[i+2] == '2' && p[i+3] == '0' && p[i+4] == '2' &&
			(p[i+5] == '8' || p[i+5] == '9') {
			slack += 3
			i += 6
			continue
		}
		i += 2
	}
	return slack
}
