package httputil

import "net/url"

// FirstValues flattens submitted form values to their first occurrence.
// A key submitted with an empty value is kept so that presence checks work.
func FirstValues(values url.Values) map[string]string {
	flat := make(map[string]string, len(values))
	for key, vs := range values {
		if len(vs) == 0 {
			flat[key] = ""
			continue
		}
		flat[key] = vs[0]
	}
	return flat
}
