package docstore

import "reflect"

// Sanitize returns a copy of doc with every nil-valued field removed, at any
// nesting depth, including nil elements inside slices. The backends reject
// nil values, so this runs before every write; keys must vanish entirely
// rather than serialize as null.
func Sanitize(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if isNil(v) {
			continue
		}
		out[k] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(v any) any {
	switch val := v.(type) {
	case Document:
		return Sanitize(val)
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if isNil(item) {
				continue
			}
			out = append(out, sanitizeValue(item))
		}
		return out
	case []Document:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, Sanitize(item))
		}
		return out
	default:
		return v
	}
}

// isNil also catches typed nils (a nil *float64 stored in an any).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
