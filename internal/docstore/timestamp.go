package docstore

import "time"

// timestampFields names the document fields that carry date/time values.
// Backends without a native timestamp scalar (DynamoDB) store these as epoch
// milliseconds and convert at the adapter boundary.
var timestampFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
}

// EncodeTime converts a time value to the stored representation. Precision
// below one millisecond is deliberately dropped.
func EncodeTime(t time.Time) int64 {
	return t.UnixMilli()
}

func DecodeTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// encodeTimestamps rewrites time.Time fields to epoch milliseconds.
func encodeTimestamps(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if t, ok := v.(time.Time); ok {
			out[k] = EncodeTime(t)
			continue
		}
		out[k] = v
	}
	return out
}

// decodeTimestamps restores known timestamp fields to time.Time.
func decodeTimestamps(doc Document) Document {
	for k := range timestampFields {
		v, ok := doc[k]
		if !ok {
			continue
		}
		switch ms := v.(type) {
		case int64:
			doc[k] = DecodeTime(ms)
		case float64:
			doc[k] = DecodeTime(int64(ms))
		case int:
			doc[k] = DecodeTime(int64(ms))
		}
	}
	return doc
}
