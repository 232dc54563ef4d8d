// Package collections translates domain-level queries for tenants,
// categories, services, and requests into document store calls, and owns the
// entity ⇄ document codecs.
package collections

import (
	"time"

	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

func getString(doc docstore.Document, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func getBool(doc docstore.Document, key string) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return false
}

func getInt(doc docstore.Document, key string) int {
	switch v := doc[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func getFloatPtr(doc docstore.Document, key string) *float64 {
	switch v := doc[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

func getTime(doc docstore.Document, key string) time.Time {
	if v, ok := doc[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func getMap(doc docstore.Document, key string) docstore.Document {
	if v, ok := doc[key].(map[string]any); ok {
		return v
	}
	return nil
}

func getLocalized(doc docstore.Document, key string) model.LocalizedText {
	m := getMap(doc, key)
	if m == nil {
		return model.LocalizedText{}
	}
	return model.LocalizedText{EN: getString(m, "en"), BS: getString(m, "bs")}
}

func getLocalizedPtr(doc docstore.Document, key string) *model.LocalizedText {
	if getMap(doc, key) == nil {
		return nil
	}
	t := getLocalized(doc, key)
	return &t
}

func localizedDoc(t model.LocalizedText) docstore.Document {
	return docstore.Document{"en": t.EN, "bs": t.BS}
}

func localizedDocPtr(t *model.LocalizedText) any {
	if t == nil {
		return nil
	}
	return localizedDoc(*t)
}
