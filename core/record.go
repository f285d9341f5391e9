package core

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
)

// Fields holds the raw JSON of every key a record carries beyond its typed
// fields, plus typed keys whose stored value did not fit the Go type. They
// are written back untouched so a rewrite never loses data.
type Fields map[string]json.RawMessage

type field struct {
	key       string
	value     any
	omitEmpty bool
}

// decodeFields fills the typed fields of a record from data and returns
// everything else. A typed key whose value is null or has the wrong JSON
// type is kept raw and its Go field stays at the zero value.
func decodeFields(data []byte, fields []field) (Fields, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	known := make(map[string]any, len(fields))
	for _, f := range fields {
		known[f.key] = f.value
	}

	var extra Fields
	for key, value := range raw {
		if ptr, ok := known[key]; ok && string(value) != "null" {
			if err := json.Unmarshal(value, ptr); err == nil {
				continue
			}
			reflect.ValueOf(ptr).Elem().SetZero()
		}
		if extra == nil {
			extra = Fields{}
		}
		extra[key] = value
	}
	return extra, nil
}

// encodeFields writes the typed fields in declaration order followed by the
// extra keys sorted by name. A kept raw value wins over its typed field
// until the field is given a non-empty value.
func encodeFields(fields []field, extra Fields) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	written := 0
	write := func(key string, value []byte) error {
		if written > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
		written++
		return nil
	}

	typed := make(map[string]bool, len(fields))
	for _, f := range fields {
		typed[f.key] = true
		empty := isEmptyValue(reflect.ValueOf(f.value).Elem())
		if raw, ok := extra[f.key]; ok && empty {
			if err := write(f.key, raw); err != nil {
				return nil, err
			}
			continue
		}
		if f.omitEmpty && empty {
			continue
		}
		data, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		if err := write(f.key, data); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(extra))
	for key := range extra {
		if !typed[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := write(key, extra[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
