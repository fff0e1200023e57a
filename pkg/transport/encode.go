package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// EncodeParams serializes params the way PHP's http_build_query does: nested maps and
// slices use bracket notation, booleans become 1/0, nil values are skipped.
func EncodeParams(params map[string]any) string {
	values := url.Values{}
	for _, key := range sortedKeys(params) {
		flatten(values, key, params[key])
	}
	return values.Encode()
}

func flatten(values url.Values, prefix string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		values.Add(prefix, v)
	case bool:
		if v {
			values.Add(prefix, "1")
		} else {
			values.Add(prefix, "0")
		}
	case fmt.Stringer:
		values.Add(prefix, v.String())
	case map[string]any:
		for _, key := range sortedKeys(v) {
			flatten(values, prefix+"["+key+"]", v[key])
		}
	case []any:
		for i, item := range v {
			flatten(values, prefix+"["+strconv.Itoa(i)+"]", item)
		}
	default:
		flattenReflect(values, prefix, reflect.ValueOf(value))
	}
}

// flattenReflect handles typed slices, maps and scalars (e.g. []string, map[string]int, float64).
func flattenReflect(values url.Values, prefix string, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}
		flatten(values, prefix, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			flatten(values, prefix+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, key := range keys {
			flatten(values, prefix+"["+fmt.Sprint(key.Interface())+"]", rv.MapIndex(key).Interface())
		}
	case reflect.Float32, reflect.Float64:
		values.Add(prefix, strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	default:
		values.Add(prefix, fmt.Sprint(rv.Interface()))
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}
