package forms

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Decode fills out, a pointer to a struct with mapstructure tags, from one
// partition of a submission. Each field is decoded on its own so that a
// conversion failure is reported against the field that caused it; unknown
// fields are ignored.
func Decode(values map[string]string, out interface{}) Errors {
	errs := Errors{}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(trimHook, checkboxHook, decimalHook),
			MatchName:        exactName,
		})
		if err != nil {
			errs.Add(key, err.Error())
			continue
		}

		if err := decoder.Decode(map[string]interface{}{key: values[key]}); err != nil {
			errs.Add(key, MsgInvalidValue)
		}
	}

	return errs
}

// Flatten renders a struct with mapstructure tags as form values, each name
// namespaced by prefix.
func Flatten(prefix string, in interface{}) (map[string]string, error) {
	var raw map[string]interface{}
	if err := mapstructure.Decode(in, &raw); err != nil {
		return nil, fmt.Errorf("failed to flatten %T: %w", in, err)
	}

	out := make(map[string]string, len(raw))
	for field, value := range raw {
		out[Key(prefix, field)] = FormatValue(value)
	}
	return out, nil
}

// FormatValue renders a scalar the way it is posted back by a form. Named
// types are formatted by kind, not through their String method.
func FormatValue(value interface{}) string {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Invalid:
		return ""
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprint(value)
	}
}

func trimHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() == reflect.String {
		return data, nil
	}
	return strings.TrimSpace(data.(string)), nil
}

// checkboxHook accepts the values browsers post for checked boxes
func checkboxHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(data.(string)) {
	case "on", "yes", "checked":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return data, nil
}

// decimalHook parses integers in base 10 only, so "0100" is 100 and "0x40"
// is rejected.
func decimalHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	str := strings.TrimSpace(data.(string))
	if str == "" {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 10, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", str, err)
		}
		return n, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 10, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", str, err)
		}
		return n, nil
	}
	return data, nil
}

func exactName(mapKey, fieldName string) bool {
	return mapKey == fieldName
}
