// Package sanitize strips markup from user supplied text before it is
// stored and later served on public sites.
package sanitize

import (
	"reflect"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes every HTML element from s. Text without a '<' is returned
// untouched so ampersands and quotes survive.
func Text(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return strings.TrimSpace(policy.Sanitize(s))
}

// Struct sanitizes every exported string reachable from ptr, including
// string slices and nested structs. Fields tagged `sanitize:"-"` (URLs,
// image paths) are skipped.
func Struct(ptr any) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	walk(v.Elem())
}

func walk(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			walk(v.Elem())
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("sanitize") == "-" {
				continue
			}
			walk(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(Text(v.String()))
		}
	}
}
