// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/papersynth/papersynth/base/errors"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags. Fields of struct type without
// a tag are descended into. Slices take comma-separated defaults.
func SetFromDefaultTags(v any) error {
	if AnyIsNil(v) {
		return nil
	}
	val := NonPointerValue(reflect.ValueOf(v))
	typ := val.Type()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, not %v", typ)
	}
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if NonPointerType(f.Type).Kind() == reflect.Struct && !ok {
			if fv.Kind() == reflect.Pointer && fv.IsNil() {
				continue
			}
			errs = append(errs, SetFromDefaultTags(PointerValue(fv).Interface()))
			continue
		}
		if !ok {
			continue
		}
		if err := SetFromString(PointerValue(fv).Interface(), def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the value pointed to by ptr from the given string
// representation. It supports [encoding.TextUnmarshaler], strings, bools,
// integers, floats, [time.Duration], and slices of those (comma-separated).
func SetFromString(ptr any, s string) error {
	if tu, ok := ptr.(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	pv := reflect.ValueOf(ptr)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return fmt.Errorf("reflectx.SetFromString: expected a non-nil pointer, not %T", ptr)
	}
	v := pv.Elem()
	if v.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if s == "" {
			v.Set(reflect.MakeSlice(v.Type(), 0, 0))
			return nil
		}
		parts := strings.Split(s, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetFromString(sl.Index(i).Addr().Interface(), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("reflectx.SetFromString: unsupported kind %v", v.Kind())
	}
	return nil
}
