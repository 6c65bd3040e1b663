package csvdoc

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Scan converts the values of keys into the pointers in args, in order.
// Supported targets are strings, signed and unsigned integers, floats and bools.
func (r *Row) Scan(keys []string, args ...interface{}) error {
	if len(keys) != len(args) {
		return errors.New(fmt.Sprintf("Got %d args while expected %d",
			len(args), len(keys)))
	}
	for i, key := range keys {
		if err := convFromString(r.Column(key), args[i]); err != nil {
			return errors.Wrapf(err, "column %s", key)
		}
	}
	return nil
}

// https://github.com/golang/go/blob/master/src/database/sql/convert.go
func convFromString(src string, dest interface{}) error {
	dpv := reflect.ValueOf(dest)
	if dpv.Kind() != reflect.Ptr {
		return errors.New("destination not a pointer")
	}
	if dpv.IsNil() {
		return errors.New("destination pointer is nil")
	}

	dv := reflect.Indirect(dpv)
	switch dv.Kind() {
	case reflect.String:
		dv.SetString(src)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i64, err := strconv.ParseInt(src, 10, dv.Type().Bits())
		if err != nil {
			return errors.WithStack(err)
		}
		dv.SetInt(i64)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u64, err := strconv.ParseUint(src, 10, dv.Type().Bits())
		if err != nil {
			return errors.WithStack(err)
		}
		dv.SetUint(u64)

	case reflect.Float32, reflect.Float64:
		f64, err := strconv.ParseFloat(src, dv.Type().Bits())
		if err != nil {
			return errors.WithStack(err)
		}
		dv.SetFloat(f64)

	case reflect.Bool:
		b, err := strconv.ParseBool(src)
		if err != nil {
			return errors.WithStack(err)
		}
		dv.SetBool(b)

	default:
		return errors.Errorf("unsupported destination type %s", dv.Type())
	}
	return nil
}
