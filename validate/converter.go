// Package validate provides schemafetch converters that map resolved
// record structs onto schema structs by field name and validate the
// result with viant/govalidator `validate` tags.
package validate

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/govalidator"
	"github.com/viant/xunsafe"
)

var goValidator = govalidator.New()

// Converter builds validated schema values of type S from resolved
// records. Every call produces a fresh value; nothing is retained.
// Consumers instantiate it via New().
type Converter[S any] struct {
	xStruct *xunsafe.Struct
}

// New creates a Converter producing schema values of type S.
// S must be a struct type.
func New[S any]() *Converter[S] {
	var probe S
	sType := reflect.TypeOf(probe)
	if sType.Kind() != reflect.Struct {
		panic("validate: schema type must be a struct, had " + sType.String())
	}
	return &Converter[S]{xStruct: xunsafe.NewStruct(sType)}
}

// FromRecord maps record onto a schema value and validates it. A failed
// validation returns the *govalidator.Validation itself as the error.
// Records wrapped by a source instance (anything with a Record() method)
// are unwrapped first.
func (c *Converter[S]) FromRecord(ctx context.Context, record any) (S, error) {
	var out S
	if holder, ok := record.(interface{ Record() any }); ok {
		record = holder.Record()
	}

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return out, errors.New("nil record")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return out, errors.Errorf("record must be a struct, had %T", record)
	}

	destPtr := xunsafe.AsPointer(&out)
	srcType := rv.Type()
	for i := range c.xStruct.Fields {
		field := &c.xStruct.Fields[i]
		srcField, ok := srcType.FieldByName(field.Name)
		if !ok {
			continue
		}
		value := rv.FieldByIndex(srcField.Index)
		if srcField.Type == field.Type {
			field.SetValue(destPtr, value.Interface())
			continue
		}
		converted, err := convertValue(value, field.Type)
		if err != nil {
			var zero S
			return zero, errors.Wrapf(err, "field %s", field.Name)
		}
		field.SetValue(destPtr, converted.Interface())
	}

	validation, err := goValidator.Validate(ctx, &out)
	if err != nil {
		var zero S
		return zero, err
	}
	if validation != nil && validation.Failed {
		var zero S
		return zero, validation
	}
	return out, nil
}

// convertValue adapts a record field value to the schema field type:
// pointers are followed or introduced, structs are mapped recursively by
// field name and slices element-wise. Basic kinds rely on Go
// convertibility.
func convertValue(src reflect.Value, dstType reflect.Type) (reflect.Value, error) {
	srcType := src.Type()
	if srcType == dstType {
		return src, nil
	}

	switch {
	case srcType.Kind() == reflect.Ptr:
		if src.IsNil() {
			if dstType.Kind() == reflect.Ptr || dstType.Kind() == reflect.Slice {
				return reflect.Zero(dstType), nil
			}
			return reflect.Value{}, errors.Errorf("cannot map nil %s to %s", srcType, dstType)
		}
		return convertValue(src.Elem(), dstType)
	case dstType.Kind() == reflect.Ptr:
		elem, err := convertValue(src, dstType.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(dstType.Elem())
		out.Elem().Set(elem)
		return out, nil
	case srcType.Kind() == reflect.Slice && dstType.Kind() == reflect.Slice:
		out := reflect.MakeSlice(dstType, src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			elem, err := convertValue(src.Index(i), dstType.Elem())
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "[%d]", i)
			}
			out.Index(i).Set(elem)
		}
		return out, nil
	case srcType.Kind() == reflect.Struct && dstType.Kind() == reflect.Struct:
		return convertStruct(src, dstType)
	case srcType.AssignableTo(dstType):
		out := reflect.New(dstType).Elem()
		out.Set(src)
		return out, nil
	case isBasic(srcType.Kind()) && isBasic(dstType.Kind()) && srcType.ConvertibleTo(dstType):
		return src.Convert(dstType), nil
	default:
		return reflect.Value{}, errors.Errorf("cannot map %s to %s", srcType, dstType)
	}
}

func convertStruct(src reflect.Value, dstType reflect.Type) (reflect.Value, error) {
	dst := reflect.New(dstType).Elem()
	for i := 0; i < dstType.NumField(); i++ {
		df := dstType.Field(i)
		if !df.IsExported() {
			continue
		}
		sf, ok := src.Type().FieldByName(df.Name)
		if !ok {
			continue
		}
		value, err := convertValue(src.FieldByIndex(sf.Index), df.Type)
		if err != nil {
			return reflect.Value{}, errors.Wrap(err, df.Name)
		}
		dst.Field(i).Set(value)
	}
	return dst, nil
}

func isBasic(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// List converts every record with an element Converter and returns the
// assembled slice as one root value. It implements the schemafetch
// ListConverter interface.
type List[E any] struct {
	elem *Converter[E]
}

// NewList creates a List converter producing []E root values.
func NewList[E any]() *List[E] {
	return &List[E]{elem: New[E]()}
}

// FromRecords converts records in order into a single []E value.
func (l *List[E]) FromRecords(ctx context.Context, records []any) ([]E, error) {
	out := make([]E, 0, len(records))
	for i, record := range records {
		elem, err := l.elem.FromRecord(ctx, record)
		if err != nil {
			return nil, errors.Wrapf(err, "[%d]", i)
		}
		out = append(out, elem)
	}
	return out, nil
}
