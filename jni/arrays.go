package jni

import (
	"github.com/pkg/errors"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/mutf8"
)

// NewString creates a local string reference holding s.
func (e *Env) NewString(s string) (jvm.String, error) {
	str := e.env().NewStringUTF(mutf8.Encode(s))
	if str == 0 {
		if err := e.Check(); err != nil {
			return 0, err
		}
		return 0, errors.Wrap(ErrReferenceCreationFailed, "string")
	}
	return str, nil
}

// GoString copies a runtime string into a Go string. The runtime's UTF
// buffer is always released.
func (e *Env) GoString(str jvm.String) (string, error) {
	if str == 0 {
		return "", ErrNullReference
	}
	raw := e.env()
	utf, chars := raw.GetStringUTFChars(str)
	if chars == 0 {
		if err := e.Check(); err != nil {
			return "", err
		}
		return "", errors.Wrap(ErrOperationFailed, "string chars")
	}
	defer raw.ReleaseStringUTFChars(str, chars)
	return mutf8.Decode(utf), nil
}

// StringLength returns the length of str in UTF-16 code units.
func (e *Env) StringLength(str jvm.String) (int, error) {
	if str == 0 {
		return 0, ErrNullReference
	}
	return int(e.env().GetStringLength(str)), nil
}

// ArrayLength returns the length of arr.
func (e *Env) ArrayLength(arr jvm.Array) (int, error) {
	if arr == 0 {
		return 0, ErrNullReference
	}
	return checked(e, int(e.env().GetArrayLength(arr)))
}

// NewObjectArray creates an array of n elements of class elem, each set to
// init.
func (e *Env) NewObjectArray(n int, elem jvm.Class, init jvm.Object) (jvm.Array, error) {
	arr, err := checked(e, e.env().NewObjectArray(int32(n), elem, init))
	if err == nil && arr == 0 {
		err = errors.Wrap(ErrReferenceCreationFailed, "object array")
	}
	return arr, err
}

func (e *Env) index(arr jvm.Array, i int) error {
	n, err := e.ArrayLength(arr)
	if err != nil {
		return err
	}
	if i < 0 || i >= n {
		return errors.Wrapf(ErrIndexOutOfBounds, "index %d, length %d", i, n)
	}
	return nil
}

// ObjectArrayElement returns a local reference to arr[i].
func (e *Env) ObjectArrayElement(arr jvm.Array, i int) (jvm.Object, error) {
	if err := e.index(arr, i); err != nil {
		return 0, err
	}
	return checked(e, e.env().GetObjectArrayElement(arr, int32(i)))
}

// SetObjectArrayElement stores v in arr[i].
func (e *Env) SetObjectArrayElement(arr jvm.Array, i int, v jvm.Object) error {
	if err := e.index(arr, i); err != nil {
		return err
	}
	e.env().SetObjectArrayElement(arr, int32(i), v)
	return e.Check()
}

// Strings decodes every element of a string array. Null elements decode as
// the empty string. Every element reference and UTF buffer acquired on the
// way is released, also when a later element fails.
func (e *Env) Strings(arr jvm.Array) ([]string, error) {
	n, err := e.ArrayLength(arr)
	if err != nil {
		return nil, err
	}

	out := make([]string, n)
	for i := range out {
		if out[i], err = e.stringElement(arr, i); err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
	}
	return out, nil
}

func (e *Env) stringElement(arr jvm.Array, i int) (string, error) {
	elem, err := checked(e, e.env().GetObjectArrayElement(arr, int32(i)))
	if err != nil || elem == 0 {
		return "", err
	}
	defer e.DeleteLocal(elem)
	return e.GoString(elem)
}

// NewStringArray creates a string array holding values.
func (e *Env) NewStringArray(values []string) (jvm.Array, error) {
	cls, release, err := e.class("java/lang/String")
	if err != nil {
		return 0, err
	}
	defer release()

	arr, err := e.NewObjectArray(len(values), cls, 0)
	if err != nil {
		return 0, err
	}
	for i, s := range values {
		if err := e.setStringElement(arr, i, s); err != nil {
			e.DeleteLocal(arr)
			return 0, err
		}
	}
	return arr, nil
}

func (e *Env) setStringElement(arr jvm.Array, i int, s string) error {
	str, err := e.NewString(s)
	if err != nil {
		return err
	}
	defer e.DeleteLocal(str)
	e.env().SetObjectArrayElement(arr, int32(i), str)
	return e.Check()
}

// span resolves a start and count against the length of arr. A negative
// count means up to the end of the array.
func (e *Env) span(arr jvm.Array, start, count int) (int, error) {
	n, err := e.ArrayLength(arr)
	if err != nil {
		return 0, err
	}
	if count < 0 {
		count = n - start
	}
	if start < 0 || count < 0 || start+count > n {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "region [%d:%d], length %d", start, start+count, n)
	}
	return count, nil
}

func getRegion[T any](e *Env, arr jvm.Array, start, count int, get func(jvm.Array, int32, []T)) ([]T, error) {
	n, err := e.span(arr, start, count)
	if err != nil {
		return nil, err
	}
	buf := make([]T, n)
	get(arr, int32(start), buf)
	if err := e.Check(); err != nil {
		return nil, err
	}
	return buf, nil
}

func setRegion[T any](e *Env, arr jvm.Array, start int, values []T, set func(jvm.Array, int32, []T)) error {
	if _, err := e.span(arr, start, len(values)); err != nil {
		return err
	}
	set(arr, int32(start), values)
	return e.Check()
}

func newArray[T any](e *Env, values []T, alloc func(int32) jvm.Array, set func(jvm.Array, int32, []T)) (jvm.Array, error) {
	arr, err := checked(e, alloc(int32(len(values))))
	if err != nil {
		return 0, err
	}
	if arr == 0 {
		return 0, errors.Wrap(ErrReferenceCreationFailed, "array")
	}
	set(arr, 0, values)
	if err := e.Check(); err != nil {
		e.DeleteLocal(arr)
		return 0, err
	}
	return arr, nil
}

// Bytes copies count bytes of arr starting at start.
func (e *Env) Bytes(arr jvm.Array, start, count int) ([]byte, error) {
	b, err := getRegion(e, arr, start, count, e.env().GetByteArrayRegion)
	if err != nil {
		return nil, err
	}
	return fromInt8(b), nil
}

// SetBytes copies values into arr starting at start.
func (e *Env) SetBytes(arr jvm.Array, start int, values []byte) error {
	return setRegion(e, arr, start, toInt8(values), e.env().SetByteArrayRegion)
}

// NewBytes creates a byte array holding values.
func (e *Env) NewBytes(values []byte) (jvm.Array, error) {
	raw := e.env()
	return newArray(e, toInt8(values), raw.NewByteArray, raw.SetByteArrayRegion)
}

func toInt8(b []byte) []int8 {
	out := make([]int8, len(b))
	for i, v := range b {
		out[i] = int8(v)
	}
	return out
}

func fromInt8(b []int8) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = byte(v)
	}
	return out
}

func (e *Env) Booleans(arr jvm.Array, start, count int) ([]bool, error) {
	return getRegion(e, arr, start, count, e.env().GetBooleanArrayRegion)
}

func (e *Env) SetBooleans(arr jvm.Array, start int, values []bool) error {
	return setRegion(e, arr, start, values, e.env().SetBooleanArrayRegion)
}

func (e *Env) NewBooleans(values []bool) (jvm.Array, error) {
	raw := e.env()
	return newArray(e, values, raw.NewBooleanArray, raw.SetBooleanArrayRegion)
}

func (e *Env) Ints(arr jvm.Array, start, count int) ([]int32, error) {
	return getRegion(e, arr, start, count, e.env().GetIntArrayRegion)
}

func (e *Env) SetInts(arr jvm.Array, start int, values []int32) error {
	return setRegion(e, arr, start, values, e.env().SetIntArrayRegion)
}

func (e *Env) NewInts(values []int32) (jvm.Array, error) {
	raw := e.env()
	return newArray(e, values, raw.NewIntArray, raw.SetIntArrayRegion)
}

func (e *Env) Longs(arr jvm.Array, start, count int) ([]int64, error) {
	return getRegion(e, arr, start, count, e.env().GetLongArrayRegion)
}

func (e *Env) SetLongs(arr jvm.Array, start int, values []int64) error {
	return setRegion(e, arr, start, values, e.env().SetLongArrayRegion)
}

func (e *Env) NewLongs(values []int64) (jvm.Array, error) {
	raw := e.env()
	return newArray(e, values, raw.NewLongArray, raw.SetLongArrayRegion)
}

func (e *Env) Floats(arr jvm.Array, start, count int) ([]float32, error) {
	return getRegion(e, arr, start, count, e.env().GetFloatArrayRegion)
}

func (e *Env) SetFloats(arr jvm.Array, start int, values []float32) error {
	return setRegion(e, arr, start, values, e.env().SetFloatArrayRegion)
}

func (e *Env) NewFloats(values []float32) (jvm.Array, error) {
	raw := e.env()
	return newArray(e, values, raw.NewFloatArray, raw.SetFloatArrayRegion)
}

func (e *Env) Doubles(arr jvm.Array, start, count int) ([]float64, error) {
	return getRegion(e, arr, start, count, e.env().GetDoubleArrayRegion)
}

func (e *Env) SetDoubles(arr jvm.Array, start int, values []float64) error {
	return setRegion(e, arr, start, values, e.env().SetDoubleArrayRegion)
}

func (e *Env) NewDoubles(values []float64) (jvm.Array, error) {
	raw := e.env()
	return newArray(e, values, raw.NewDoubleArray, raw.SetDoubleArrayRegion)
}
