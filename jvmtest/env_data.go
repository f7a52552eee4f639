package jvmtest

import (
	"unicode/utf16"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/mutf8"
	"omibyte.io/gojni/sig"
)

func (e *Env) getField(op string, obj jvm.Object, id jvm.FieldID, want sig.Kind) Value {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter(op)

	f := e.field(op, id)
	if f == nil {
		return Void
	}
	if f.static {
		e.rt.violate("%s: %s.%s is static", op, f.class.name, f.name)
		return Void
	}
	if !compatible(want, f.typ.Kind()) {
		e.rt.violate("%s: %s.%s has type %s", op, f.class.name, f.name, f.typ)
	}
	o := e.resolve(op, obj)
	if o == nil {
		e.throw("java/lang/NullPointerException", f.name)
		return Void
	}
	return o.fields[f.name]
}

func (e *Env) setField(op string, obj jvm.Object, id jvm.FieldID, want sig.Kind, v Value) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter(op)

	f := e.field(op, id)
	if f == nil {
		return
	}
	if f.static {
		e.rt.violate("%s: %s.%s is static", op, f.class.name, f.name)
		return
	}
	if !compatible(want, f.typ.Kind()) {
		e.rt.violate("%s: %s.%s has type %s", op, f.class.name, f.name, f.typ)
	}
	o := e.resolve(op, obj)
	if o == nil {
		e.throw("java/lang/NullPointerException", f.name)
		return
	}
	o.Set(f.name, v)
}

func (e *Env) getStatic(op string, cls jvm.Class, id jvm.FieldID, want sig.Kind) Value {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter(op)

	f := e.field(op, id)
	if f == nil {
		return Void
	}
	if !f.static {
		e.rt.violate("%s: %s.%s is not static", op, f.class.name, f.name)
		return Void
	}
	if !compatible(want, f.typ.Kind()) {
		e.rt.violate("%s: %s.%s has type %s", op, f.class.name, f.name, f.typ)
	}
	e.resolveClass(op, cls)
	return f.class.statics[f.name]
}

func (e *Env) setStatic(op string, cls jvm.Class, id jvm.FieldID, want sig.Kind, v Value) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter(op)

	f := e.field(op, id)
	if f == nil {
		return
	}
	if !f.static {
		e.rt.violate("%s: %s.%s is not static", op, f.class.name, f.name)
		return
	}
	if !compatible(want, f.typ.Kind()) {
		e.rt.violate("%s: %s.%s has type %s", op, f.class.name, f.name, f.typ)
	}
	e.resolveClass(op, cls)
	f.class.statics[f.name] = v
}

func (e *Env) refValue(op string, h jvm.Object) Value {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	return Ref(e.resolve(op, h))
}

// GetObjectField implements jvm.Env.
func (e *Env) GetObjectField(obj jvm.Object, f jvm.FieldID) jvm.Object {
	return e.objectResult(e.getField("GetObjectField", obj, f, sig.KindObject))
}

// GetBooleanField implements jvm.Env.
func (e *Env) GetBooleanField(obj jvm.Object, f jvm.FieldID) bool {
	return e.getField("GetBooleanField", obj, f, sig.KindBoolean).Bool()
}

// GetByteField implements jvm.Env.
func (e *Env) GetByteField(obj jvm.Object, f jvm.FieldID) int8 {
	return e.getField("GetByteField", obj, f, sig.KindByte).Byte()
}

// GetCharField implements jvm.Env.
func (e *Env) GetCharField(obj jvm.Object, f jvm.FieldID) uint16 {
	return e.getField("GetCharField", obj, f, sig.KindChar).Char()
}

// GetShortField implements jvm.Env.
func (e *Env) GetShortField(obj jvm.Object, f jvm.FieldID) int16 {
	return e.getField("GetShortField", obj, f, sig.KindShort).Short()
}

// GetIntField implements jvm.Env.
func (e *Env) GetIntField(obj jvm.Object, f jvm.FieldID) int32 {
	return e.getField("GetIntField", obj, f, sig.KindInt).Int()
}

// GetLongField implements jvm.Env.
func (e *Env) GetLongField(obj jvm.Object, f jvm.FieldID) int64 {
	return e.getField("GetLongField", obj, f, sig.KindLong).Long()
}

// GetFloatField implements jvm.Env.
func (e *Env) GetFloatField(obj jvm.Object, f jvm.FieldID) float32 {
	return e.getField("GetFloatField", obj, f, sig.KindFloat).Float()
}

// GetDoubleField implements jvm.Env.
func (e *Env) GetDoubleField(obj jvm.Object, f jvm.FieldID) float64 {
	return e.getField("GetDoubleField", obj, f, sig.KindDouble).Double()
}

// SetObjectField implements jvm.Env.
func (e *Env) SetObjectField(obj jvm.Object, f jvm.FieldID, v jvm.Object) {
	e.setField("SetObjectField", obj, f, sig.KindObject, e.refValue("SetObjectField", v))
}

// SetBooleanField implements jvm.Env.
func (e *Env) SetBooleanField(obj jvm.Object, f jvm.FieldID, v bool) {
	e.setField("SetBooleanField", obj, f, sig.KindBoolean, Bool(v))
}

// SetByteField implements jvm.Env.
func (e *Env) SetByteField(obj jvm.Object, f jvm.FieldID, v int8) {
	e.setField("SetByteField", obj, f, sig.KindByte, Byte(v))
}

// SetCharField implements jvm.Env.
func (e *Env) SetCharField(obj jvm.Object, f jvm.FieldID, v uint16) {
	e.setField("SetCharField", obj, f, sig.KindChar, Char(v))
}

// SetShortField implements jvm.Env.
func (e *Env) SetShortField(obj jvm.Object, f jvm.FieldID, v int16) {
	e.setField("SetShortField", obj, f, sig.KindShort, Short(v))
}

// SetIntField implements jvm.Env.
func (e *Env) SetIntField(obj jvm.Object, f jvm.FieldID, v int32) {
	e.setField("SetIntField", obj, f, sig.KindInt, Int(v))
}

// SetLongField implements jvm.Env.
func (e *Env) SetLongField(obj jvm.Object, f jvm.FieldID, v int64) {
	e.setField("SetLongField", obj, f, sig.KindLong, Long(v))
}

// SetFloatField implements jvm.Env.
func (e *Env) SetFloatField(obj jvm.Object, f jvm.FieldID, v float32) {
	e.setField("SetFloatField", obj, f, sig.KindFloat, Float(v))
}

// SetDoubleField implements jvm.Env.
func (e *Env) SetDoubleField(obj jvm.Object, f jvm.FieldID, v float64) {
	e.setField("SetDoubleField", obj, f, sig.KindDouble, Double(v))
}

// GetStaticObjectField implements jvm.Env.
func (e *Env) GetStaticObjectField(cls jvm.Class, f jvm.FieldID) jvm.Object {
	return e.objectResult(e.getStatic("GetStaticObjectField", cls, f, sig.KindObject))
}

// GetStaticBooleanField implements jvm.Env.
func (e *Env) GetStaticBooleanField(cls jvm.Class, f jvm.FieldID) bool {
	return e.getStatic("GetStaticBooleanField", cls, f, sig.KindBoolean).Bool()
}

// GetStaticByteField implements jvm.Env.
func (e *Env) GetStaticByteField(cls jvm.Class, f jvm.FieldID) int8 {
	return e.getStatic("GetStaticByteField", cls, f, sig.KindByte).Byte()
}

// GetStaticCharField implements jvm.Env.
func (e *Env) GetStaticCharField(cls jvm.Class, f jvm.FieldID) uint16 {
	return e.getStatic("GetStaticCharField", cls, f, sig.KindChar).Char()
}

// GetStaticShortField implements jvm.Env.
func (e *Env) GetStaticShortField(cls jvm.Class, f jvm.FieldID) int16 {
	return e.getStatic("GetStaticShortField", cls, f, sig.KindShort).Short()
}

// GetStaticIntField implements jvm.Env.
func (e *Env) GetStaticIntField(cls jvm.Class, f jvm.FieldID) int32 {
	return e.getStatic("GetStaticIntField", cls, f, sig.KindInt).Int()
}

// GetStaticLongField implements jvm.Env.
func (e *Env) GetStaticLongField(cls jvm.Class, f jvm.FieldID) int64 {
	return e.getStatic("GetStaticLongField", cls, f, sig.KindLong).Long()
}

// GetStaticFloatField implements jvm.Env.
func (e *Env) GetStaticFloatField(cls jvm.Class, f jvm.FieldID) float32 {
	return e.getStatic("GetStaticFloatField", cls, f, sig.KindFloat).Float()
}

// GetStaticDoubleField implements jvm.Env.
func (e *Env) GetStaticDoubleField(cls jvm.Class, f jvm.FieldID) float64 {
	return e.getStatic("GetStaticDoubleField", cls, f, sig.KindDouble).Double()
}

// SetStaticObjectField implements jvm.Env.
func (e *Env) SetStaticObjectField(cls jvm.Class, f jvm.FieldID, v jvm.Object) {
	e.setStatic("SetStaticObjectField", cls, f, sig.KindObject, e.refValue("SetStaticObjectField", v))
}

// SetStaticBooleanField implements jvm.Env.
func (e *Env) SetStaticBooleanField(cls jvm.Class, f jvm.FieldID, v bool) {
	e.setStatic("SetStaticBooleanField", cls, f, sig.KindBoolean, Bool(v))
}

// SetStaticByteField implements jvm.Env.
func (e *Env) SetStaticByteField(cls jvm.Class, f jvm.FieldID, v int8) {
	e.setStatic("SetStaticByteField", cls, f, sig.KindByte, Byte(v))
}

// SetStaticCharField implements jvm.Env.
func (e *Env) SetStaticCharField(cls jvm.Class, f jvm.FieldID, v uint16) {
	e.setStatic("SetStaticCharField", cls, f, sig.KindChar, Char(v))
}

// SetStaticShortField implements jvm.Env.
func (e *Env) SetStaticShortField(cls jvm.Class, f jvm.FieldID, v int16) {
	e.setStatic("SetStaticShortField", cls, f, sig.KindShort, Short(v))
}

// SetStaticIntField implements jvm.Env.
func (e *Env) SetStaticIntField(cls jvm.Class, f jvm.FieldID, v int32) {
	e.setStatic("SetStaticIntField", cls, f, sig.KindInt, Int(v))
}

// SetStaticLongField implements jvm.Env.
func (e *Env) SetStaticLongField(cls jvm.Class, f jvm.FieldID, v int64) {
	e.setStatic("SetStaticLongField", cls, f, sig.KindLong, Long(v))
}

// SetStaticFloatField implements jvm.Env.
func (e *Env) SetStaticFloatField(cls jvm.Class, f jvm.FieldID, v float32) {
	e.setStatic("SetStaticFloatField", cls, f, sig.KindFloat, Float(v))
}

// SetStaticDoubleField implements jvm.Env.
func (e *Env) SetStaticDoubleField(cls jvm.Class, f jvm.FieldID, v float64) {
	e.setStatic("SetStaticDoubleField", cls, f, sig.KindDouble, Double(v))
}

// NewStringUTF implements jvm.Env.
func (e *Env) NewStringUTF(utf []byte) jvm.String {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("NewStringUTF")
	return e.local(e.rt.newString(mutf8.Decode(utf)))
}

func (e *Env) stringObject(op string, str jvm.String) *Object {
	o := e.resolve(op, str)
	if o == nil {
		e.rt.violate("%s: null string", op)
		return nil
	}
	if !o.isString() {
		e.rt.violate("%s: %s is not a string", op, o.class.name)
		return nil
	}
	return o
}

// GetStringLength implements jvm.Env.
func (e *Env) GetStringLength(str jvm.String) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("GetStringLength")

	o := e.stringObject("GetStringLength", str)
	if o == nil {
		return 0
	}
	return int32(len(utf16.Encode([]rune(o.text))))
}

// GetStringUTFLength implements jvm.Env.
func (e *Env) GetStringUTFLength(str jvm.String) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("GetStringUTFLength")

	o := e.stringObject("GetStringUTFLength", str)
	if o == nil {
		return 0
	}
	return int32(mutf8.Len(o.text))
}

// GetStringUTFChars implements jvm.Env.
func (e *Env) GetStringUTFChars(str jvm.String) ([]byte, jvm.Chars) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("GetStringUTFChars")

	o := e.stringObject("GetStringUTFChars", str)
	if o == nil {
		return nil, 0
	}
	if e.rt.utfFault != nil && e.rt.utfFault(o.text) {
		e.throw("java/lang/OutOfMemoryError", "GetStringUTFChars")
		return nil, 0
	}
	chars := jvm.Chars(e.rt.nextChars)
	e.rt.nextChars += handleAlign
	e.rt.chars[chars] = o
	return mutf8.Encode(o.text), chars
}

// ReleaseStringUTFChars implements jvm.Env.
func (e *Env) ReleaseStringUTFChars(str jvm.String, chars jvm.Chars) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("ReleaseStringUTFChars")

	o, ok := e.rt.chars[chars]
	if !ok {
		e.rt.violate("ReleaseStringUTFChars: unknown buffer %#x", uintptr(chars))
		return
	}
	if s := e.resolve("ReleaseStringUTFChars", str); s != o {
		e.rt.violate("ReleaseStringUTFChars: buffer %#x released against another string", uintptr(chars))
	}
	delete(e.rt.chars, chars)
}

func (e *Env) array(op string, arr jvm.Array) *Object {
	o := e.resolve(op, arr)
	if o == nil {
		e.throw("java/lang/NullPointerException", op)
		return nil
	}
	if !o.class.isArray() {
		e.rt.violate("%s: %s is not an array", op, o.class.name)
		return nil
	}
	return o
}

// GetArrayLength implements jvm.Env.
func (e *Env) GetArrayLength(arr jvm.Array) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("GetArrayLength")

	o := e.array("GetArrayLength", arr)
	if o == nil {
		return 0
	}
	return int32(len(o.elems))
}

// NewObjectArray implements jvm.Env.
func (e *Env) NewObjectArray(length int32, elem jvm.Class, init jvm.Object) jvm.Array {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("NewObjectArray")

	k := e.resolveClass("NewObjectArray", elem)
	if k == nil {
		return 0
	}
	if length < 0 {
		e.throw("java/lang/NegativeArraySizeException", "")
		return 0
	}
	var desc sig.Type
	if k.isArray() {
		desc = sig.Type(k.name)
	} else {
		desc = sig.Class(k.name)
	}
	arr := e.rt.newArray(desc, int(length))
	v := Ref(e.resolve("NewObjectArray", init))
	for i := range arr.elems {
		arr.elems[i] = v
	}
	return e.local(arr)
}

func (e *Env) bounds(o *Object, start, n int) bool {
	if start < 0 || n < 0 || start+n > len(o.elems) {
		e.throw("java/lang/ArrayIndexOutOfBoundsException", "")
		return false
	}
	return true
}

// GetObjectArrayElement implements jvm.Env.
func (e *Env) GetObjectArrayElement(arr jvm.Array, index int32) jvm.Object {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("GetObjectArrayElement")

	o := e.array("GetObjectArrayElement", arr)
	if o == nil || !e.bounds(o, int(index), 1) {
		return 0
	}
	return e.local(o.elems[index].Ref)
}

// SetObjectArrayElement implements jvm.Env.
func (e *Env) SetObjectArrayElement(arr jvm.Array, index int32, v jvm.Object) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("SetObjectArrayElement")

	o := e.array("SetObjectArrayElement", arr)
	if o == nil || !e.bounds(o, int(index), 1) {
		return
	}
	o.elems[index] = Ref(e.resolve("SetObjectArrayElement", v))
}

func (e *Env) newPrimitiveArray(op string, elem sig.Type, length int32) jvm.Array {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter(op)

	if length < 0 {
		e.throw("java/lang/NegativeArraySizeException", "")
		return 0
	}
	return e.local(e.rt.newArray(elem, int(length)))
}

// NewBooleanArray implements jvm.Env.
func (e *Env) NewBooleanArray(length int32) jvm.Array {
	return e.newPrimitiveArray("NewBooleanArray", sig.Boolean, length)
}

// NewByteArray implements jvm.Env.
func (e *Env) NewByteArray(length int32) jvm.Array {
	return e.newPrimitiveArray("NewByteArray", sig.Byte, length)
}

// NewIntArray implements jvm.Env.
func (e *Env) NewIntArray(length int32) jvm.Array {
	return e.newPrimitiveArray("NewIntArray", sig.Int, length)
}

// NewLongArray implements jvm.Env.
func (e *Env) NewLongArray(length int32) jvm.Array {
	return e.newPrimitiveArray("NewLongArray", sig.Long, length)
}

// NewFloatArray implements jvm.Env.
func (e *Env) NewFloatArray(length int32) jvm.Array {
	return e.newPrimitiveArray("NewFloatArray", sig.Float, length)
}

// NewDoubleArray implements jvm.Env.
func (e *Env) NewDoubleArray(length int32) jvm.Array {
	return e.newPrimitiveArray("NewDoubleArray", sig.Double, length)
}

// region locks the array for a region transfer of n elements and returns the
// element slice, or nil if the transfer must not happen.
func (e *Env) region(op string, arr jvm.Array, elem sig.Type, start int32, n int) []Value {
	e.enter(op)
	o := e.array(op, arr)
	if o == nil {
		return nil
	}
	if o.class.elem != elem {
		e.rt.violate("%s: %s is not an array of %s", op, o.class.name, elem)
		return nil
	}
	if !e.bounds(o, int(start), n) {
		return nil
	}
	return o.elems[start : int(start)+n]
}

func getRegion[T any](e *Env, op string, arr jvm.Array, elem sig.Type, start int32, buf []T, conv func(Value) T) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	for i, v := range e.region(op, arr, elem, start, len(buf)) {
		buf[i] = conv(v)
	}
}

func setRegion[T any](e *Env, op string, arr jvm.Array, elem sig.Type, start int32, buf []T, conv func(T) Value) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	elems := e.region(op, arr, elem, start, len(buf))
	if elems == nil {
		return
	}
	for i, v := range buf {
		elems[i] = conv(v)
	}
}

// GetBooleanArrayRegion implements jvm.Env.
func (e *Env) GetBooleanArrayRegion(arr jvm.Array, start int32, buf []bool) {
	getRegion(e, "GetBooleanArrayRegion", arr, sig.Boolean, start, buf, Value.Bool)
}

// GetByteArrayRegion implements jvm.Env.
func (e *Env) GetByteArrayRegion(arr jvm.Array, start int32, buf []int8) {
	getRegion(e, "GetByteArrayRegion", arr, sig.Byte, start, buf, Value.Byte)
}

// GetIntArrayRegion implements jvm.Env.
func (e *Env) GetIntArrayRegion(arr jvm.Array, start int32, buf []int32) {
	getRegion(e, "GetIntArrayRegion", arr, sig.Int, start, buf, Value.Int)
}

// GetLongArrayRegion implements jvm.Env.
func (e *Env) GetLongArrayRegion(arr jvm.Array, start int32, buf []int64) {
	getRegion(e, "GetLongArrayRegion", arr, sig.Long, start, buf, Value.Long)
}

// GetFloatArrayRegion implements jvm.Env.
func (e *Env) GetFloatArrayRegion(arr jvm.Array, start int32, buf []float32) {
	getRegion(e, "GetFloatArrayRegion", arr, sig.Float, start, buf, Value.Float)
}

// GetDoubleArrayRegion implements jvm.Env.
func (e *Env) GetDoubleArrayRegion(arr jvm.Array, start int32, buf []float64) {
	getRegion(e, "GetDoubleArrayRegion", arr, sig.Double, start, buf, Value.Double)
}

// SetBooleanArrayRegion implements jvm.Env.
func (e *Env) SetBooleanArrayRegion(arr jvm.Array, start int32, buf []bool) {
	setRegion(e, "SetBooleanArrayRegion", arr, sig.Boolean, start, buf, Bool)
}

// SetByteArrayRegion implements jvm.Env.
func (e *Env) SetByteArrayRegion(arr jvm.Array, start int32, buf []int8) {
	setRegion(e, "SetByteArrayRegion", arr, sig.Byte, start, buf, Byte)
}

// SetIntArrayRegion implements jvm.Env.
func (e *Env) SetIntArrayRegion(arr jvm.Array, start int32, buf []int32) {
	setRegion(e, "SetIntArrayRegion", arr, sig.Int, start, buf, Int)
}

// SetLongArrayRegion implements jvm.Env.
func (e *Env) SetLongArrayRegion(arr jvm.Array, start int32, buf []int64) {
	setRegion(e, "SetLongArrayRegion", arr, sig.Long, start, buf, Long)
}

// SetFloatArrayRegion implements jvm.Env.
func (e *Env) SetFloatArrayRegion(arr jvm.Array, start int32, buf []float32) {
	setRegion(e, "SetFloatArrayRegion", arr, sig.Float, start, buf, Float)
}

// SetDoubleArrayRegion implements jvm.Env.
func (e *Env) SetDoubleArrayRegion(arr jvm.Array, start int32, buf []float64) {
	setRegion(e, "SetDoubleArrayRegion", arr, sig.Double, start, buf, Double)
}

// RegisterNatives implements jvm.Env. Every method must be declared on the
// class.
func (e *Env) RegisterNatives(cls jvm.Class, methods []jvm.NativeMethod) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("RegisterNatives")

	k := e.resolveClass("RegisterNatives", cls)
	if k == nil {
		return -1
	}
	for _, nm := range methods {
		found := false
		for _, m := range k.methods {
			if m.name == nm.Name && m.desc == nm.Signature {
				found = true
				break
			}
		}
		if !found {
			e.throw("java/lang/NoSuchMethodError", nm.Name)
			return -1
		}
	}
	k.natives = append(k.natives, methods...)
	return 0
}

// UnregisterNatives implements jvm.Env.
func (e *Env) UnregisterNatives(cls jvm.Class) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("UnregisterNatives")

	k := e.resolveClass("UnregisterNatives", cls)
	if k == nil {
		return -1
	}
	k.natives = nil
	return 0
}

// MonitorEnter implements jvm.Env.
func (e *Env) MonitorEnter(obj jvm.Object) int32 {
	e.rt.mu.Lock()
	e.enter("MonitorEnter")
	o := e.resolve("MonitorEnter", obj)
	e.rt.mu.Unlock()

	if o == nil {
		return -1
	}
	o.mon.enter(e.tid)
	return 0
}

// MonitorExit implements jvm.Env.
func (e *Env) MonitorExit(obj jvm.Object) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("MonitorExit")

	o := e.resolve("MonitorExit", obj)
	if o == nil {
		return -1
	}
	if !o.mon.exit(e.tid) {
		e.throw("java/lang/IllegalMonitorStateException", "")
		return -1
	}
	return 0
}

// Holds reports whether the thread of e owns the monitor of o.
func (e *Env) Holds(o *Object) bool {
	owner, count := o.mon.held()
	return count > 0 && owner == e.tid
}
