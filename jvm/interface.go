package jvm

// VM is the process-wide runtime handle.
type VM interface {
	// GetEnv returns the environment of the calling thread. It reports
	// Detached if the thread is not attached and EVersion if the requested
	// version is not supported.
	GetEnv(version Version) (Env, Status)
	AttachCurrentThread() (Env, Status)
	AttachCurrentThreadAsDaemon() (Env, Status)
	DetachCurrentThread() Status
}

// Env is the per-thread function table. An Env must only be used on the
// thread it was obtained on.
type Env interface {
	GetVersion() Version

	// Classes
	FindClass(name string) Class
	GetSuperclass(cls Class) Class
	IsAssignableFrom(sub, sup Class) bool
	GetObjectClass(obj Object) Class
	IsInstanceOf(obj Object, cls Class) bool

	// Exceptions
	Throw(obj Throwable) int32
	ThrowNew(cls Class, msg string) int32
	ExceptionOccurred() Throwable
	ExceptionDescribe()
	ExceptionClear()
	ExceptionCheck() bool
	FatalError(msg string)

	// References
	PushLocalFrame(capacity int32) int32
	PopLocalFrame(result Object) Object
	NewGlobalRef(obj Object) Object
	DeleteGlobalRef(obj Object)
	DeleteLocalRef(obj Object)
	IsSameObject(a, b Object) bool
	NewLocalRef(obj Object) Object
	EnsureLocalCapacity(capacity int32) int32
	NewWeakGlobalRef(obj Object) Weak
	DeleteWeakGlobalRef(obj Weak)
	GetObjectRefType(obj Object) RefType

	// Objects
	AllocObject(cls Class) Object
	NewObjectA(cls Class, ctor MethodID, args []Value) Object

	// Methods
	GetMethodID(cls Class, name, sig string) MethodID
	CallObjectMethodA(obj Object, m MethodID, args []Value) Object
	CallBooleanMethodA(obj Object, m MethodID, args []Value) bool
	CallByteMethodA(obj Object, m MethodID, args []Value) int8
	CallCharMethodA(obj Object, m MethodID, args []Value) uint16
	CallShortMethodA(obj Object, m MethodID, args []Value) int16
	CallIntMethodA(obj Object, m MethodID, args []Value) int32
	CallLongMethodA(obj Object, m MethodID, args []Value) int64
	CallFloatMethodA(obj Object, m MethodID, args []Value) float32
	CallDoubleMethodA(obj Object, m MethodID, args []Value) float64
	CallVoidMethodA(obj Object, m MethodID, args []Value)
	CallNonvirtualVoidMethodA(obj Object, cls Class, m MethodID, args []Value)

	GetStaticMethodID(cls Class, name, sig string) MethodID
	CallStaticObjectMethodA(cls Class, m MethodID, args []Value) Object
	CallStaticBooleanMethodA(cls Class, m MethodID, args []Value) bool
	CallStaticByteMethodA(cls Class, m MethodID, args []Value) int8
	CallStaticCharMethodA(cls Class, m MethodID, args []Value) uint16
	CallStaticShortMethodA(cls Class, m MethodID, args []Value) int16
	CallStaticIntMethodA(cls Class, m MethodID, args []Value) int32
	CallStaticLongMethodA(cls Class, m MethodID, args []Value) int64
	CallStaticFloatMethodA(cls Class, m MethodID, args []Value) float32
	CallStaticDoubleMethodA(cls Class, m MethodID, args []Value) float64
	CallStaticVoidMethodA(cls Class, m MethodID, args []Value)

	// Fields
	GetFieldID(cls Class, name, sig string) FieldID
	GetObjectField(obj Object, f FieldID) Object
	GetBooleanField(obj Object, f FieldID) bool
	GetByteField(obj Object, f FieldID) int8
	GetCharField(obj Object, f FieldID) uint16
	GetShortField(obj Object, f FieldID) int16
	GetIntField(obj Object, f FieldID) int32
	GetLongField(obj Object, f FieldID) int64
	GetFloatField(obj Object, f FieldID) float32
	GetDoubleField(obj Object, f FieldID) float64
	SetObjectField(obj Object, f FieldID, v Object)
	SetBooleanField(obj Object, f FieldID, v bool)
	SetByteField(obj Object, f FieldID, v int8)
	SetCharField(obj Object, f FieldID, v uint16)
	SetShortField(obj Object, f FieldID, v int16)
	SetIntField(obj Object, f FieldID, v int32)
	SetLongField(obj Object, f FieldID, v int64)
	SetFloatField(obj Object, f FieldID, v float32)
	SetDoubleField(obj Object, f FieldID, v float64)

	GetStaticFieldID(cls Class, name, sig string) FieldID
	GetStaticObjectField(cls Class, f FieldID) Object
	GetStaticBooleanField(cls Class, f FieldID) bool
	GetStaticByteField(cls Class, f FieldID) int8
	GetStaticCharField(cls Class, f FieldID) uint16
	GetStaticShortField(cls Class, f FieldID) int16
	GetStaticIntField(cls Class, f FieldID) int32
	GetStaticLongField(cls Class, f FieldID) int64
	GetStaticFloatField(cls Class, f FieldID) float32
	GetStaticDoubleField(cls Class, f FieldID) float64
	SetStaticObjectField(cls Class, f FieldID, v Object)
	SetStaticBooleanField(cls Class, f FieldID, v bool)
	SetStaticByteField(cls Class, f FieldID, v int8)
	SetStaticCharField(cls Class, f FieldID, v uint16)
	SetStaticShortField(cls Class, f FieldID, v int16)
	SetStaticIntField(cls Class, f FieldID, v int32)
	SetStaticLongField(cls Class, f FieldID, v int64)
	SetStaticFloatField(cls Class, f FieldID, v float32)
	SetStaticDoubleField(cls Class, f FieldID, v float64)

	// Strings. UTF data is modified UTF-8.
	NewStringUTF(utf []byte) String
	GetStringLength(str String) int32
	GetStringUTFLength(str String) int32
	// GetStringUTFChars copies the string's UTF bytes and returns the native
	// buffer they were read from. The buffer must be released even though the
	// returned slice is a Go copy.
	GetStringUTFChars(str String) ([]byte, Chars)
	ReleaseStringUTFChars(str String, chars Chars)

	// Arrays
	GetArrayLength(arr Array) int32
	NewObjectArray(length int32, elem Class, init Object) Array
	GetObjectArrayElement(arr Array, index int32) Object
	SetObjectArrayElement(arr Array, index int32, v Object)

	NewBooleanArray(length int32) Array
	NewByteArray(length int32) Array
	NewIntArray(length int32) Array
	NewLongArray(length int32) Array
	NewFloatArray(length int32) Array
	NewDoubleArray(length int32) Array

	GetBooleanArrayRegion(arr Array, start int32, buf []bool)
	GetByteArrayRegion(arr Array, start int32, buf []int8)
	GetIntArrayRegion(arr Array, start int32, buf []int32)
	GetLongArrayRegion(arr Array, start int32, buf []int64)
	GetFloatArrayRegion(arr Array, start int32, buf []float32)
	GetDoubleArrayRegion(arr Array, start int32, buf []float64)

	SetBooleanArrayRegion(arr Array, start int32, buf []bool)
	SetByteArrayRegion(arr Array, start int32, buf []int8)
	SetIntArrayRegion(arr Array, start int32, buf []int32)
	SetLongArrayRegion(arr Array, start int32, buf []int64)
	SetFloatArrayRegion(arr Array, start int32, buf []float32)
	SetDoubleArrayRegion(arr Array, start int32, buf []float64)

	// Natives
	RegisterNatives(cls Class, methods []NativeMethod) int32
	UnregisterNatives(cls Class) int32

	// Monitors
	MonitorEnter(obj Object) int32
	MonitorExit(obj Object) int32
}
