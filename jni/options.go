package jni

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"omibyte.io/gojni/jvm"
)

type Verbosity int

const (
	Quiet Verbosity = iota
	Warning
	Info
	Debug
)

// ParseVerbosity accepts quiet, warning, info and debug.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(s) {
	case "quiet":
		return Quiet, nil
	case "warning", "warn":
		return Warning, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	default:
		return Quiet, fmt.Errorf("unknown verbosity %q", s)
	}
}

func (v Verbosity) level() zapcore.Level {
	switch v {
	case Quiet:
		return zapcore.ErrorLevel
	case Warning:
		return zapcore.WarnLevel
	case Info:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

type Options struct {
	// Version is the interface version requested from the runtime.
	Version jvm.Version

	Verbosity Verbosity

	// Logger overrides the default stderr logger. Verbosity is ignored when
	// it is set.
	Logger *zap.Logger

	// FrameCapacity is the capacity of the local frame Accessor.Do pushes.
	FrameCapacity int

	// CheckThread makes every Env operation panic with ErrWrongThread when
	// called from a thread other than the one the Env was acquired on.
	CheckThread bool

	// PreserveExceptions keeps a global reference to the throwable on every
	// PendingExceptionError.
	PreserveExceptions bool

	// AttachAsDaemon attaches unknown threads as daemon threads.
	AttachAsDaemon bool

	DisableClassCache bool

	// MemberCacheSize bounds the number of memoized method and field ids.
	MemberCacheSize int

	// Fatal is called for unrecoverable errors. The default logs the error
	// and exits the process.
	Fatal func(err error)
}

func DefaultOptions() Options {
	return Options{
		Version:         jvm.Version1_6,
		Verbosity:       Warning,
		FrameCapacity:   16,
		MemberCacheSize: 1024,
	}
}

// OptionsFromEnv returns the default options overridden by GOJNI_*
// environment variables. Malformed values are reported and ignored.
func OptionsFromEnv() (Options, error) {
	opts := DefaultOptions()
	var errs []string

	if v := getenv("GOJNI_VERSION", ""); v != "" {
		if version, err := ParseVersion(v); err != nil {
			errs = append(errs, err.Error())
		} else {
			opts.Version = version
		}
	}

	if v := getenv("GOJNI_VERBOSITY", ""); v != "" {
		if verbosity, err := ParseVerbosity(v); err != nil {
			errs = append(errs, err.Error())
		} else {
			opts.Verbosity = verbosity
		}
	}

	ints := []struct {
		key   string
		value *int
	}{
		{"GOJNI_FRAME_CAPACITY", &opts.FrameCapacity},
		{"GOJNI_CLASS_CACHE_SIZE", &opts.MemberCacheSize},
	}
	for _, i := range ints {
		n, err := strconv.Atoi(getenv(i.key, strconv.Itoa(*i.value)))
		if err != nil || n < 0 {
			errs = append(errs, fmt.Sprintf("%s: invalid value", i.key))
			continue
		}
		*i.value = n
	}

	bools := []struct {
		key   string
		value *bool
	}{
		{"GOJNI_CHECK_THREAD", &opts.CheckThread},
		{"GOJNI_PRESERVE_EXCEPTIONS", &opts.PreserveExceptions},
		{"GOJNI_ATTACH_DAEMON", &opts.AttachAsDaemon},
		{"GOJNI_DISABLE_CLASS_CACHE", &opts.DisableClassCache},
	}
	for _, b := range bools {
		v, err := strconv.ParseBool(getenv(b.key, strconv.FormatBool(*b.value)))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid value", b.key))
			continue
		}
		*b.value = v
	}

	if len(errs) > 0 {
		return opts, fmt.Errorf("invalid environment: %s", strings.Join(errs, "; "))
	}
	return opts, nil
}

// ParseVersion parses an interface version such as "1.6" or "10".
func ParseVersion(s string) (jvm.Version, error) {
	major, minor, _ := strings.Cut(s, ".")
	ma, err := strconv.Atoi(major)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q", s)
	}
	mi := 0
	if minor != "" {
		if mi, err = strconv.Atoi(minor); err != nil {
			return 0, fmt.Errorf("invalid version %q", s)
		}
	}
	if ma < 1 || mi < 0 || mi > 0xFFFF {
		return 0, fmt.Errorf("invalid version %q", s)
	}
	return jvm.Version(ma<<16 | mi), nil
}

func versionString(v jvm.Version) string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), o.Verbosity.level())
	return zap.New(core).Named("gojni")
}

// Abort reports an unrecoverable error through Fatal. Without Fatal the error
// is logged and the process exits.
func (o Options) Abort(err error) {
	if o.Fatal != nil {
		o.Fatal(err)
		return
	}
	exit(o.logger(), err)
}

func exit(log *zap.Logger, err error) {
	log.Error("fatal runtime error", zap.Error(err))
	_ = log.Sync()
	os.Exit(1)
}

func getenv(key, _default string) (value string) {
	value = os.Getenv(key)
	if len(value) == 0 {
		value = _default
	}
	return value
}
