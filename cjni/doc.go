// Package cjni binds the jvm interfaces to a real runtime through cgo and
// <jni.h>. It is only built with the cgo and jni build tags:
//
//	CGO_CFLAGS="-I$JAVA_HOME/include -I$JAVA_HOME/include/linux" \
//		go build -tags jni -buildmode=c-shared
//
// Importing the package exports JNI_OnLoad and JNI_OnUnload from the shared
// library. JNI_OnLoad installs the process-wide accessor of package jni using
// the options in the environment and runs the hooks registered with OnLoad.
package cjni
