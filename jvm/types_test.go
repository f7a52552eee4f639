package jvm

import (
	"math"
	"testing"
)

func TestValueBits(t *testing.T) {
	if !BooleanValue(true).Boolean() || BooleanValue(false).Boolean() {
		t.Error("boolean slot mismatch")
	}
	if v := IntValue(-42); v.Int() != -42 || uint64(v)>>32 != 0 {
		t.Errorf("int slot must occupy the low four bytes, got %#x", uint64(v))
	}
	if v := ByteValue(-1); v != 0xFF || v.Byte() != -1 {
		t.Errorf("unexpected byte slot %#x", uint64(v))
	}
	if v := ShortValue(-2); v.Short() != -2 {
		t.Errorf("unexpected short slot %#x", uint64(v))
	}
	if v := CharValue(0xFFFE); v.Char() != 0xFFFE {
		t.Errorf("unexpected char slot %#x", uint64(v))
	}
	if v := LongValue(math.MinInt64); v.Long() != math.MinInt64 {
		t.Errorf("unexpected long slot %#x", uint64(v))
	}
	if v := FloatValue(1.5); v.Float() != 1.5 || uint64(v)>>32 != 0 {
		t.Errorf("unexpected float slot %#x", uint64(v))
	}
	if v := DoubleValue(-0.25); v.Double() != -0.25 {
		t.Errorf("unexpected double slot %#x", uint64(v))
	}
	if v := ObjectValue(0x1234); v.Object() != 0x1234 {
		t.Errorf("unexpected object slot %#x", uint64(v))
	}
}

func TestVersion(t *testing.T) {
	if Version1_6.Major() != 1 || Version1_6.Minor() != 6 {
		t.Errorf("unexpected version decomposition %d.%d", Version1_6.Major(), Version1_6.Minor())
	}
	if Version10.Major() != 10 {
		t.Errorf("unexpected major %d", Version10.Major())
	}
}
