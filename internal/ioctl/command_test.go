package ioctl

import (
	"strings"
	"testing"
)

type copyArea struct {
	dx, dy, width, height, sx, sy uint32
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want Command
	}{
		{"copy area", Pointer(Write, new(copyArea), Code('z', 0x21)), 0x40187a21},
		{"wait for vsync", Encode(Write, 4, Code('F', 0x20)), 0x40044620},
		{"plain", Command(0x4600), 0x4600},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.cmd != test.want {
				t.Errorf("expected %#x, got %#x", uintptr(test.want), uintptr(test.cmd))
			}
		})
	}
}

func TestCommandFields(t *testing.T) {
	c := Pointer(Write, new(copyArea), Code('z', 0x21))
	if c.Mode() != Write || c.Size() != 24 || c.Type() != 'z' || c.Number() != 0x21 {
		t.Errorf("unexpected fields for %s", c)
	}
	if s := c.String(); !strings.Contains(s, "write") || !strings.Contains(s, "24 bytes") {
		t.Errorf("unexpected string %q", s)
	}
	if s := Command(0x4B3A).String(); s != "ioctl 0x4b3a" {
		t.Errorf("unexpected string %q", s)
	}
}
