package main

import "testing"

func TestParseArgs(t *testing.T) {
	o, err := parseArgs([]string{"fill", "Demo-DMA", "double-buffer", "vsync"})
	if err != nil {
		t.Fatal(err)
	}
	if !o.fill || !o.demoDMA || !o.vsync || o.maxPages != 2 {
		t.Errorf("unexpected options %+v", o)
	}
	if o.halfSize || o.copyAreaDMA || !o.any() {
		t.Errorf("unexpected options %+v", o)
	}

	o, _ = parseArgs([]string{"half-size"})
	if o.any() || o.maxPages != 3 {
		t.Errorf("unexpected options %+v", o)
	}

	if _, err = parseArgs([]string{"bogus"}); err == nil {
		t.Error("expected error for unrecognized option")
	}
}
