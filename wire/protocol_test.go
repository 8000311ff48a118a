package wire

import "testing"

// TestServiceFlagStringer tests the stringized output for service flag
// values.
func TestServiceFlagStringer(t *testing.T) {
	tests := []struct {
		in   ServiceFlag
		want string
	}{
		{0, "0x0"},
		{SFNodeNetwork, "SFNodeNetwork"},
		{SFNodeBloom, "SFNodeBloom"},
		{SFNodeNetwork | SFNodeBloom, "SFNodeNetwork|SFNodeBloom"},
		{0xffffffff, "SFNodeNetwork|SFNodeBloom|0xfffffffc"},
	}

	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("String #%d: got %q, want %q", i, got, test.want)
		}
	}
}

// TestEmberNetStringer tests the stringized output for ember net values.
func TestEmberNetStringer(t *testing.T) {
	tests := []struct {
		in   EmberNet
		want string
	}{
		{MainNet, "MainNet"},
		{MainNetLegacy, "MainNetLegacy"},
		{TestNet, "TestNet"},
		{TestNetLegacy, "TestNetLegacy"},
		{0xffffffff, "Unknown EmberNet (4294967295)"},
	}

	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("String #%d: got %q, want %q", i, got, test.want)
		}
	}
}
