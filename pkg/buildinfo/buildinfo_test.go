package buildinfo

import "testing"

func TestBinaryVersionDefault(t *testing.T) {
	if BinaryVersion == "" {
		t.Error("BinaryVersion should never be empty")
	}
}

func TestModuleVersion(t *testing.T) {
	// Under 'go test' the module version may be empty or "(devel)";
	// we only require that the call does not panic.
	_ = ModuleVersion()
}
