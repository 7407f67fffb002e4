package cpu

import "testing"

// helper function to test a flag is set to an expected value
func expectFlag(t *testing.T, cpu *CPU, f flag, expect bool) {
	t.Helper()

	if expect != cpu.p.isSet(f) {
		t.Errorf("expected flag %08b to be %t got: %t", f, expect, cpu.p.isSet(f))
	}
}

func TestUpdateZN(t *testing.T) {
	cpu := New()

	cpu.updateZN(0)
	expectFlag(t, cpu, P_Zero, true)
	expectFlag(t, cpu, P_Negative, false)

	cpu.updateZN(0x80)
	expectFlag(t, cpu, P_Zero, false)
	expectFlag(t, cpu, P_Negative, true)

	cpu.updateZN(0x01)
	expectFlag(t, cpu, P_Zero, false)
	expectFlag(t, cpu, P_Negative, false)
}

func TestSetFlag(t *testing.T) {
	cpu := New()

	cpu.p.setFlag(P_Carry, true)
	expectFlag(t, cpu, P_Carry, true)

	cpu.p.setFlag(P_Carry, false)
	expectFlag(t, cpu, P_Carry, false)
}
