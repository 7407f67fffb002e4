package cpu

// StackBase is the address of the stack page; SP indexes into it as
// StackBase + SP.
const StackBase uint16 = 0x0100

// push writes b to the next free stack slot and decrements SP, wrapping
// modulo 256.
func (cpu *CPU) push(b uint8) {
	cpu.m.Write(StackBase+uint16(cpu.sp), b)
	cpu.sp--
}

// pop increments SP, wrapping modulo 256, and returns the byte at the new
// top of stack.
func (cpu *CPU) pop() uint8 {
	cpu.sp++
	return cpu.m.Read(StackBase + uint16(cpu.sp))
}

// pushWord pushes the high byte then the low byte, so that popWord (two
// pops, low then high) reconstructs the little-endian value.
func (cpu *CPU) pushWord(v uint16) {
	cpu.push(uint8(v >> 8))
	cpu.push(uint8(v))
}

func (cpu *CPU) popWord() uint16 {
	lo := uint16(cpu.pop())
	hi := uint16(cpu.pop())
	return lo | (hi << 8)
}
