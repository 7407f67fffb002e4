package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/arhym/mos6502/cpu"
)

// debuggerModel is the bubbletea model for the interactive single-step
// debugger. It owns the CPU; each "step" key drives exactly one
// cpu.Step() call.
type debuggerModel struct {
	c6502   *cpu.CPU
	program []uint8
	start   uint16

	prevPC uint16
	done   bool
}

func (m debuggerModel) Init() tea.Cmd {
	m.c6502.Load(m.program)
	m.c6502.SetPC(m.start)
	return nil
}

func (m debuggerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			if m.done {
				return m, nil
			}
			m.prevPC = m.c6502.PC()
			if !m.c6502.Step() {
				m.done = true
			}
		}
	}
	return m, nil
}

// pageRow renders 16 bytes of memory starting at a 16-byte-aligned address,
// bracketing whichever byte PC currently points at.
func (m debuggerModel) pageRow(start uint16) string {
	mem := m.c6502.Memory()
	s := fmt.Sprintf("%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		b := mem.Read(start + i)
		if start+i == m.c6502.PC() {
			s += fmt.Sprintf("[%02X]", b)
		} else {
			s += fmt.Sprintf(" %02X ", b)
		}
	}
	return s
}

func (m debuggerModel) pageTable() string {
	rows := []string{"addr |  0   1   2   3   4   5   6   7   8   9   a   b   c   d   e   f"}
	base := m.c6502.PC() &^ 0x7F
	for page := uint16(0); page < 8; page++ {
		rows = append(rows, m.pageRow(base+page*16))
	}
	return strings.Join(rows, "\n")
}

func (m debuggerModel) status() string {
	p := m.c6502.P()
	flagRow := ""
	for _, bit := range []uint8{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01} {
		if p&bit != 0 {
			flagRow += "1 "
		} else {
			flagRow += "0 "
		}
	}
	return fmt.Sprintf(
		"PC: %04X (was %04X)\n A: %02X\n X: %02X\n Y: %02X\nSP: %02X\n\nN V _ B D I Z C\n%s\nhalt: %s",
		m.c6502.PC(), m.prevPC,
		m.c6502.A(), m.c6502.X(), m.c6502.Y(), m.c6502.SP(),
		flagRow, m.c6502.Halt(),
	)
}

func (m debuggerModel) View() string {
	inst := m.c6502.Disassemble(m.c6502.PC())

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.pageTable(),
		"   ",
		m.status(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		"",
		spew.Sdump(inst),
		"space/s: step   q: quit",
	)
}

// runDebugger loads program at address 0, sets PC to start, and hands control to an interactive
// bubbletea program; the user drives execution one instruction at a time
// and sees registers, flags, a memory page table, and the decoded
// instruction under the cursor on every step.
func runDebugger(program []uint8, start uint16) error {
	m := debuggerModel{
		c6502:   cpu.New(),
		program: program,
		start:   start,
	}

	_, err := tea.NewProgram(m).Run()
	return err
}
