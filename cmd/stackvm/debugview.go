package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/KCreate/stack-machine/vm"
)

// panel is the optional tcell status view the debugger draws before
// every prompt when -config enables it. It only ever renders — all
// input still comes through the line-oriented REPL on stdin.
type panel struct {
	screen tcell.Screen
	m      *vm.Machine
}

func newPanel(m *vm.Machine) *panel {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Println("debug panel disabled:", err)
		return nil
	}
	if err := screen.Init(); err != nil {
		fmt.Println("debug panel disabled:", err)
		return nil
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	return &panel{screen: screen, m: m}
}

func (p *panel) draw() {
	if p == nil || p.screen == nil {
		return
	}
	p.screen.Clear()

	row := 0
	put := func(s string) {
		for col, r := range s {
			p.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		}
		row++
	}

	put("stackvm debugger")
	put("")

	ip, _ := p.m.Registers().ReadUint64(vm.IP, 8)
	sp, _ := p.m.Registers().ReadUint64(vm.SP, 8)
	fp, _ := p.m.Registers().ReadUint64(vm.FP, 8)
	flags, _ := p.m.Registers().ReadUint64Native(vm.FLAGS)
	running, _ := p.m.Running()

	put(fmt.Sprintf("IP    0x%016x", ip))
	put(fmt.Sprintf("SP    0x%016x", sp))
	put(fmt.Sprintf("FP    0x%016x", fp))
	put(fmt.Sprintf("FLAGS 0x%02x", flags))
	put(fmt.Sprintf("RUN   %v", running))
	put("")

	for i := uint8(0); i <= vm.R9; i++ {
		v, _ := p.m.Registers().ReadUint64(i, 8)
		put(fmt.Sprintf("R%-2d   0x%016x", i, v))
	}

	p.screen.Show()
}

func (p *panel) close() {
	if p == nil || p.screen == nil {
		return
	}
	p.screen.Fini()
}
