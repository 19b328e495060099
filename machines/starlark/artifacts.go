package starlark

import (
	"fmt"

	starlarkLib "go.starlark.net/starlark"
)

// Chunk is the lexeme and token artifact of this dialect: Starlark scans
// inside its own parser, so both early stages carry the source whole.
type Chunk struct {
	name string
	src  []byte
}

func (c *Chunk) Name() string { return c.name }

func (c *Chunk) Bytes() []byte {
	if c == nil {
		return nil
	}
	return c.src
}

func (c *Chunk) Release() {
	if c == nil {
		return
	}
	c.src = nil
}

func (c *Chunk) String() string {
	return fmt.Sprintf("starlark.Chunk{Name: %s, Len: %d}", c.name, len(c.src))
}

// Program is a resolved and compiled Starlark file.
type Program struct {
	name string
	prog *starlarkLib.Program
}

func (p *Program) Name() string { return p.name }

func (p *Program) Release() {
	if p == nil {
		return
	}
	p.prog = nil
}

func (p *Program) String() string {
	return fmt.Sprintf("starlark.Program{Name: %s}", p.name)
}
