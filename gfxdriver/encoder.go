package gfxdriver

import "github.com/bandcaster/tilegpu/displaylist"

// appendStreamCommand writes an opcode followed by its fixed-size
// argument to list, rolling back whichever of the two records it
// managed to reserve if the other one didn't fit. This is the direct
// generic-function equivalent of Renderer.hpp's templated
// appendStreamCommand(list, op, arg): Go has no non-type template
// parameters, so the argument type is inferred from arg instead of
// named explicitly at the call site.
func appendStreamCommand[TArg any](list *displaylist.Arena, op Opcode, arg TArg) bool {
	opPtr, opOK := displaylist.Create[Opcode](list)
	argPtr, argOK := displaylist.Create[TArg](list)

	if !opOK || !argOK {
		if opOK {
			displaylist.Remove[Opcode](list)
		}
		if argOK {
			displaylist.Remove[TArg](list)
		}
		return false
	}

	*opPtr = op
	*argPtr = arg
	return true
}
