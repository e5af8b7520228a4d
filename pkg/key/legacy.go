// Pre-Kitty escape sequences: the wire encoding terminals without the
// Kitty keyboard protocol have used for navigation keys since xterm, so
// ParseKey's parseEscapeSequence falls back to this table whenever
// ParseKittyKey declines a sequence. The table itself is fixed by the
// terminals coreedit runs inside of, not by anything the editor decides,
// so there's nothing here to generalize beyond keeping it a flat literal
// lookup next to the Kitty parser it backstops.

package key

// legacySequences maps standard CSI and SS3 escape sequences to Key values.
// SS3 forms appear when a terminal is in "application cursor keys" mode;
// CSI forms are what most terminals send by default.
var legacySequences = map[string]Key{
	// CSI sequences
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[5~": {Type: KeyPageUp},
	"\x1b[6~": {Type: KeyPageDown},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[Z":  {Type: KeyBackTab, Shift: true},

	// SS3 variants (sent by some terminals in application mode)
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}
