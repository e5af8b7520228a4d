package input

import "strconv"

// ParseMouseSGR decodes an SGR mouse-reporting sequence of the form
// "\x1b[<b;x;yM" (press) or "\x1b[<b;x;ym" (release) per §4.10. It returns
// the decoded event, the number of bytes consumed from data, and whether a
// complete sequence was found at the start of data.
func ParseMouseSGR(data string) (MouseEvent, int, bool) {
	const prefix = "\x1b[<"
	if len(data) < len(prefix) || data[:len(prefix)] != prefix {
		return MouseEvent{}, 0, false
	}
	rest := data[len(prefix):]
	end := -1
	var final byte
	for i := 0; i < len(rest); i++ {
		if rest[i] == 'M' || rest[i] == 'm' {
			end = i
			final = rest[i]
			break
		}
	}
	if end < 0 {
		return MouseEvent{}, 0, false
	}
	fields := rest[:end]
	parts := splitThree(fields)
	if parts == nil {
		return MouseEvent{}, 0, false
	}
	code, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return MouseEvent{}, 0, false
	}

	ev := MouseEvent{
		Y:     y - 1,
		X:     x - 1,
		Shift: code&4 != 0,
		Alt:   code&8 != 0,
		Ctrl:  code&16 != 0,
	}
	btnBits := code &^ (4 | 8 | 16)
	switch {
	case btnBits == 64:
		ev.Button = MouseWheelUp
	case btnBits == 65:
		ev.Button = MouseWheelDown
	case btnBits&32 != 0:
		ev.Button = MouseMove
	case final == 'm':
		ev.Button = MouseRelease
	case btnBits&3 == 0:
		ev.Button = MouseLeft
	case btnBits&3 == 1:
		ev.Button = MouseMiddle
	case btnBits&3 == 2:
		ev.Button = MouseRight
	default:
		ev.Button = MouseRelease
	}

	consumed := len(prefix) + end + 1
	return ev, consumed, true
}

func splitThree(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	if len(parts) != 3 {
		return nil
	}
	return parts
}
