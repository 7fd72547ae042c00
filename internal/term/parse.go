package term

import (
	"unicode/utf8"

	"github.com/grindlemire/webedit"
)

// Parse decodes buffered terminal bytes. Bytes that may start an incomplete
// escape or UTF-8 sequence are returned as rest and should be prepended to
// the next read.
func Parse(data []byte) (inputs []Input, rest []byte) {
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				inputs = append(inputs, KeyInput{Key: webedit.KeyEscape})
				i++
				continue
			}

			switch data[i+1] {
			case '[':
				if i+2 < len(data) && data[i+2] == '<' {
					m, consumed := parseMouseSGR(data[i:])
					if consumed > 0 {
						inputs = append(inputs, m)
						i += consumed
						continue
					}
					if incompleteSGR(data[i:]) {
						return inputs, data[i:]
					}
				}
				key, mod, consumed := parseCSISequence(data[i:])
				if consumed > 0 {
					if key != webedit.KeyNone {
						inputs = append(inputs, KeyInput{Key: key, Mod: mod})
					}
					i += consumed
					continue
				}
				inputs = append(inputs, KeyInput{Key: webedit.KeyEscape})
				i++
				continue

			case 'O':
				if i+2 < len(data) {
					if key := parseSS3(data[i+2]); key != webedit.KeyNone {
						inputs = append(inputs, KeyInput{Key: key})
						i += 3
						continue
					}
				}
				inputs = append(inputs, KeyInput{Key: webedit.KeyEscape})
				i++
				continue

			default:
				next := data[i+1]
				if next >= 0x20 && next < 0x7f {
					inputs = append(inputs, KeyInput{Key: webedit.KeyRune, Rune: rune(next), Mod: webedit.ModAlt})
					i += 2
					continue
				}
				inputs = append(inputs, KeyInput{Key: webedit.KeyEscape})
				i++
				continue
			}
		}

		if b < 0x20 {
			if key := controlToKey(b); key != webedit.KeyNone {
				inputs = append(inputs, KeyInput{Key: key})
			}
			i++
			continue
		}

		if b == 0x7f {
			inputs = append(inputs, KeyInput{Key: webedit.KeyBackspace})
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) {
			return inputs, data[i:]
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		inputs = append(inputs, KeyInput{Key: webedit.KeyRune, Rune: r})
		i += size
	}
	return inputs, nil
}

func controlToKey(b byte) webedit.Key {
	switch b {
	case 0x03:
		return webedit.KeyCtrlC
	case 0x08:
		return webedit.KeyBackspace
	case 0x09:
		return webedit.KeyTab
	case 0x0a, 0x0d:
		return webedit.KeyEnter
	default:
		return webedit.KeyNone
	}
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns (KeyNone, ModNone, 0) if parsing fails.
func parseCSISequence(data []byte) (webedit.Key, webedit.Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return webedit.KeyNone, webedit.ModNone, 0
	}

	var params []int
	current := 0
	hasParam := false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			current = current*10 + int(b-'0')
			hasParam = true
		case b == ';':
			params = append(params, current)
			current = 0
			hasParam = false
		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, current)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		default:
			return webedit.KeyNone, webedit.ModNone, 0
		}
	}
	return webedit.KeyNone, webedit.ModNone, 0
}

func parseCSI(params []int, final byte) (webedit.Key, webedit.Modifier) {
	mod := webedit.ModNone
	// xterm-style: CSI 1;mod X
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return webedit.KeyUp, mod
	case 'B':
		return webedit.KeyDown, mod
	case 'C':
		return webedit.KeyRight, mod
	case 'D':
		return webedit.KeyLeft, mod
	case 'H':
		return webedit.KeyHome, mod
	case 'F':
		return webedit.KeyEnd, mod
	case 'Z':
		return webedit.KeyTab, webedit.ModShift
	case '~':
		if len(params) == 0 {
			return webedit.KeyNone, webedit.ModNone
		}
		switch params[0] {
		case 1:
			return webedit.KeyHome, mod
		case 3:
			return webedit.KeyDelete, mod
		case 4:
			return webedit.KeyEnd, mod
		case 5:
			return webedit.KeyPageUp, mod
		case 6:
			return webedit.KeyPageDown, mod
		}
	}
	return webedit.KeyNone, webedit.ModNone
}

func parseSS3(b byte) webedit.Key {
	switch b {
	case 'A':
		return webedit.KeyUp
	case 'B':
		return webedit.KeyDown
	case 'C':
		return webedit.KeyRight
	case 'D':
		return webedit.KeyLeft
	case 'H':
		return webedit.KeyHome
	case 'F':
		return webedit.KeyEnd
	}
	return webedit.KeyNone
}

// decodeModifier decodes the xterm modifier parameter:
// 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func decodeModifier(param int) webedit.Modifier {
	if param <= 1 {
		return webedit.ModNone
	}
	flags := param - 1
	var mod webedit.Modifier
	if flags&1 != 0 {
		mod |= webedit.ModShift
	}
	if flags&2 != 0 {
		mod |= webedit.ModAlt
	}
	if flags&4 != 0 {
		mod |= webedit.ModCtrl
	}
	return mod
}

// parseMouseSGR parses an SGR-1006 mouse report:
// ESC [ < button ; x ; y M (press, drag) or m (release).
//
//	bits 0-1: button (0=left, 1=middle, 2=right, 3=none)
//	bit 2: shift
//	bit 3: meta/alt
//	bit 4: ctrl
//	bit 5: motion
//	bit 6: wheel (64=up, 65=down)
func parseMouseSGR(data []byte) (MouseInput, int) {
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return MouseInput{}, 0
	}

	var fields [3]int
	stage := 0
	for i := 3; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			fields[stage] = fields[stage]*10 + int(b-'0')
		case b == ';':
			stage++
			if stage > 2 {
				return MouseInput{}, 0
			}
		case b == 'M' || b == 'm':
			if stage != 2 {
				return MouseInput{}, 0
			}
			return decodeSGR(fields[0], fields[1], fields[2], b == 'm'), i + 1
		default:
			return MouseInput{}, 0
		}
	}
	return MouseInput{}, 0
}

func decodeSGR(button, x, y int, release bool) MouseInput {
	m := MouseInput{X: x - 1, Y: y - 1}
	if button&4 != 0 {
		m.Mod |= webedit.ModShift
	}
	if button&8 != 0 {
		m.Mod |= webedit.ModAlt
	}
	if button&16 != 0 {
		m.Mod |= webedit.ModCtrl
	}

	if button&64 != 0 {
		m.Button = ButtonWheelUp
		if button&1 != 0 {
			m.Button = ButtonWheelDown
		}
		return m
	}

	m.Button = [...]Button{ButtonLeft, ButtonMiddle, ButtonRight, ButtonNone}[button&3]
	switch {
	case button&32 != 0:
		m.Action = ActionDrag
	case release:
		m.Action = ActionRelease
	default:
		m.Action = ActionPress
	}
	return m
}

// incompleteSGR reports whether data could still become a valid SGR mouse
// report once more bytes arrive.
func incompleteSGR(data []byte) bool {
	if len(data) > 32 {
		return false
	}
	for _, b := range data[3:] {
		if (b < '0' || b > '9') && b != ';' {
			return false
		}
	}
	return true
}
