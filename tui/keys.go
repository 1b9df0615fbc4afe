package tui

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"pkt.systems/termfolio/schema"
)

// ReadKeys decodes raw terminal input into keys until r fails. out is closed
// on return.
func ReadKeys(r io.Reader, out chan<- schema.Key) {
	defer close(out)
	br := bufio.NewReader(r)
	lastWasCR := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		if lastWasCR {
			lastWasCR = false
			if b == '\n' {
				continue
			}
		}
		switch b {
		case 0x1b:
			readEscape(br, out)
		case '\r':
			out <- schema.Key{Kind: schema.KeyEnter}
			lastWasCR = true
		case '\n':
			out <- schema.Key{Kind: schema.KeyEnter}
		case 0x7f, 0x08:
			out <- schema.Key{Kind: schema.KeyBackspace}
		case 0x01:
			out <- schema.Key{Kind: schema.KeyCtrlA}
		case 0x03:
			out <- schema.Key{Kind: schema.KeyCtrlC}
		case 0x04:
			out <- schema.Key{Kind: schema.KeyCtrlD}
		case 0x05:
			out <- schema.Key{Kind: schema.KeyCtrlE}
		case 0x09:
			out <- schema.Key{Kind: schema.KeyTab}
		case 0x0b:
			out <- schema.Key{Kind: schema.KeyCtrlK}
		case 0x0c:
			out <- schema.Key{Kind: schema.KeyCtrlL}
		case 0x15:
			out <- schema.Key{Kind: schema.KeyCtrlU}
		case 0x17:
			out <- schema.Key{Kind: schema.KeyCtrlW}
		default:
			if b < 0x20 {
				continue
			}
			if b < utf8.RuneSelf {
				out <- schema.RuneKey(rune(b))
				continue
			}
			_ = br.UnreadByte()
			rn, _, err := br.ReadRune()
			if err != nil {
				return
			}
			if rn == utf8.RuneError {
				continue
			}
			out <- schema.RuneKey(rn)
		}
	}
}

func readEscape(br *bufio.Reader, out chan<- schema.Key) {
	b, err := br.ReadByte()
	if err != nil {
		return
	}
	switch b {
	case '[':
		readCSI(br, out)
	case 'O':
		readSS3(br, out)
	case 'b', 'B':
		out <- schema.Key{Kind: schema.KeyAltB}
	case 'f', 'F':
		out <- schema.Key{Kind: schema.KeyAltF}
	}
}

func readCSI(br *bufio.Reader, out chan<- schema.Key) {
	seq := []byte{}
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		seq = append(seq, b)
		if b == '~' || unicode.IsLetter(rune(b)) {
			break
		}
		if len(seq) > 8 {
			return
		}
	}
	switch string(seq) {
	case "A":
		out <- schema.Key{Kind: schema.KeyUp}
	case "B":
		out <- schema.Key{Kind: schema.KeyDown}
	case "C":
		out <- schema.Key{Kind: schema.KeyRight}
	case "D":
		out <- schema.Key{Kind: schema.KeyLeft}
	case "H", "1~", "7~":
		out <- schema.Key{Kind: schema.KeyHome}
	case "F", "4~", "8~":
		out <- schema.Key{Kind: schema.KeyEnd}
	case "5~":
		out <- schema.Key{Kind: schema.KeyPageUp}
	case "6~":
		out <- schema.Key{Kind: schema.KeyPageDown}
	case "3~":
		out <- schema.Key{Kind: schema.KeyDelete}
	case "1;3D", "1;5D":
		out <- schema.Key{Kind: schema.KeyAltB}
	case "1;3C", "1;5C":
		out <- schema.Key{Kind: schema.KeyAltF}
	}
}

func readSS3(br *bufio.Reader, out chan<- schema.Key) {
	b, err := br.ReadByte()
	if err != nil {
		return
	}
	switch b {
	case 'A':
		out <- schema.Key{Kind: schema.KeyUp}
	case 'B':
		out <- schema.Key{Kind: schema.KeyDown}
	case 'C':
		out <- schema.Key{Kind: schema.KeyRight}
	case 'D':
		out <- schema.Key{Kind: schema.KeyLeft}
	case 'H':
		out <- schema.Key{Kind: schema.KeyHome}
	case 'F':
		out <- schema.Key{Kind: schema.KeyEnd}
	}
}
