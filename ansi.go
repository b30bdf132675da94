package axon

import (
	"strconv"
	"strings"
)

const (
	// ESC is the ANSI escape character.
	ESC = "\x1b"

	// sgrReset clears all colors and attributes.
	sgrReset = ESC + "[0m"
)

// sgrCell emits the combined foreground/background 256-color sequence
// for one half-block cell.
func sgrCell(fg, bg uint8) string {
	var sb strings.Builder
	sb.WriteString(ESC)
	sb.WriteString("[38;5;")
	sb.WriteString(strconv.Itoa(int(fg)))
	sb.WriteString(";48;5;")
	sb.WriteString(strconv.Itoa(int(bg)))
	sb.WriteByte('m')
	return sb.String()
}

// sgrFg emits a foreground-only 256-color sequence, used for the
// unpaired final row of an odd-height grid.
func sgrFg(idx uint8) string {
	return ESC + "[38;5;" + strconv.Itoa(int(idx)) + "m"
}

// sgrBg emits a background-only 256-color sequence.
func sgrBg(idx uint8) string {
	return ESC + "[48;5;" + strconv.Itoa(int(idx)) + "m"
}

// CompressANSI rewrites rendered output so that runs of cells sharing
// the same foreground and background colors are covered by a single
// escape sequence. The visible result is identical; the byte count
// drops sharply on images with flat color regions.
func CompressANSI(ansi string) string {
	var out strings.Builder
	lines := strings.Split(ansi, "\n")
	for i, line := range lines {
		if i > 0 {
			out.WriteByte('\n')
		}
		compressLine(line, &out)
	}
	return out.String()
}

// compressLine re-emits one line, merging adjacent segments whose color
// codes match. Segments are the "code m glyphs" units produced by the
// compositor; anything before the first escape passes through untouched.
func compressLine(line string, out *strings.Builder) {
	segments := strings.Split(line, ESC+"[")
	var currentCode string
	var run strings.Builder

	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(ESC)
		out.WriteByte('[')
		out.WriteString(currentCode)
		out.WriteByte('m')
		out.WriteString(run.String())
		run.Reset()
	}

	for i, segment := range segments {
		if i == 0 {
			out.WriteString(segment)
			continue
		}
		code, text, ok := strings.Cut(segment, "m")
		if !ok {
			flush()
			out.WriteString(ESC)
			out.WriteByte('[')
			out.WriteString(segment)
			continue
		}
		if code == "0" {
			// Reset always terminates the current run.
			flush()
			currentCode = ""
			out.WriteString(sgrReset)
			out.WriteString(text)
			continue
		}
		if code != currentCode {
			flush()
			currentCode = code
		}
		run.WriteString(text)
	}
	flush()
}
