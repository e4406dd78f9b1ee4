package fixedwidth

import "strings"

// Kind selects how a field value is fitted into its slot.
type Kind int

const (
	Numeric   Kind = iota // right-justified, zero-filled
	Text                  // left-justified, space-filled
	UpperText             // uppercased, then fitted like Text
	Literal               // constant Value, ignores the record
	Raw                   // copied as-is, variable width
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	case UpperText:
		return "upper"
	case Literal:
		return "literal"
	case Raw:
		return "raw"
	}
	return "unknown"
}

// Field is one positional slot of a record layout.
type Field struct {
	Name  string
	Width int
	Kind  Kind
	Value string // Literal only
}

// Layout is an ordered list of fields that together make one record line.
type Layout []Field

// Width is the fixed character width of a rendered line. Raw fields are
// variable and contribute nothing.
func (l Layout) Width() int {
	w := 0
	for _, f := range l {
		w += f.Span()
	}
	return w
}

// Span is the number of characters f occupies; 0 for Raw.
func (f Field) Span() int {
	switch f.Kind {
	case Raw:
		return 0
	case Literal:
		return len(f.Value)
	}
	return f.Width
}

// Render encodes values, keyed by field name, into one line without a line
// terminator. Names absent from values render as the empty string.
func (l Layout) Render(values map[string]string) string {
	var b strings.Builder
	b.Grow(l.Width())
	for _, f := range l {
		b.WriteString(f.render(values[f.Name]))
	}
	return b.String()
}

func (f Field) render(v string) string {
	switch f.Kind {
	case Numeric:
		return PadNumeric(v, f.Width)
	case Text:
		return PadText(v, f.Width)
	case UpperText:
		return PadText(Upper(v), f.Width)
	case Literal:
		return f.Value
	default:
		return v
	}
}

// Offsets returns the 1-based start position of each field, in layout order.
// Positions after a Raw field assume it rendered empty.
func (l Layout) Offsets() []int {
	out := make([]int, len(l))
	pos := 1
	for i, f := range l {
		out[i] = pos
		pos += f.Span()
	}
	return out
}
