package format

// Writer joins output lines with a fixed line break.
type Writer struct {
	buf       []byte
	lineBreak string
	lines     int
}

// NewWriter creates a Writer; size is a capacity hint in bytes.
func NewWriter(lineBreak string, size int) *Writer {
	return &Writer{buf: make([]byte, 0, size), lineBreak: lineBreak}
}

// WriteLine appends prefix and text as the next line.
func (w *Writer) WriteLine(prefix, text string) {
	if w.lines > 0 {
		w.buf = append(w.buf, w.lineBreak...)
	}
	w.buf = append(w.buf, prefix...)
	w.buf = append(w.buf, text...)
	w.lines++
}

// Lines returns the number of lines written.
func (w *Writer) Lines() int {
	return w.lines
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// String returns the accumulated output.
func (w *Writer) String() string {
	return string(w.buf)
}
