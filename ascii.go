package writebuf

import "unicode/utf8"

// asciiSubstitute replaces any byte outside the ASCII range during lossy
// conversion.
const asciiSubstitute = '~'

// Text returns the buffer contents as a string if they form well-formed
// UTF-8, and ErrInvalidUTF8 otherwise. The buffer is not modified either way
// and remains usable for further writes or for ASCIILossy.
func (b *Buffer) Text() (string, error) {
	if !utf8.Valid(b.buf) {
		return "", ErrInvalidUTF8
	}
	return string(b.buf), nil
}

// ASCIILossy converts the contents to an ASCII string, replacing every byte
// >= 0x80 with '~'. The conversion is byte-wise, not codepoint-wise: each
// byte of a multi-byte UTF-8 sequence is substituted independently, so the
// output always has exactly Len characters. It never fails.
func (b *Buffer) ASCIILossy() string {
	out := make([]byte, len(b.buf))
	for i, c := range b.buf {
		if c >= 0x80 {
			out[i] = asciiSubstitute
		} else {
			out[i] = c
		}
	}
	return string(out)
}

// String implements fmt.Stringer over the raw bytes without validation.
func (b *Buffer) String() string { return string(b.buf) }
