// Package writebuf provides a fixed-capacity byte buffer for incremental text
// writes. The backing storage is allocated once at construction and never
// grows; a write that does not fit in the remaining space is rejected whole
// with ErrOverflow instead of growing or spilling, so overflow stays a
// recoverable condition for the caller. Contents read back either as
// validated UTF-8 or through a lossy byte-wise ASCII conversion.
package writebuf
