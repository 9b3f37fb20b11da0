package writebuf

import (
	"fmt"
)

func Example() {
	// write to buffer
	buf := FromString(10, "123")
	fmt.Fprintf(buf, "%s", "456")
	fmt.Fprintf(buf, "%d", 789)
	buf.WriteString("0")
	if _, err := buf.WriteString("E"); err != nil {
		fmt.Println(err)
	}

	// convert to ASCII string
	fmt.Println(buf.ASCIILossy())
	// Output:
	// writebuf: buffer overflow
	// 1234567890
}

func ExampleBuffer_Text() {
	buf := From(8, []byte("héllo"))
	s, err := buf.Text()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	// Output:
	// héllo
}

func ExampleBuffer_ASCIILossy() {
	buf := From(8, []byte("héllo"))
	fmt.Println(buf.ASCIILossy())
	// Output:
	// h~~llo
}
