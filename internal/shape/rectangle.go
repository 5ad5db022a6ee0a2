// Package shape holds the rectangle area example.
package shape

type Rectangle struct {
	Width  uint32
	Height uint32
}

// Area returns Width × Height without overflowing.
func (r Rectangle) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}
