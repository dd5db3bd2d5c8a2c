// internal/system/utils.go
package system

// clearTail zeroes the pointers past n after an in-place filter so removed
// entities can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
