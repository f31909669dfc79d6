//go:build !unix && !windows

package organizer

func isCrossDevice(error) bool {
	return false
}
