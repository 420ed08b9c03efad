//go:build !unix

package command

func isCrossDevice(err error) bool {
	return false
}
