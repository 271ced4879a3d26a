//go:build !windows
// +build !windows

package manager

import "fmt"

func WarnNotElevated(version string) {
	fmt.Println("[warn] this program needs administrator rights to control the license services")
}
