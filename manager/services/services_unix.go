//go:build !windows
// +build !windows

package services

// There is no SCM outside windows; the detail view degrades to placeholders.
func GetServiceDetail(name string) Service {
	return Service{Name: name, Status: "unknown", StartType: "Unknown"}
}

func ServiceExists(name string) bool {
	return false
}
