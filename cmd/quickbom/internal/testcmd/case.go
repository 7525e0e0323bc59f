// Package testcmd runs quickbom commands in tests.
package testcmd

type Case struct {
	Name string
	Args []string
	Exit int
}
