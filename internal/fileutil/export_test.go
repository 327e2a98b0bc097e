package fileutil

// SetRenameForTests swaps the rename primitive and returns a restore func.
func SetRenameForTests(fn func(oldpath, newpath string) error) func() {
	prev := rename
	rename = fn
	return func() { rename = prev }
}
