package disk

// MockByUUIDDir replaces the directory scanned for kernel UUID symlinks
// and returns a restore function. For use in tests.
func MockByUUIDDir(dir string) (restore func()) {
	old := byUUIDDir
	byUUIDDir = dir
	return func() {
		byUUIDDir = old
	}
}
