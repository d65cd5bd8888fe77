package sys

// noDirs backs ConfDirs and DataDirs on every platform: there is no XDG
// hierarchy to probe, and probing paths that do not exist only costs stat calls.
func noDirs() []string {
	return []string{}
}
