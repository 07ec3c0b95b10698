package minefield

import "slices"

// SyncHints adds the minefield hints to tips, motd and help when enabled,
// and removes them otherwise. Nil list pointers are skipped.
// Idempotent: repeated calls with the same enabled state change nothing.
func SyncHints(enabled bool, tips, motd, help *[]string) {
	syncEntry(enabled, tips, HintTip)
	syncEntry(enabled, motd, HintMotd)
	syncEntry(enabled, help, HintHelp)
}

func syncEntry(enabled bool, list *[]string, entry string) {
	if list == nil {
		return
	}

	i := slices.Index(*list, entry)
	switch {
	case enabled && i < 0:
		*list = append(*list, entry)
	case !enabled && i >= 0:
		*list = slices.Delete(*list, i, i+1)
	}
}
