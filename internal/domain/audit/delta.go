package audit

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Delta renders a compact patch between an entry's old and new values.
// Coarse entries without field values produce an empty string.
func Delta(entry Entry) string {
	if entry.Field == "" || entry.OldValue == entry.NewValue {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(entry.OldValue, entry.NewValue, false)
	dmp.DiffCleanupSemantic(diffs)
	patches := dmp.PatchMake(entry.OldValue, diffs)
	return strings.TrimSpace(dmp.PatchToText(patches))
}
