package fleet

import (
	"fmt"
	"time"
)

// noteTimestampLayout prefixes each appended note entry.
const noteTimestampLayout = "2006-01-02 15:04"

// AppendNote adds a timestamp-prefixed entry to an existing notes log.
// Entries are separated by a "---" divider line; the first entry has none.
func AppendNote(existing, note string, now time.Time) string {
	entry := fmt.Sprintf("[%s]\n%s", now.Format(noteTimestampLayout), note)
	if existing == "" {
		return entry
	}
	return existing + "\n\n---\n" + entry
}
