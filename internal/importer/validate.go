package importer

import (
	"strings"

	"github.com/fairental/fleet/internal/fleet"
)

// Admissible reports whether a normalized draft qualifies for bulk insert:
// the renter status must equal "active" (case-insensitively) and the
// identifying fields plus the insurance renewal date must all be present.
func Admissible(d fleet.Draft) bool {
	if !strings.EqualFold(strings.TrimSpace(d.RenterStatus), "active") {
		return false
	}
	return d.Make != "" &&
		d.Model != "" &&
		d.Year != 0 &&
		d.LicensePlate != "" &&
		d.VIN != "" &&
		d.InsuranceRenewalDate != ""
}

// FilterAdmissible drops inadmissible drafts from the batch. Failures are
// silent per row; an empty result is the caller's signal to report that no
// valid active vehicles were found, which is a distinct condition from a
// file that failed to parse at all.
func FilterAdmissible(drafts []fleet.Draft) []fleet.Draft {
	out := make([]fleet.Draft, 0, len(drafts))
	for _, d := range drafts {
		if Admissible(d) {
			out = append(out, d)
		}
	}
	return out
}
