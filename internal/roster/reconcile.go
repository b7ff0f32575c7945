package roster

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkruszek/scout-assistant/internal/contact"
)

// NormalizeID canonicalizes an owner/manager id for join comparisons.
// Numeric-looking ids compare equal regardless of surface form: "12345",
// " 12345 " and "12345.0" all normalize to "12345". Anything else is
// compared as the trimmed string.
func NormalizeID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(v, 10)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// Reconcile left-joins roster rows against the scout's contacts on
// owner id = manager id. Contacts are deduplicated first-seen per manager id,
// so each roster row picks up at most one contact. The output preserves the
// roster's length and order: rows are only enriched, never dropped or
// duplicated. Rows without a match get empty nick/notes and the
// "No contact" status.
func Reconcile(players []Player, contacts []contact.Contact) []ReconciledRow {
	byManager := make(map[string]contact.Contact, len(contacts))
	for _, ct := range contacts {
		id := NormalizeID(ct.ManagerID)
		if id == "" {
			continue
		}
		if _, seen := byManager[id]; !seen {
			byManager[id] = ct
		}
	}

	rows := make([]ReconciledRow, 0, len(players))
	for _, p := range players {
		row := ReconciledRow{
			Player:        p,
			ContactStatus: contact.StatusNoContact,
		}
		if owner := NormalizeID(p.OwningUserID); owner != "" {
			if ct, ok := byManager[owner]; ok {
				row.ManagerNick = ct.ManagerNick
				row.ContactNotes = ct.Notes
				if ct.Status != "" {
					row.ContactStatus = ct.Status
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
