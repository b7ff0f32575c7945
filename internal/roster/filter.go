package roster

import (
	"strconv"
	"strings"
)

// OwnerFilterAll is the sentinel owner-filter value meaning "no filtering".
// An empty string behaves the same.
const OwnerFilterAll = "all"

// FilterRows narrows reconciled rows for display. owner keeps only rows whose
// owner id equals the selection (after id normalization); query does a
// case-insensitive substring match against the string form of every column
// and keeps a row when any column matches. The input slice is not mutated.
func FilterRows(rows []ReconciledRow, owner, query string) []ReconciledRow {
	out := rows

	if owner != "" && !strings.EqualFold(owner, OwnerFilterAll) {
		wanted := NormalizeID(owner)
		filtered := make([]ReconciledRow, 0, len(out))
		for _, row := range out {
			if NormalizeID(row.OwningUserID) == wanted {
				filtered = append(filtered, row)
			}
		}
		out = filtered
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered := make([]ReconciledRow, 0, len(out))
		for _, row := range out {
			if rowMatches(row, q) {
				filtered = append(filtered, row)
			}
		}
		out = filtered
	}

	return out
}

func rowMatches(row ReconciledRow, loweredQuery string) bool {
	for _, v := range searchValues(row) {
		if strings.Contains(strings.ToLower(v), loweredQuery) {
			return true
		}
	}
	return false
}

// searchValues returns the string form of every displayed column, the same
// set of columns the UI renders.
func searchValues(row ReconciledRow) []string {
	return []string{
		strconv.FormatInt(row.PlayerID, 10),
		row.FirstName,
		row.LastName,
		row.OwningUserID,
		strconv.Itoa(row.Age),
		strconv.Itoa(row.AgeDays),
		strconv.Itoa(row.PlayerForm),
		row.StaminaSkill,
		row.DefenderSkill,
		row.PlaymakerSkill,
		row.WingerSkill,
		row.PassingSkill,
		row.ScorerSkill,
		row.SetPiecesSkill,
		strconv.Itoa(row.TeamTrainerSkill),
		strconv.Itoa(row.FormCoachLevels),
		row.ManagerNick,
		row.ContactStatus,
		row.ContactNotes,
	}
}
