package roster

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pkruszek/scout-assistant/pkg/apperrors"
)

// Roster column allow-list, matching the game's export header names
// (case-sensitive). Columns outside this list are dropped; absent columns are
// tolerated and left at their zero value.
var rosterColumns = map[string]struct{}{
	"PlayerID":         {},
	"FirstName":        {},
	"LastName":         {},
	"OwningUserID":     {},
	"Age":              {},
	"AgeDays":          {},
	"PlayerForm":       {},
	"StaminaSkill":     {},
	"DefenderSkill":    {},
	"PlaymakerSkill":   {},
	"WingerSkill":      {},
	"PassingSkill":     {},
	"ScorerSkill":      {},
	"SetPiecesSkill":   {},
	"TeamTrainerSkill": {},
	"FormCoachLevels":  {},
}

// ParseRoster parses an uploaded roster file into player rows. The format is
// chosen by extension: .csv is semicolon-delimited text with malformed lines
// skipped, .xlsx is read from the first sheet. Anything unreadable returns an
// ImportError; the caller keeps whatever roster it held before.
func ParseRoster(filename string, r io.Reader) ([]Player, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		players, err := parseCSV(r)
		if err != nil {
			return nil, &apperrors.ImportError{Filename: filename, Err: err}
		}
		return players, nil
	case ".xlsx":
		players, err := parseXLSX(r)
		if err != nil {
			return nil, &apperrors.ImportError{Filename: filename, Err: err}
		}
		return players, nil
	default:
		return nil, &apperrors.ImportError{
			Filename: filename,
			Err:      errors.New("unsupported file type, expected .csv or .xlsx"),
		}
	}
}

func parseCSV(r io.Reader) ([]Player, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("could not read header row")
	}
	cols := projectHeader(header)

	var players []Player
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Malformed line; skip it and keep going.
				continue
			}
			return nil, err
		}
		if len(record) > len(header) {
			continue
		}
		players = append(players, buildPlayer(cols, record))
	}
	return players, nil
}

func parseXLSX(r io.Reader) ([]Player, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []Player{}, nil
	}

	cols := projectHeader(rows[0])
	players := make([]Player, 0, len(rows)-1)
	for _, record := range rows[1:] {
		players = append(players, buildPlayer(cols, record))
	}
	return players, nil
}

// projectHeader maps each allow-listed column present in the header to its
// index. The resulting schema is the intersection of present and expected
// columns; first occurrence wins on duplicates.
func projectHeader(header []string) map[string]int {
	cols := make(map[string]int)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, expected := rosterColumns[name]; !expected {
			continue
		}
		if _, seen := cols[name]; seen {
			continue
		}
		cols[name] = i
	}
	return cols
}

func buildPlayer(cols map[string]int, record []string) Player {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	return Player{
		PlayerID:         parseID(field("PlayerID")),
		FirstName:        field("FirstName"),
		LastName:         field("LastName"),
		OwningUserID:     field("OwningUserID"),
		Age:              parseCount(field("Age")),
		AgeDays:          parseCount(field("AgeDays")),
		PlayerForm:       parseCount(field("PlayerForm")),
		StaminaSkill:     field("StaminaSkill"),
		DefenderSkill:    field("DefenderSkill"),
		PlaymakerSkill:   field("PlaymakerSkill"),
		WingerSkill:      field("WingerSkill"),
		PassingSkill:     field("PassingSkill"),
		ScorerSkill:      field("ScorerSkill"),
		SetPiecesSkill:   field("SetPiecesSkill"),
		TeamTrainerSkill: parseCount(field("TeamTrainerSkill")),
		FormCoachLevels:  parseCount(field("FormCoachLevels")),
	}
}

// parseID reads a numeric id, accepting float surface forms like "471234.0"
// that spreadsheet exports produce. Unparseable input yields 0.
func parseID(raw string) int64 {
	if raw == "" {
		return 0
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) {
		return int64(f)
	}
	return 0
}

func parseCount(raw string) int {
	return int(parseID(raw))
}
