package xlsx

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"exam-results/internal/entities"

	"github.com/xuri/excelize/v2"
)

type column int

const (
	colRegNo column = iota
	colName
	colSubject
	colGrade
	colCredits
)

var headerAliases = map[string]column{
	"reg_no":              colRegNo,
	"regno":               colRegNo,
	"registration_no":     colRegNo,
	"registration_number": colRegNo,
	"name":                colName,
	"student_name":        colName,
	"subject_name":        colSubject,
	"subject":             colSubject,
	"grade":               colGrade,
	"credits":             colCredits,
	"credit":              colCredits,
}

var (
	headerSeparators = strings.NewReplacer(" ", "_", "-", "_", ".", "_")
	integralFloat    = regexp.MustCompile(`^(\d+)\.0+$`)
)

// NormalizeHeader maps a header cell to its canonical snake_case form.
func NormalizeHeader(h string) string {
	return headerSeparators.Replace(strings.ToLower(strings.TrimSpace(h)))
}

// NormalizeRegNo trims a registration number and drops a zero fraction left by numeric cells.
func NormalizeRegNo(v string) string {
	v = strings.TrimSpace(v)
	if m := integralFloat.FindStringSubmatch(v); m != nil {
		return m[1]
	}
	return v
}

// ReadTable parses the first sheet of an xlsx file into result rows.
func ReadTable(path string) ([]entities.ResultRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows %s: %w", path, err)
	}
	return parseRows(raw)
}

func parseRows(raw [][]string) ([]entities.ResultRow, error) {
	if len(raw) == 0 {
		return nil, errors.New("sheet is empty")
	}

	index := make(map[column]int)
	for i, h := range raw[0] {
		c, ok := headerAliases[NormalizeHeader(h)]
		if !ok {
			continue
		}
		if _, seen := index[c]; !seen {
			index[c] = i
		}
	}
	if _, ok := index[colRegNo]; !ok {
		return nil, errors.New("missing registration number column")
	}
	if _, ok := index[colGrade]; !ok {
		return nil, errors.New("missing grade column")
	}

	rows := make([]entities.ResultRow, 0, len(raw)-1)
	for _, line := range raw[1:] {
		cell := func(c column) string {
			i, ok := index[c]
			if !ok || i >= len(line) {
				return ""
			}
			return strings.TrimSpace(line[i])
		}

		regNo := NormalizeRegNo(cell(colRegNo))
		if regNo == "" {
			continue
		}

		var credits any
		if v := cell(colCredits); v != "" {
			credits = v
		}

		rows = append(rows, entities.ResultRow{
			RegistrationNo: regNo,
			Name:           cell(colName),
			SubjectName:    cell(colSubject),
			Grade:          cell(colGrade),
			Credits:        credits,
		})
	}
	return rows, nil
}
