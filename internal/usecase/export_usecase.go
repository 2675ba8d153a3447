package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"candidate-service/internal/domain"
	"candidate-service/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
)

var exportHeaders = map[string]string{
	"id":            "ID",
	"name":          "NAME",
	"date_of_birth": "DATE OF BIRTH",
	"address":       "ADDRESS",
	"town":          "TOWN",
	"country":       "COUNTRY",
	"post_code":     "POST CODE",
	"phone_mobile":  "MOBILE PHONE",
	"phone_home":    "HOME PHONE",
	"phone_work":    "WORK PHONE",
	"skills":        "SKILLS",
}

type exportUsecase struct {
	candidateRepo domain.CandidateRepository
	skillRepo     domain.SkillRepository
	now           func() time.Time
}

func NewExportUsecase(candidateRepo domain.CandidateRepository, skillRepo domain.SkillRepository) domain.ExportUsecase {
	return &exportUsecase{candidateRepo: candidateRepo, skillRepo: skillRepo, now: time.Now}
}

// exportRow is one candidate with its skill names resolved.
type exportRow struct {
	candidate domain.Candidate
	skills    []string
}

func (u *exportUsecase) ExportCandidates(ctx context.Context, req domain.ExportRequest) (*domain.ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = domain.ExportFormatXLSX
	}
	if format != domain.ExportFormatXLSX && format != domain.ExportFormatCSV {
		return nil, apperror.BadRequestWrap(fmt.Sprintf("Unsupported export format: %s", req.Format), domain.ErrInvalidInput)
	}

	columns, err := normalizeColumns(req.Columns)
	if err != nil {
		return nil, err
	}

	rows, err := u.loadRows(ctx, columns)
	if err != nil {
		return nil, err
	}

	stamp := u.now().UTC().Format("20060102_150405")
	if format == domain.ExportFormatCSV {
		data, err := writeCSV(rows, columns)
		if err != nil {
			return nil, internalError(ctx, "write csv export", err)
		}
		return &domain.ExportFile{Filename: "candidates_" + stamp + ".csv", ContentType: contentTypeCSV, Data: data}, nil
	}

	data, err := writeXLSX(rows, columns)
	if err != nil {
		return nil, internalError(ctx, "write xlsx export", err)
	}
	return &domain.ExportFile{Filename: "candidates_" + stamp + ".xlsx", ContentType: contentTypeXLSX, Data: data}, nil
}

// normalizeColumns trims, de-duplicates and validates the requested columns.
func normalizeColumns(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return domain.ExportableColumns, nil
	}

	valid := make(map[string]bool, len(domain.ExportableColumns))
	for _, col := range domain.ExportableColumns {
		valid[col] = true
	}

	seen := make(map[string]bool, len(requested))
	out := make([]string, 0, len(requested))
	for _, col := range requested {
		col = strings.ToLower(strings.TrimSpace(col))
		if col == "" || seen[col] {
			continue
		}
		if !valid[col] {
			return nil, apperror.BadRequestWrap(fmt.Sprintf("Invalid export column: %s", col), domain.ErrInvalidInput)
		}
		seen[col] = true
		out = append(out, col)
	}
	if len(out) == 0 {
		return domain.ExportableColumns, nil
	}
	return out, nil
}

func (u *exportUsecase) loadRows(ctx context.Context, columns []string) ([]exportRow, error) {
	candidates, err := u.candidateRepo.GetAllCandidates(ctx)
	if err != nil {
		return nil, internalError(ctx, "list candidates for export", err)
	}

	withSkills := false
	for _, col := range columns {
		if col == "skills" {
			withSkills = true
			break
		}
	}

	rows := make([]exportRow, 0, len(candidates))
	for _, c := range candidates {
		row := exportRow{candidate: c}
		if withSkills {
			skills, err := u.skillRepo.GetSkillsByCandidateID(ctx, c.ID)
			if err != nil {
				return nil, internalError(ctx, "list skills for export", err)
			}
			for _, s := range skills {
				row.skills = append(row.skills, s.SkillName)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func exportValue(r exportRow, col string) string {
	c := &r.candidate
	switch col {
	case "id":
		return strconv.FormatInt(c.ID, 10)
	case "name":
		return candidateName(c.FirstName, c.Surname)
	case "date_of_birth":
		if c.DateOfBirth.IsZero() {
			return ""
		}
		return c.DateOfBirth.Format(domain.DateLayout)
	case "address":
		return deref(c.Address)
	case "town":
		return deref(c.Town)
	case "country":
		return deref(c.Country)
	case "post_code":
		return deref(c.PostCode)
	case "phone_mobile":
		return deref(c.PhoneMobile)
	case "phone_home":
		return deref(c.PhoneHome)
	case "phone_work":
		return deref(c.PhoneWork)
	case "skills":
		return strings.Join(r.skills, ", ")
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func writeCSV(rows []exportRow, columns []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = exportHeaders[col]
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	record := make([]string, len(columns))
	for _, r := range rows {
		for i, col := range columns {
			record[i] = exportValue(r, col)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeXLSX(rows []exportRow, columns []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Candidates"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, exportHeaders[col]); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return nil, err
	}

	for rowIdx, r := range rows {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			var value any = exportValue(r, col)
			if col == "id" {
				value = r.candidate.ID
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
