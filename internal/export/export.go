// Package export renders a form's submissions as a spreadsheet.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ctc-webbase/internal/models"
)

const sheetName = "Submissions"

var leadingHeaders = []string{"Submitted At", "Name", "Email"}
var trailingHeaders = []string{"Referred By", "Referral Code", "Shortlisted", "Checked In"}

// Submissions writes one row per submission, one column per form field in
// schema order, framed by submitter and referral columns.
func Submissions(w io.Writer, form *models.Form, rows []models.SubmissionWithUser, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headers := Headers(form)
	if err := setRow(f, 1, toAny(headers)); err != nil {
		return err
	}

	for i, s := range rows {
		if err := setRow(f, i+2, Row(form, s, loc)); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

// Headers is the header row for form.
func Headers(form *models.Form) []string {
	out := make([]string, 0, len(leadingHeaders)+len(form.Fields)+len(trailingHeaders))
	out = append(out, leadingHeaders...)
	for _, fd := range form.Fields {
		out = append(out, fd.Label)
	}
	return append(out, trailingHeaders...)
}

// Row is the spreadsheet row for one submission.
func Row(form *models.Form, s models.SubmissionWithUser, loc *time.Location) []any {
	answers := make(map[string]any, len(s.Answers))
	for _, a := range s.Answers {
		answers[a.FieldID] = a.Value
	}

	row := []any{s.CreatedAt.In(loc).Format("2006-01-02 15:04"), s.UserName, s.UserEmail}
	for _, fd := range form.Fields {
		row = append(row, CellValue(answers[fd.ID]))
	}
	referredBy := s.ReferredByName
	if referredBy == "" {
		referredBy = s.ReferredBy
	}
	if referredBy == "" {
		referredBy = models.NoReferral
	}
	return append(row, referredBy, s.ReferralCode, yesNo(s.Shortlisted), yesNo(s.CheckedIn))
}

// CellValue flattens a stored answer into something a cell can hold.
func CellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		return yesNo(x)
	case []string:
		return strings.Join(x, ", ")
	case bson.A:
		return CellValue([]any(x))
	case bson.DateTime:
		return x.Time().UTC().Format(cellTimeLayout)
	case time.Time:
		return x.UTC().Format(cellTimeLayout)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ", ")
	case string, float64, int32, int64, int:
		return x
	default:
		return fmt.Sprint(x)
	}
}

const cellTimeLayout = "2006-01-02 15:04"

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
