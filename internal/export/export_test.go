package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ctc-webbase/internal/models"
)

func TestSubmissionsWorkbook(t *testing.T) {
	form := &models.Form{
		ID: bson.NewObjectID(),
		Fields: []models.Field{
			{ID: "name", Label: "Full name", Type: models.FieldText},
			{ID: "langs", Label: "Languages", Type: models.FieldCheckboxMulti},
			{ID: "agree", Label: "Agree", Type: models.FieldCheckboxSingle},
		},
	}
	created := time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)
	rows := []models.SubmissionWithUser{
		{
			Submission: models.Submission{
				Answers: []models.Answer{
					{FieldID: "langs", Value: bson.A{"go", "rust"}},
					{FieldID: "name", Value: "Bob"},
					{FieldID: "agree", Value: true},
				},
				Referral:  models.Referral{ReferredBy: "T1", ReferredByName: "Alice", ReferralCode: "abc"},
				CreatedAt: created,
			},
			UserName:  "Bob",
			UserEmail: "bob@example.com",
		},
		{
			Submission: models.Submission{Referral: models.Referral{ReferredBy: models.NoReferral}, CreatedAt: created},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Submissions(&buf, form, rows, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Submitted At", "Name", "Email", "Full name", "Languages", "Agree", "Referred By", "Referral Code", "Shortlisted", "Checked In"}, got[0])
	assert.Equal(t, []string{"2025-01-02 03:04", "Bob", "bob@example.com", "Bob", "go, rust", "Yes", "Alice", "abc", "No", "No"}, got[1])
	assert.Equal(t, "none", got[2][6])
}

func TestCellValue(t *testing.T) {
	assert.Equal(t, "", CellValue(nil))
	assert.Equal(t, "No", CellValue(false))
	assert.Equal(t, "a, b", CellValue([]string{"a", "b"}))
	assert.Equal(t, 3.5, CellValue(3.5))

	at := time.Date(2025, 3, 4, 5, 6, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-04 05:06", CellValue(at))
	assert.Equal(t, "2025-03-04 05:06", CellValue(bson.NewDateTimeFromTime(at)))
}
