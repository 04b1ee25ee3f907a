package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_CustodyRecorded(t *testing.T) {
	n := CustodyRecorded{
		OwnerFirstName:    "Ada",
		PhoneBrand:        "Acme",
		PhoneModel:        "X1",
		PhoneImei:         "000111",
		DateAcquired:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		OwnershipRecordID: 7,
	}

	body, err := Render(TemplateCustodyRecorded, n.Data())
	require.NoError(t, err)

	assert.Contains(t, body, "Hello Ada")
	assert.Contains(t, body, "Acme X1")
	assert.Contains(t, body, "000111")
	assert.Contains(t, body, "2024-01-01")
	assert.Contains(t, body, "#7")
}

func TestRender_EscapesHTML(t *testing.T) {
	data := map[string]string{"OwnerFirstName": "<script>"}

	body, err := Render(TemplateCustodyRecorded, data)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}

func TestPreviewData_CoversTemplates(t *testing.T) {
	for name, data := range PreviewData {
		_, err := Render(name, data)
		assert.NoError(t, err, "template %s", name)
	}
}
