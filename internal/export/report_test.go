package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runway-dev/runway/internal/model"
)

func TestNewReport(t *testing.T) {
	r := NewReport("March", dec("1000"), sample())

	assert.Equal(t, "March", r.Title)
	assert.Equal(t, SeriesName, r.Series)
	require.Len(t, r.Points, 3)
	assert.Equal(t, "3/3/2024", r.Points[1].Label)

	assert.Equal(t, 3, r.Summary.Days)
	assert.True(t, r.Summary.Opening.Equal(dec("1000")))
	assert.True(t, r.Summary.Final.Equal(dec("-25")))
	assert.True(t, r.Summary.Min.Equal(dec("-25")))
	assert.Equal(t, "2024-03-04", r.Summary.MinDate.String())
	require.NotNil(t, r.Summary.FirstNegative)
	assert.Equal(t, "2024-03-04", r.Summary.FirstNegative.String())
}

func TestNewReport_Empty(t *testing.T) {
	r := NewReport("", dec("5"), model.Projection{})
	assert.Empty(t, r.Points)
	assert.Nil(t, r.Summary.FirstNegative)
	assert.True(t, r.Summary.Final.IsZero())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewReport("March", dec("1000"), sample())))

	var got struct {
		Series string `json:"series"`
		Points []struct {
			Date    string `json:"date"`
			Label   string `json:"label"`
			Balance string `json:"balance"`
		} `json:"points"`
		Summary struct {
			MinDate       string `json:"min_date"`
			FirstNegative string `json:"first_negative"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "Primary Account", got.Series)
	require.Len(t, got.Points, 3)
	assert.Equal(t, "2024-03-03", got.Points[1].Date)
	assert.Equal(t, "850.5", got.Points[1].Balance)
	assert.Equal(t, "2024-03-04", got.Summary.FirstNegative)
}
