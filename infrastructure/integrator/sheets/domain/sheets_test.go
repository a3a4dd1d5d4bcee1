package sheetsdomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

func TestExcelDate(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected int
	}{
		{time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 45658},
		{time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), 45748},
		{time.Date(2025, time.April, 1, 22, 30, 0, 0, time.UTC), 45748},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format(time.RFC3339), func(t *testing.T) {
			assert.Equal(t, tt.expected, ExcelDate(tt.date))
		})
	}
}

func TestExcelSerialRoundTrip(t *testing.T) {
	ts := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

	serial := ExcelSerial(ts)
	assert.Equal(t, 45748.5, serial)
	assert.Equal(t, ts, FromExcelSerial(serial))

	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), FromExcelSerial(45748))
}

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		letter   string
		expected int
		wantErr  bool
	}{
		{"A", 0, false},
		{"x", 23, false},
		{"Z", 25, false},
		{"AA", 26, false},
		{"AZ", 51, false},
		{"", 0, true},
		{"A1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			index, err := ColumnIndex(tt.letter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, index)
		})
	}
}

func TestColumnsLayout(t *testing.T) {
	assert.Equal(t, IDColumn, Columns[0].Letter)
	assert.Equal(t, "id", Columns[0].Field)
	assert.Equal(t, LastColumn, Columns[len(Columns)-1].Letter)

	seen := map[string]bool{}
	for i, col := range Columns {
		index, err := ColumnIndex(col.Letter)
		require.NoError(t, err)
		assert.Equal(t, i, index, col.Field)
		assert.False(t, seen[col.Field], col.Field)
		seen[col.Field] = true
	}
}

func TestA1Range(t *testing.T) {
	assert.Equal(t, "'Pipeline'!A:A", A1Range("Pipeline", "A:A"))
	assert.Equal(t, "'Bob''s deals'!B2", A1Range("Bob's deals", "B2"))
}

func TestBuildRow(t *testing.T) {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	maxGross := 3000.0
	fy, fq := 2025, 1

	p := &domain.Pipeline{
		ID:              "PL-1",
		Title:           "Campanha",
		ClientName:      "Acme",
		Status:          domain.StatusWon,
		ProgressPercent: 100,
		MaxGross:        &maxGross,
		StartingDate:    &start,
		FiscalYear:      &fy,
		FiscalQuarter:   &fq,
		QGross:          9100,
		QNetRev:         4550,
		MonthlyForecasts: []*domain.MonthlyForecast{
			{Year: 2025, Month: 4, GrossRevenue: 3000, NetRevenue: 1500},
			{Year: 2025, Month: 5, GrossRevenue: 3100, NetRevenue: 1550},
			{Year: 2025, Month: 6, GrossRevenue: 3000, NetRevenue: 1500},
		},
	}

	row, err := BuildRow(p)
	require.NoError(t, err)
	require.Len(t, row, 24)

	assert.Equal(t, "PL-1", row[0])
	assert.Equal(t, "[A]", row[3])
	assert.Equal(t, "", row[5])
	assert.Equal(t, 3000.0, row[7])
	assert.Equal(t, 45748, row[11])
	assert.Equal(t, "", row[12])
	assert.Equal(t, 2025, row[13])
	assert.Equal(t, 3100.0, row[17])
	assert.Equal(t, 1550.0, row[18])
	assert.Equal(t, 9100.0, row[21])
	assert.Equal(t, "", row[23])
}

func TestBuildValuesWithoutForecasts(t *testing.T) {
	values := BuildValues(&domain.Pipeline{ID: "PL-2"})

	assert.Equal(t, "", values["month1_gross"])
	assert.Equal(t, "", values["month3_net"])
	assert.Equal(t, "", values["fiscal_year"])
	assert.Len(t, Headers(), len(Columns))
}
