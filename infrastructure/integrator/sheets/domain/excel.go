package sheetsdomain

import (
	"math"
	"time"
)

// excelEpoch é o dia zero das datas seriais do Excel/Sheets
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const secondsPerDay = 24 * 60 * 60

// ExcelDate converte uma data no número serial de dias desde 1899-12-30
func ExcelDate(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(excelEpoch).Hours() / 24)
}

// ExcelSerial inclui a fração do dia, usado para timestamps
func ExcelSerial(t time.Time) float64 {
	t = t.UTC()
	seconds := t.Sub(excelEpoch).Seconds()
	return math.Round(seconds/secondsPerDay*1e6) / 1e6
}

// FromExcelSerial converte um serial (com ou sem fração) de volta em horário UTC
func FromExcelSerial(serial float64) time.Time {
	days := math.Floor(serial)
	seconds := math.Round((serial - days) * secondsPerDay)
	return excelEpoch.AddDate(0, 0, int(days)).Add(time.Duration(seconds) * time.Second)
}
