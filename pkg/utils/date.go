package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate converte "YYYY-MM-DD" em data. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// FormatDate devolve "" para datas nulas
func FormatDate(date *time.Time) string {
	if date == nil {
		return ""
	}

	return date.Format(DateLayout)
}
