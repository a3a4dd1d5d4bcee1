package forecasting

import "time"

// DaysInMonth usa o calendário real (28 a 31 dias)
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DeliveryDays conta os dias ativos do mês a partir da data de início.
// Sem data de início o mês inteiro é considerado ativo.
func DeliveryDays(startingDate *time.Time, year, month int) int {
	days := DaysInMonth(year, month)
	if startingDate == nil {
		return days
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month), days, 0, 0, 0, 0, time.UTC)
	start := dateOnly(*startingDate)

	switch {
	case start.After(last):
		return 0
	case !start.After(first):
		return days
	default:
		return days - start.Day() + 1
	}
}

// DeliveryDaysInWindow aplica também a data de término (inclusiva)
func DeliveryDaysInWindow(startingDate, endDate *time.Time, year, month int) int {
	days := DeliveryDays(startingDate, year, month)
	if endDate == nil || days == 0 {
		return days
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month), DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	end := dateOnly(*endDate)

	if end.Before(first) {
		return 0
	}
	if !end.Before(last) {
		return days
	}

	from := first
	if startingDate != nil {
		if start := dateOnly(*startingDate); start.After(first) {
			from = start
		}
	}
	if end.Before(from) {
		return 0
	}

	return end.Day() - from.Day() + 1
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
