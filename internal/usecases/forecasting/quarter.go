package forecasting

import "time"

// fiscalYearStartMonth: o ano fiscal começa em abril
const fiscalYearStartMonth = 4

type YearMonth struct {
	Year  int
	Month int
}

// FiscalQuarterOf devolve o ano e trimestre fiscais que contêm t.
// Janeiro a março pertencem ao Q4 do ano fiscal anterior.
func FiscalQuarterOf(t time.Time) (int, int) {
	month := int(t.Month())
	if month < fiscalYearStartMonth {
		return t.Year() - 1, 4
	}

	return t.Year(), (month-fiscalYearStartMonth)/3 + 1
}

// ResolveQuarter usa o trimestre informado quando completo e válido,
// senão o trimestre corrente de now
func ResolveQuarter(fiscalYear, fiscalQuarter *int, now time.Time) (int, int) {
	if fiscalYear == nil || fiscalQuarter == nil || *fiscalQuarter < 1 || *fiscalQuarter > 4 {
		return FiscalQuarterOf(now)
	}

	return *fiscalYear, *fiscalQuarter
}

// QuarterMonths resolve os três meses de calendário do trimestre fiscal
func QuarterMonths(fiscalYear, fiscalQuarter *int, now time.Time) [3]YearMonth {
	fy, fq := ResolveQuarter(fiscalYear, fiscalQuarter, now)
	return MonthsOf(fy, fq)
}

// MonthsOf assume fq entre 1 e 4
func MonthsOf(fiscalYear, fiscalQuarter int) [3]YearMonth {
	var months [3]YearMonth

	first := fiscalYearStartMonth + (fiscalQuarter-1)*3
	for i := range months {
		year, month := fiscalYear, first+i
		if month > 12 {
			year++
			month -= 12
		}
		months[i] = YearMonth{Year: year, Month: month}
	}

	return months
}
