package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-aujob-scraper/internal/models"
)

func TestParseSalaryRangeWithPeriod(t *testing.T) {
	s := ParseSalary("$120,000 - $150,000 per year")

	require.NotNil(t, s.Min)
	require.NotNil(t, s.Max)
	assert.Equal(t, 120000.0, *s.Min)
	assert.Equal(t, 150000.0, *s.Max)
	assert.Equal(t, "AUD", s.Currency)
	assert.Equal(t, models.PeriodYearly, s.Period)
	assert.Equal(t, "$120,000 - $150,000 per year", s.RawText)
}

func TestParseSalaryHourlyRate(t *testing.T) {
	s := ParseSalary("$35/hr")

	require.NotNil(t, s.Min)
	assert.Equal(t, 35.0, *s.Min)
	assert.Nil(t, s.Max)
	assert.Equal(t, models.PeriodHourly, s.Period)
}

func TestParseSalaryHourlyRange(t *testing.T) {
	s := ParseSalary("$60 - $70 per hour")

	require.NotNil(t, s.Min)
	require.NotNil(t, s.Max)
	assert.Equal(t, 60.0, *s.Min)
	assert.Equal(t, 70.0, *s.Max)
	assert.Equal(t, models.PeriodHourly, s.Period)
}

func TestParseSalaryThousandsShorthand(t *testing.T) {
	s := ParseSalary("80k – 100k")

	require.NotNil(t, s.Min)
	require.NotNil(t, s.Max)
	assert.Equal(t, 80000.0, *s.Min)
	assert.Equal(t, 100000.0, *s.Max)
	assert.Equal(t, models.PeriodYearly, s.Period)
}

func TestParseSalaryUnrecognizedKeepsRawText(t *testing.T) {
	s := ParseSalary("Competitive salary")

	assert.Nil(t, s.Min)
	assert.Nil(t, s.Max)
	assert.Equal(t, "Competitive salary", s.RawText)
	assert.Equal(t, "AUD", s.Currency)
}

func TestParseSalaryForeignCurrency(t *testing.T) {
	s := ParseSalary("£40,000 per annum")

	require.NotNil(t, s.Min)
	assert.Equal(t, 40000.0, *s.Min)
	assert.Equal(t, "GBP", s.Currency)
	assert.Equal(t, models.PeriodYearly, s.Period)
}

func TestParseSalarySwapsInvertedRange(t *testing.T) {
	s := ParseSalary("$150,000 - $120,000 per year")

	require.NotNil(t, s.Min)
	require.NotNil(t, s.Max)
	assert.LessOrEqual(t, *s.Min, *s.Max)
}

func TestParseSalaryEmpty(t *testing.T) {
	s := ParseSalary("")

	assert.Nil(t, s.Min)
	assert.Nil(t, s.Max)
	assert.Equal(t, "", s.RawText)
}
