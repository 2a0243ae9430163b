package workinaus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCard = `FEATURED
Outback Mining Services
Heavy Diesel Mechanic
Karratha, WA
$120,000 - $140,000 / Annual
Full time
We are seeking an experienced mechanic to join our team.
Apply Now`

func TestCardLinesDropBlanks(t *testing.T) {
	lines := cardLines("One\n\n  Two  \n\nThree\n")
	assert.Equal(t, []string{"One", "Two", "Three"}, lines)
}

func TestPickTitleSkipsNoise(t *testing.T) {
	lines := cardLines(sampleCard)
	assert.Equal(t, "Heavy Diesel Mechanic", pickTitle(lines, "Outback Mining Services"))
}

func TestPickLocationFindsStateLine(t *testing.T) {
	lines := cardLines(sampleCard)
	assert.Equal(t, "Karratha, WA", pickLocation(lines))
}

func TestPickSalaryNeedsPeriodMarker(t *testing.T) {
	lines := cardLines(sampleCard)
	assert.Equal(t, "$120,000 - $140,000 / Annual", pickSalary(lines))

	assert.Equal(t, "", pickSalary([]string{"$500 bonus on signing"}))
}

func TestPickJobType(t *testing.T) {
	lines := cardLines(sampleCard)
	assert.Equal(t, "Full time", pickJobType(lines))

	assert.Equal(t, "", pickJobType([]string{"Heavy Diesel Mechanic"}))
}

func TestPickTitleEmptyCard(t *testing.T) {
	assert.Equal(t, "", pickTitle(nil, ""))
}

func TestPickDescriptionKeepsPitchLine(t *testing.T) {
	lines := cardLines(sampleCard)
	assert.Equal(t, "We are seeking an experienced mechanic to join our team.", pickDescription(lines))
}

func TestPickDescriptionLongLineWithoutKeyword(t *testing.T) {
	long := "Join a growing national operator delivering critical infrastructure projects across the state."
	assert.Equal(t, long, pickDescription([]string{"Site Engineer", long}))

	assert.Equal(t, "", pickDescription([]string{"Site Engineer", "Full time"}))
}
