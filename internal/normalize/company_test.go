package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanySlug(t *testing.T) {
	assert.Equal(t, "atlassian", CompanySlug("Atlassian"))
	assert.Equal(t, "cafe-australia-pty-ltd", CompanySlug("Café Australia Pty Ltd"))
	assert.Equal(t, "woolworths-group", CompanySlug("  Woolworths   Group  "))
	assert.Equal(t, "7-eleven", CompanySlug("7-Eleven"))
}

func TestCompanySlugCollidesOnCaseAndSpacing(t *testing.T) {
	assert.Equal(t, CompanySlug("ACME Corp"), CompanySlug("acme   corp"))
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, "senior engineer", Identity("  Senior   Engineer "))
	assert.Equal(t, "", Identity("   "))
}
