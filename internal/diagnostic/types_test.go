package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())

	d.AddWarning("extra-shape", "not compiled in", "Hsv", "")
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddError("field-moved", "index 1, want 2", "Rgb", "g")
	d.AddError("len-mismatch", "3 fields, want 4", "Rgba", "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[Rgb] g: [field-moved] index 1, want 2; [Rgba]: [len-mismatch] 3 fields, want 4",
		err.Error())
}

func TestDiagnostics_MergeAndCodes(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("ok", "matches", "Rgb", "")
	b.AddError("missing-shape", "gone", "Hsv", "")
	b.AddWarning("renamed", "x -> y", "Point", "y")

	a.Merge(b)

	assert.Equal(t, []string{"missing-shape", "renamed", "ok"}, a.Codes())
	assert.Len(t, a.All(), 3)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}

func TestDiagnostic_StringWithoutContext(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[c] m", Diagnostic{Code: "c", Message: "m"}.String())
}
