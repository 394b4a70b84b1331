package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Hour", "2024-05-06", "2024-05-07"},
		Rows: []map[string]string{
			{"Hour": "09:00", "2024-05-06": "Essay draft", "2024-05-07": ""},
			{"Hour": "10:00", "2024-05-06": "", "2024-05-07": "Vocabulary quiz"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	content, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Hour,2024-05-06,2024-05-07", lines[0])
	assert.Equal(t, "09:00,Essay draft,", lines[1])
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFRenderWide(t *testing.T) {
	content, err := NewPDFExporter().RenderWide(sampleDataset(), "Week plan 2024-05-06")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestPDFRenderRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
