package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkdownFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"name":"Pikachu"}`, `{"name":"Pikachu"}`},
		{"```json\n{\"name\":\"Pikachu\"}\n```", `{"name":"Pikachu"}`},
		{"```\n{\"name\":\"Pikachu\"}\n```", `{"name":"Pikachu"}`},
		{"  {\"name\":\"Pikachu\"}  ", `{"name":"Pikachu"}`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, stripMarkdownFences(c.in))
	}
}

func TestExtractNumber(t *testing.T) {
	assert.Equal(t, "025", extractNumber("025/102"))
	assert.Equal(t, "4", extractNumber("nr 4"))
	assert.Equal(t, "", extractNumber("brak"))
}

func TestSplitTrailingSuffix(t *testing.T) {
	name, suffix := splitTrailingSuffix("Pikachu VMAX")
	assert.Equal(t, "Pikachu", name)
	assert.Equal(t, "VMAX", suffix)

	name, suffix = splitTrailingSuffix("Charizard ex")
	assert.Equal(t, "Charizard", name)
	assert.Equal(t, "EX", suffix)

	name, suffix = splitTrailingSuffix("Pikachu")
	assert.Equal(t, "Pikachu", name)
	assert.Empty(t, suffix)

	// "V" solo cuenta como sufijo si es un token final separado
	name, suffix = splitTrailingSuffix("Vullaby")
	assert.Equal(t, "Vullaby", name)
	assert.Empty(t, suffix)
}
