package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func passageFixture(title, source string, chunk int) Passage {
	return Passage{
		Content:  "text",
		Metadata: map[string]any{"title": title, "source": source, "chunk": chunk},
	}
}

func TestSourcesToText(t *testing.T) {
	assert.Empty(t, SourcesToText(nil))

	out := SourcesToText([]Passage{
		passageFixture("Intro", "docs/intro.md", 0),
		passageFixture("Intro", "docs/intro.md", 1),
	})
	assert.Equal(t, "- Intro (docs/intro.md, chunk 0)\n- Intro (docs/intro.md, chunk 1)", out)
}

func TestSourcesToMarkdownDedupes(t *testing.T) {
	assert.Empty(t, SourcesToMarkdown(nil))

	out := SourcesToMarkdown([]Passage{
		passageFixture("Intro", "docs/intro.md", 0),
		passageFixture("Intro", "docs/intro.md", 3),
		passageFixture("Guide", "docs/guide.md", 0),
	})
	assert.Equal(t,
		"**Source documents:**\n- [Intro](docs/intro.md)\n- [Guide](docs/guide.md)",
		out)
}

func TestPassageMetadataAccessors(t *testing.T) {
	p := passageFixture("Intro", "docs/intro.md", 0)
	assert.Equal(t, "Intro", p.Title())
	assert.Equal(t, "docs/intro.md", p.Source())

	empty := Passage{Content: "no metadata"}
	assert.Empty(t, empty.Title())
	assert.Empty(t, empty.Source())
}
