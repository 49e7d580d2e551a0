package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics checks that every topic is listed in the readme and that
// every topic parses as markdown with a single top-level heading.
func TestTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics found")
	}

	readme, err := docs.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("cannot read readme.md: %v", err)
	}

	for _, topic := range topics {
		if !strings.Contains(string(readme), "("+topic+".md)") {
			t.Errorf("topic %q is not linked in readme.md", topic)
		}

		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) failed: %v", topic, err)
		}

		source := []byte(content)
		doc := goldmark.DefaultParser().Parse(text.NewReader(source))

		h1 := 0
		err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
				h1++
			}
			if fenced, ok := n.(*ast.FencedCodeBlock); ok {
				lang := string(fenced.Language(source))
				if lang != "sh" && lang != "json" {
					t.Errorf("topic %q has a fenced code block with unexpected language %q", topic, lang)
				}
			}
			return ast.WalkContinue, nil
		})
		if err != nil {
			t.Fatalf("walking topic %q failed: %v", topic, err)
		}
		if h1 != 1 {
			t.Errorf("topic %q has %d top-level headings, want exactly 1", topic, h1)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("GetTopic on an unknown topic should fail")
	}
}

func TestGetAllTopicsExcludesReadme(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Error("readme must not be listed as a topic")
		}
	}
}
