package markup

import (
	"strings"
	"testing"
)

func TestTransformEmpty(t *testing.T) {
	out, ok := Transform("")
	if ok {
		t.Errorf("Transform(\"\") ok = true, want false")
	}
	if out != "" {
		t.Errorf("Transform(\"\") = %q, want empty", out)
	}
}

func TestTransformEscapesFirst(t *testing.T) {
	tests := []string{
		"<script>alert(1)</script>",
		"a < b & b > c",
		`<img src="x" onerror="pwn()">`,
	}
	for _, input := range tests {
		got, ok := Transform(input)
		if !ok {
			t.Fatalf("Transform(%q) ok = false", input)
		}
		if strings.Contains(got, "<script") || strings.Contains(got, "<img") {
			t.Errorf("Transform(%q) = %q, raw tag leaked through", input, got)
		}
		if !strings.Contains(got, "&lt;") {
			t.Errorf("Transform(%q) = %q, expected escaped angle bracket", input, got)
		}
	}
}

func TestTransformHeading(t *testing.T) {
	got, _ := Transform("## Field Notes\nBody text")
	if !strings.Contains(got, `<h3 class="text-zinc-100 text-xl font-semibold mt-4 mb-2">Field Notes</h3>`) {
		t.Errorf("heading not rendered: %q", got)
	}
	if !strings.Contains(got, "<br />Body text") {
		t.Errorf("body after heading mangled: %q", got)
	}
}

func TestTransformHeadingOnlyAtLineStart(t *testing.T) {
	got, _ := Transform("not a ## heading")
	if strings.Contains(got, "<h3") {
		t.Errorf("mid-line ## must stay literal: %q", got)
	}
}

// Single asterisks are bold and double asterisks are italic. That is the
// reverse of Markdown and it is load-bearing: stored post bodies were written
// against this mapping.
func TestTransformBoldItalicSwapped(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"*loud*", `<strong class="text-zinc-100">loud</strong>`},
		{"**soft**", `<em class="text-zinc-200">soft</em>`},
	}
	for _, tt := range tests {
		got, _ := Transform(tt.input)
		if got != tt.want {
			t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransformItalicNotMatchedAsBold(t *testing.T) {
	got, _ := Transform("**soft**")
	if strings.Contains(got, "<strong") {
		t.Errorf("Transform(\"**soft**\") = %q, should not contain <strong>", got)
	}
}

func TestTransformUnderline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\u word \u`, `<span class="underline decoration-red-700 decoration-2 underline-offset-4">word</span>`},
		{`\uword\u`, `<span class="underline decoration-red-700 decoration-2 underline-offset-4">word</span>`},
	}
	for _, tt := range tests {
		got, _ := Transform(tt.input)
		if got != tt.want {
			t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransformUnbalancedMarkersStayLiteral(t *testing.T) {
	tests := []string{"*dangling", `\u dangling`}
	for _, input := range tests {
		got, _ := Transform(input)
		if strings.Contains(got, "<strong") || strings.Contains(got, "<em") || strings.Contains(got, "<span") {
			t.Errorf("Transform(%q) = %q, unbalanced marker was consumed", input, got)
		}
	}
}

func TestTransformNewlines(t *testing.T) {
	got, _ := Transform("one\ntwo")
	if got != "one<br />two" {
		t.Errorf("Transform(\"one\\ntwo\") = %q", got)
	}
}
