package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestInlineAssets - Reference substitution
// ---------------------------------------------------------------------------

func TestInlineAssets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		html        string
		css         string
		js          string
		want        string
		wantInlined Inlined
	}{
		{
			name:        "both references",
			html:        `<head>` + StylesheetTag + `</head><body>` + ScriptTag + `</body>`,
			css:         "a{b:c}",
			js:          "x();",
			want:        `<head><style>a{b:c}</style></head><body><script>x();</script></body>`,
			wantInlined: Inlined{CSS: true, JS: true},
		},
		{
			name:        "stylesheet only",
			html:        `<html><link rel="stylesheet" href="style.css"></html>`,
			css:         "a{color:red;}",
			js:          "foo();\nbar();",
			want:        `<html><style>a{color:red;}</style></html>`,
			wantInlined: Inlined{CSS: true, JS: false},
		},
		{
			name:        "script only",
			html:        `<p>hi</p>` + ScriptTag,
			css:         "a{}",
			js:          "go();",
			want:        `<p>hi</p><script>go();</script>`,
			wantInlined: Inlined{CSS: false, JS: true},
		},
		{
			name:        "no references",
			html:        `<p>static</p>`,
			css:         "a{}",
			js:          "go();",
			want:        `<p>static</p>`,
			wantInlined: Inlined{},
		},
		{
			name:        "only first occurrence replaced",
			html:        ScriptTag + ScriptTag,
			js:          "1",
			want:        `<script>1</script>` + ScriptTag,
			wantInlined: Inlined{CSS: false, JS: true},
		},
		{
			name:        "attribute variations are not matched",
			html:        `<link rel='stylesheet' href='style.css'><script src="app.js" defer></script>`,
			css:         "a{}",
			js:          "go();",
			want:        `<link rel='stylesheet' href='style.css'><script src="app.js" defer></script>`,
			wantInlined: Inlined{},
		},
		{
			name:        "empty assets still replace references",
			html:        StylesheetTag + ScriptTag,
			want:        `<style></style><script></script>`,
			wantInlined: Inlined{CSS: true, JS: true},
		},
		{
			name:        "replacement text is literal",
			html:        StylesheetTag,
			css:         `a::after{content:"$1"}`,
			want:        `<style>a::after{content:"$1"}</style>`,
			wantInlined: Inlined{CSS: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, inlined := InlineAssets(tt.html, tt.css, tt.js)
			if got != tt.want {
				t.Errorf("InlineAssets() = %q, want %q", got, tt.want)
			}
			if inlined != tt.wantInlined {
				t.Errorf("InlineAssets() inlined = %+v, want %+v", inlined, tt.wantInlined)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInlined - Report helpers
// ---------------------------------------------------------------------------

func TestInlined(t *testing.T) {
	t.Parallel()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()

		i := Inlined{CSS: true, JS: true}
		if !i.Complete() {
			t.Error("Complete() = false, want true")
		}
		if len(i.Missing()) != 0 {
			t.Errorf("Missing() = %v, want empty", i.Missing())
		}
	})

	t.Run("missing script", func(t *testing.T) {
		t.Parallel()

		i := Inlined{CSS: true}
		if i.Complete() {
			t.Error("Complete() = true, want false")
		}
		missing := i.Missing()
		if len(missing) != 1 || missing[0] != ScriptTag {
			t.Errorf("Missing() = %v, want [%s]", missing, ScriptTag)
		}
	})

	t.Run("missing both keeps document order", func(t *testing.T) {
		t.Parallel()

		got := strings.Join(Inlined{}.Missing(), " ")
		want := StylesheetTag + " " + ScriptTag
		if got != want {
			t.Errorf("Missing() = %q, want %q", got, want)
		}
	})
}
