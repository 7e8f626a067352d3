package subst

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		template string
		want     string
		wantErr  bool
	}{
		{
			name:     "no placeholders",
			data:     Data{"foo": "things"},
			template: "Nothing to replace here.\n",
			want:     "Nothing to replace here.\n",
		},
		{
			name:     "empty template",
			data:     Data{"foo": "things"},
			template: "",
			want:     "",
		},
		{
			name:     "simple mapping keys",
			data:     Data{"foo": "things", "bar": "stuff"},
			template: "Replace {foo} and {bar}.\n",
			want:     "Replace things and stuff.\n",
		},
		{
			name:     "sequence indexes",
			data:     []interface{}{"Zero", "One", "Two", "Three"},
			template: "{3} {2} {1} {0}",
			want:     "Three Two One Zero",
		},
		{
			name: "nested paths",
			data: Data{
				"a": Data{"d": "one"},
				"b": Data{"e": "two"},
				"c": Data{"f": []string{"zero", "one", "two", "three"}},
			},
			template: "{a.d} {b.e} {c.f.3}",
			want:     "one two three",
		},
		{
			name:     "missing key falls back to token",
			data:     Data{"foo": "x"},
			template: "{bar}",
			want:     "{bar}",
		},
		{
			name:     "index out of range falls back",
			data:     []interface{}{"a"},
			template: "{1}",
			want:     "{1}",
		},
		{
			name:     "non-numeric index falls back",
			data:     []interface{}{"a"},
			template: "{x}",
			want:     "{x}",
		},
		{
			name:     "leading zero index falls back",
			data:     []interface{}{"zero", "one", "two", "three"},
			template: "{03}",
			want:     "{03}",
		},
		{
			name:     "numeric value formatting",
			data:     Data{"count": 42, "price": 19.99},
			template: "{count} items at {price}",
			want:     "42 items at 19.99",
		},
		{
			name:     "replacement text is not re-scanned",
			data:     Data{"a": "{b}", "b": "boom"},
			template: "{a}",
			want:     "{b}",
		},
		{
			name:     "malformed placeholders pass through",
			data:     Data{"foo": "x"},
			template: "{} {.foo} { foo } {-bar}",
			want:     "{} {.foo} { foo } {-bar}",
		},
		{
			name:     "adjacent tokens",
			data:     Data{"a": "1", "b": "2"},
			template: "{a}{b}",
			want:     "12",
		},
		{
			name:     "nil data without placeholders",
			data:     nil,
			template: "plain text",
			want:     "plain text",
		},
		{
			name:     "drilling into a scalar is an error",
			data:     Data{"a": 5},
			template: "{a.b}",
			wantErr:  true,
		},
		{
			name:     "drilling into nil is an error",
			data:     nil,
			template: "{foo}",
			wantErr:  true,
		},
		{
			name:     "string map keys",
			data:     map[string]string{"who": "world"},
			template: "hello {who}",
			want:     "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.data, tt.template)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var traversalErr *TraversalError
				if !errors.As(err, &traversalErr) {
					t.Errorf("Render() error = %v, want *TraversalError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	data := Data{
		"foo": "things",
		"c":   Data{"f": []string{"zero", "one"}},
	}

	first, err := Render(data, "Replace {foo}, keep {bar}, index {c.f.1}.")
	if err != nil {
		t.Fatalf("first Render() error = %v", err)
	}

	want := "Replace things, keep {bar}, index one."
	if first != want {
		t.Fatalf("first Render() = %q, want %q", first, want)
	}

	// The unresolved {bar} token still misses on the second pass, so the
	// output is a fixed point
	second, err := Render(data, first)
	if err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	if second != first {
		t.Errorf("second Render() = %q, want %q", second, first)
	}
}

func TestRenderCustomDelimiter(t *testing.T) {
	data := Data{"a": Data{"d": "one"}}

	// The default grammar treats ':' as neither a word character nor the
	// delimiter, so the token never matches
	got, err := Render(data, "{a::d}")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "{a::d}" {
		t.Errorf("Render() with default delimiter = %q, want %q", got, "{a::d}")
	}

	if err := SetDelimiter("::"); err != nil {
		t.Fatalf("SetDelimiter() error = %v", err)
	}
	defer func() {
		if err := SetDelimiter(DefaultDelimiter); err != nil {
			t.Fatalf("SetDelimiter() restore error = %v", err)
		}
	}()

	got, err = Render(data, "{a::d}")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "one" {
		t.Errorf("Render() with '::' delimiter = %q, want %q", got, "one")
	}

	// Dotted paths no longer split under the '::' delimiter; "a.d" is one
	// unknown key
	got, err = Render(data, "{a.d}")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "{a.d}" {
		t.Errorf("Render() with '::' delimiter = %q, want %q", got, "{a.d}")
	}
}

func TestEngineDelimiterIsolation(t *testing.T) {
	data := Data{"a": Data{"d": "one"}}

	eng := NewWithConfig(&Config{Delimiter: "::"})

	got, err := eng.Render(data, "{a::d}")
	if err != nil {
		t.Fatalf("Engine.Render() error = %v", err)
	}
	if got != "one" {
		t.Errorf("Engine.Render() = %q, want %q", got, "one")
	}

	// The engine's delimiter does not leak into the package-level renderer
	got, err = Render(data, "{a::d}")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "{a::d}" {
		t.Errorf("Render() = %q, want %q", got, "{a::d}")
	}
}

func TestEngineDefaultConfig(t *testing.T) {
	eng := New()

	got, err := eng.Render(Data{"foo": "x"}, "{foo}")
	if err != nil {
		t.Fatalf("Engine.Render() error = %v", err)
	}
	if got != "x" {
		t.Errorf("Engine.Render() = %q, want %q", got, "x")
	}
}
