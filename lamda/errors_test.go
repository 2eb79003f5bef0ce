package lamda

import "testing"

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "wrong comment format",
			err:  errWrongComment(line{number: 1, text: "# wrong"}),
			want: "     1 | # wrong\n" +
				"       | ^\n" +
				"       = Comment should begin with `!` character.\n",
		},
		{
			name: "not an integer spans the whole line",
			err:  errNotAnInteger(line{number: 6, text: "abc"}),
			want: "     6 | abc\n" +
				"       | ^^^\n" +
				"       = Expected integer.\n",
		},
		{
			name: "not a float spans the whole line",
			err:  errNotAFloat(line{number: 4, text: "16.o"}),
			want: "     4 | 16.o\n" +
				"       | ^^^^\n" +
				"       = Expected floating point number.\n",
		},
		{
			name: "not enough input",
			err:  errNotEnoughInput(42),
			want: "    42 |\n" +
				"       | ^^^^^^\n" +
				"       = Line 42 is empty, but there should be more input.\n",
		},
		{
			name: "missing field points one past the text",
			err: &ParseError{
				Kind:       MissingField,
				LineNumber: 9,
				Line:       "  1  0.0",
				Note:       "Missing field `statistical weight` with value of floating point number type",
			},
			want: "     9 |   1  0.0\n" +
				"       |          ^^^^^^\n" +
				"       = Missing field `statistical weight` with value of floating point number type.\n",
		},
		{
			name: "unknown item points at the literal",
			err: &ParseError{
				Kind:       UnknownItem,
				LineNumber: 8,
				Line:       "   32  x2.4    1.0",
				Column:     7,
				ValueWidth: 4,
				Note:       "Value `x2.4` from field `energy [cm-1]` has wrong type (should be floating point number)",
			},
			want: "     8 |    32  x2.4    1.0\n" +
				"       |        ^^^^\n" +
				"       = Value `x2.4` from field `energy [cm-1]` has wrong type (should be floating point number).\n",
		},
		{
			name: "unknown collision partner underlines the code",
			err:  errUnknownPartner(line{number: 15, text: " 9 O + H"}),
			want: "    15 |  9 O + H\n" +
				"       |  ^\n" +
				"       = Unknown collision partner id (1=H2, 2=para-H2, 3=ortho-H2, 4=electrons, 5=H, 6=He, 7=H+).\n",
		},
		{
			name: "tabs expand to single spaces before offset math",
			err: &ParseError{
				Kind:       UnknownItem,
				LineNumber: 3,
				Line:       "1\tx\t3.0",
				Column:     2,
				ValueWidth: 1,
				Note:       "Value `x` from field `energy [cm-1]` has wrong type (should be floating point number)",
			},
			want: "     3 | 1 x 3.0\n" +
				"       |   ^\n" +
				"       = Value `x` from field `energy [cm-1]` has wrong type (should be floating point number).\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Annotate(); got != tt.want {
				t.Errorf("Annotate() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name       string
		err        *ParseError
		wantColumn int
		wantWidth  int
	}{
		{"wrong comment", errWrongComment(line{number: 1, text: "# x"}), 0, 1},
		{"not an integer", errNotAnInteger(line{number: 2, text: "abcd"}), 0, 4},
		{"not a float", errNotAFloat(line{number: 2, text: "x"}), 0, 1},
		{"missing field", &ParseError{Kind: MissingField, Line: "1 2"}, 4, gutterWidth},
		{"unknown item", &ParseError{Kind: UnknownItem, Column: 7, ValueWidth: 4}, 7, 4},
		{"unknown partner", errUnknownPartner(line{number: 5, text: "  99 X + Y"}), 2, 2},
		{"not enough input", errNotEnoughInput(3), 0, gutterWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, width := tt.err.Span()
			if column != tt.wantColumn || width != tt.wantWidth {
				t.Errorf("Span() = (%d, %d), want (%d, %d)", column, width, tt.wantColumn, tt.wantWidth)
			}
		})
	}
}

func TestParseErrorError(t *testing.T) {
	err := errNotAnInteger(line{number: 6, text: "abc"})
	if got, want := err.Error(), "line 6: Expected integer"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if got, want := errNotEnoughInput(7).Error(), "line 7: not enough input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := map[ErrorKind]string{
		NotEnoughInput:          "NotEnoughInput",
		WrongCommentFormat:      "WrongCommentFormat",
		MissingField:            "MissingField",
		NotAFloat:               "NotAFloat",
		NotAnInteger:            "NotAnInteger",
		UnknownItem:             "UnknownItem",
		UnknownCollisionPartner: "UnknownCollisionPartner",
	}
	for kind, want := range kinds {
		if kind.String() != want {
			t.Errorf("String() = %q, want %q", kind.String(), want)
		}
	}
	if got := ErrorKind(99).String(); got != "Unknown" {
		t.Errorf("ErrorKind(99).String() = %q, want \"Unknown\"", got)
	}
}
