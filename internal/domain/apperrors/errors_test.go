package apperrors

import (
	"errors"
	"io"
	"testing"
)

func TestMissingFileError(t *testing.T) {
	err := error(&MissingFileError{Kinds: []string{"sales", "purchases"}})
	if !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile")
	}
	if err.Error() != "please import the sales and purchases file(s) first" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestItemNotFoundError(t *testing.T) {
	cases := []struct {
		name string
		err  *ItemNotFoundError
		want string
	}{
		{name: "sales only", err: &ItemNotFoundError{Code: "A1", InPurchases: true}, want: `item "A1" not found in sales data`},
		{name: "purchases only", err: &ItemNotFoundError{Code: "A1", InSales: true}, want: `item "A1" not found in purchases data`},
		{name: "both", err: &ItemNotFoundError{Code: "A1"}, want: `item "A1" not found in sales and purchases data`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() != tc.want {
				t.Fatalf("got %q want %q", tc.err.Error(), tc.want)
			}
			var target *ItemNotFoundError
			wrapped := errors.Join(errors.New("ctx"), tc.err)
			if !errors.Is(wrapped, ErrItemNotFound) || !errors.As(wrapped, &target) {
				t.Fatalf("wrapped error lost its kind")
			}
		})
	}
}

func TestParseError(t *testing.T) {
	err := error(&ParseError{Source: "sales.xlsx", Row: 3, Err: io.ErrUnexpectedEOF})
	if !errors.Is(err, ErrParse) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected both ErrParse and cause to match")
	}
	if err.Error() != "sales.xlsx: row 3: unexpected EOF" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	noRow := &ParseError{Source: "x.csv", Err: io.EOF}
	if noRow.Error() != "x.csv: EOF" {
		t.Fatalf("unexpected message %q", noRow.Error())
	}
}

func TestMissingInput(t *testing.T) {
	err := MissingInput("item code")
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput")
	}
}
