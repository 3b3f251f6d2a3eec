package extract

import (
	"errors"
	"testing"
)

func TestExtractID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://drive.example.com/drive/folders/1A2b3C", "1A2b3C"},
		{"https://drive.google.com/drive/u/0/folders/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74"},
		// no "folders/": first ≥25-char ID run wins
		{"https://drive.google.com/open?id=1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74"},
		{"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74"},
	}
	for _, c := range cases {
		got, err := ExtractID(c.in)
		if err != nil {
			t.Fatalf("ExtractID(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ExtractID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractIDFirstRunWins(t *testing.T) {
	in := "x/AAAAAAAAAAAAAAAAAAAAAAAAA/BBBBBBBBBBBBBBBBBBBBBBBBB"
	got, err := ExtractID(in)
	if err != nil {
		t.Fatal(err)
	}
	if got != "AAAAAAAAAAAAAAAAAAAAAAAAA" {
		t.Fatalf("got %q, want first run", got)
	}
}

func TestExtractIDNotFound(t *testing.T) {
	for _, in := range []string{"", "https://example.com/short", "only twenty-four chars: abcdefghijklmnopqrstuvwx"} {
		if _, err := ExtractID(in); !errors.Is(err, ErrNoID) {
			t.Fatalf("ExtractID(%q) err = %v, want ErrNoID", in, err)
		}
	}
}
