package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leofalp/llmextract/core/extract"
	"github.com/leofalp/llmextract/core/schemas"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"", DefaultFormat, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func movieRecord(t *testing.T) extract.Record {
	t.Helper()
	r, err := extract.Bind(`{"actors":["Al Pacino"],"genres":["Crime","Drama"],"year":1995,"title":"Heat","director":"Michael Mann"}`, schemas.Movie)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestWrite_YAMLKeepsRecordOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatYAML, movieRecord(t)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := `title: Heat
year: 1995
director: Michael Mann
genres:
  - Crime
  - Drama
actors:
  - Al Pacino
`
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, movieRecord(t)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "{\n  \"title\": \"Heat\",\n  \"year\": 1995,") {
		t.Errorf("unexpected JSON output:\n%s", out)
	}
}

func TestWrite_StructsAndNull(t *testing.T) {
	var buf bytes.Buffer
	data := struct {
		OK     bool           `json:"ok"`
		Stage  string         `json:"stage"`
		Record extract.Record `json:"record"`
	}{OK: false, Stage: "narrow"}

	if err := Write(&buf, FormatYAML, data); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "ok: false\nstage: narrow\nrecord: null\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Format("xml"), 1); err == nil {
		t.Error("expected error for unknown format")
	}
}
