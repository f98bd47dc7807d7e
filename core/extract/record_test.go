package extract

import (
	"encoding/json"
	"reflect"
	"testing"
)

type movieDetails struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Director string   `json:"director"`
	Genres   []string `json:"genres"`
	Actors   []string `json:"actors"`
}

func TestRecord_MarshalJSONKeepsFieldOrder(t *testing.T) {
	r, err := Bind(`{"actors":["B"],"year":2001,"title":"A","genres":[]}`, testMovie)
	if err != nil {
		t.Fatal(err)
	}
	got, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"title":"A","year":2001,"director":"","genres":[],"actors":["B"]}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestRecord_ZeroValue(t *testing.T) {
	var r Record
	if !r.IsZero() || r.Description() != nil {
		t.Error("zero Record must report IsZero")
	}
	if r.Text("title") != "" || r.Int("year") != 0 || r.List("genres") != nil || r.Map() != nil {
		t.Error("zero Record accessors must return zero values")
	}
	got, err := json.Marshal(r)
	if err != nil || string(got) != "null" {
		t.Errorf("MarshalJSON() = %s, %v", got, err)
	}
}

func TestRecord_AccessorsCheckKind(t *testing.T) {
	r, err := Bind(`{"title":"A","year":5,"genres":["x"]}`, testMovie)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text("year") != "" || r.Int("title") != 0 || r.List("title") != nil {
		t.Error("accessors must ignore fields of another kind")
	}
	if r.Text("unknown") != "" {
		t.Error("unknown field must yield empty text")
	}

	list := r.List("genres")
	list[0] = "mutated"
	if r.List("genres")[0] != "x" {
		t.Error("List() must return a copy")
	}
}

func TestRecord_Map(t *testing.T) {
	r, err := Bind(`{"title":"A","year":5}`, testMovie)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"title":    "A",
		"year":     int64(5),
		"director": "",
		"genres":   []string{},
		"actors":   []string{},
	}
	if got := r.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %#v, want %#v", got, want)
	}
}

func TestRecord_AsAndDecode(t *testing.T) {
	r, err := Bind(`{"title":"Heat","year":1995,"director":"Michael Mann","genres":["Crime"],"actors":["Al Pacino"]}`, testMovie)
	if err != nil {
		t.Fatal(err)
	}
	want := movieDetails{
		Title:    "Heat",
		Year:     1995,
		Director: "Michael Mann",
		Genres:   []string{"Crime"},
		Actors:   []string{"Al Pacino"},
	}

	got, err := As[movieDetails](r)
	if err != nil {
		t.Fatalf("As() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("As() = %+v, want %+v", got, want)
	}

	var decoded movieDetails
	if err := r.Decode(&decoded); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, want) {
		t.Errorf("Decode() = %+v, want %+v", decoded, want)
	}
}
