package schemas

import (
	"fmt"
	"strings"

	"github.com/leofalp/llmextract/core/extract"
)

// Movie describes the movie details record.
var Movie = extract.MustDescription("movie_details",
	extract.Text("title", 100).Describe("The title of the movie"),
	extract.Integer("year").Describe("The year the movie was released"),
	extract.Text("director", 80).Describe("The director of the movie"),
	extract.TextList("genres", 5, 30).Describe("The genres of the movie"),
	extract.TextList("actors", 10, 60).Describe("The main actors of the movie"),
)

// MovieDetails is the typed form of a Movie record.
type MovieDetails struct {
	Title    string   `json:"title" yaml:"title"`
	Year     int      `json:"year" yaml:"year"`
	Director string   `json:"director" yaml:"director"`
	Genres   []string `json:"genres" yaml:"genres"`
	Actors   []string `json:"actors" yaml:"actors"`
}

// MoviePrompt builds the user prompt asking for the details of title.
func MoviePrompt(title string) string {
	return fmt.Sprintf("Give me the details of the movie %s. "+
		"Call the %s function with its title, release year, director, "+
		"up to 5 genres and up to 10 main actors.",
		strings.TrimSpace(title), Movie.Name())
}
