package schemas

import (
	"fmt"
	"strings"

	"github.com/leofalp/llmextract/core/extract"
)

// Recipe describes the recipe record.
var Recipe = extract.MustDescription("recipe",
	extract.Text("title", 75).Describe("The name of the dish"),
	extract.Text("totalTime", 30).Describe("Total preparation and cooking time, e.g. \"45 minutes\""),
	extract.Text("countryOfOrigin", 50).Describe("The country the dish comes from"),
	extract.TextList("ingredients", 12, 80).Describe("Ingredients with quantities"),
	extract.TextList("steps", 10, 300).Describe("Preparation steps in order"),
)

// RecipeDetails is the typed form of a Recipe record.
type RecipeDetails struct {
	Title           string   `json:"title" yaml:"title"`
	TotalTime       string   `json:"totalTime" yaml:"totalTime"`
	CountryOfOrigin string   `json:"countryOfOrigin" yaml:"countryOfOrigin"`
	Ingredients     []string `json:"ingredients" yaml:"ingredients"`
	Steps           []string `json:"steps" yaml:"steps"`
}

// RecipePrompt builds the user prompt asking for a recipe for dish. When
// source is not empty it is appended as reference material, typically a
// recipe page converted to Markdown.
func RecipePrompt(dish, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Give me a recipe for %s. "+
		"Call the %s function with its title, total time, country of origin, "+
		"up to 12 ingredients and up to 10 steps.",
		strings.TrimSpace(dish), Recipe.Name())

	if source = strings.TrimSpace(source); source != "" {
		b.WriteString("\n\nBase the recipe on the following page:\n\n")
		b.WriteString(source)
	}
	return b.String()
}
