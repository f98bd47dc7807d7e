package client

import (
	"context"
	"fmt"

	"github.com/leofalp/llmextract/core/extract"
	"github.com/leofalp/llmextract/core/schemas"
)

// ExtractAs runs Extract and converts the record into T, whose json tags
// name d's fields. The bool reports whether a record was extracted; when it
// is false T is its zero value and the error is nil unless the request
// failed.
//
// Example:
//
//	movie, ok, err := client.ExtractAs[schemas.MovieDetails](ctx, c, prompt, schemas.Movie)
func ExtractAs[T any](ctx context.Context, c *Client, prompt string, d *extract.Description) (T, bool, error) {
	var zero T

	result, err := c.Extract(ctx, prompt, d)
	if err != nil {
		return zero, false, err
	}
	if !result.OK {
		return zero, false, nil
	}

	value, err := extract.As[T](result.Record)
	if err != nil {
		return zero, false, fmt.Errorf("failed to convert %s record: %w", d.Name(), err)
	}
	return value, true, nil
}

// Movie asks the backend for the details of the movie title.
func (c *Client) Movie(ctx context.Context, title string) (schemas.MovieDetails, bool, error) {
	return ExtractAs[schemas.MovieDetails](ctx, c, schemas.MoviePrompt(title), schemas.Movie)
}

// Recipe asks the backend for a recipe for dish.
func (c *Client) Recipe(ctx context.Context, dish string) (schemas.RecipeDetails, bool, error) {
	return c.RecipeFrom(ctx, dish, "")
}

// RecipeFrom asks the backend for a recipe for dish, grounded in source
// (for example a recipe page converted to Markdown).
func (c *Client) RecipeFrom(ctx context.Context, dish, source string) (schemas.RecipeDetails, bool, error) {
	return ExtractAs[schemas.RecipeDetails](ctx, c, schemas.RecipePrompt(dish, source), schemas.Recipe)
}
