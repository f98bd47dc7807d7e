// Package extract turns a raw chat-completion response into a typed record.
//
// The pipeline runs three stages in order:
//
//  1. ReadEnvelope finds the candidate text inside the completion envelope,
//     falling back to a brace scan of the raw text.
//  2. Narrow cuts the candidate down to the span between its first '{' and
//     last '}'.
//  3. Bind decodes that span and maps it onto a Description, clipping values
//     that exceed the declared limits.
//
// A failure at any stage yields a Result with OK set to false. Extraction
// never returns an error and never produces a partial record.
//
// Example:
//
//	movie := extract.MustDescription("movie_details",
//	    extract.Text("title", 100),
//	    extract.Integer("year"),
//	)
//	res := extract.Extract(body, movie)
//	if res.OK {
//	    fmt.Println(res.Record.Text("title"))
//	}
package extract
