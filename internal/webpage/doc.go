// Package webpage fetches a web page and converts its HTML to Markdown so it
// can be embedded in a prompt as grounding material.
package webpage
