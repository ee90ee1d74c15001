// Package catalog declares the content units of each storefront page:
// which prompt produces a unit, what shape the response takes, and
// which placeholder tokens the result fills. The pipeline iterates
// these tables; no unit has code of its own.
package catalog

import "fmt"

// Shape is the expected structural form of a generated response.
type Shape int

const (
	// PlainText is substituted verbatim after sanitization.
	PlainText Shape = iota
	// HTMLFragment is sanitized and has markdown emphasis rendered to tags.
	HTMLFragment
	// JSONObject is parsed into named fields, one token per field.
	JSONObject
)

// Request is the immutable input tuple for one page run.
type Request struct {
	Brand              string
	ProductTitle       string
	ProductDescription string
	Language           string
}

// Field maps one JSON field to its placeholder token. Nested objects
// in a response flatten to dotted names ("testimonial_1.caption").
type Field struct {
	Name  string
	Token string
}

// Translation is a literal string translated into the target language
// and substituted at one or more tokens.
type Translation struct {
	Source string
	Tokens []string
}

// Unit is one discrete piece of copy to generate and place.
type Unit struct {
	Key    string
	Prompt func(Request) string
	Shape  Shape
	// Token receives the result for PlainText/HTMLFragment units.
	Token string
	// Fields drive substitution for JSONObject units, in declaration order.
	Fields []Field
	// Reference example used for markup-shape validation, when any.
	Reference string
	MaxTokens int
}

// FieldNames returns the declared field names in declaration order.
func (u Unit) FieldNames() []string {
	names := make([]string, len(u.Fields))
	for i, f := range u.Fields {
		names[i] = f.Name
	}
	return names
}

// Page is the fixed ordered work list for one storefront page.
type Page struct {
	Name         string
	Translations []Translation
	Units        []Unit
}

// ByName resolves a page catalog from its CLI name.
func ByName(name string) (Page, error) {
	switch name {
	case "home":
		return HomePage(), nil
	case "product":
		return ProductPage(), nil
	case "footer":
		return FooterPage(), nil
	default:
		return Page{}, fmt.Errorf("unknown page %q (want home, product, or footer)", name)
	}
}
