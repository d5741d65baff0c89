package form

import (
	"fmt"
	"strings"
)

// Page is a page type constructed with a concrete body and the application
// it belongs to.
type Page interface {
	// Body returns the resolved body the page was built with.
	Body() Body
	// Errors returns field -> message for every invalid field. An empty
	// map means the body is valid.
	Errors() map[string]string
	// Previous returns the id of the page before this one, or "".
	Previous() string
	// Next returns the id of the page after this one, or "" when the
	// task's page sequence ends here.
	Next() string
	// Response projects the body into question/answer entries.
	Response() (Response, error)
}

// PageFactory builds a page instance.
type PageFactory func(body Body, app *Application) (Page, error)

// PageSpec declares a page type.
type PageSpec struct {
	ID    string
	Title string
	// Fields are the answer fields the page owns. Only these are persisted.
	Fields []string
	// DateFields are canonical date fields entered as <field>-day,
	// <field>-month and <field>-year parts. The part fields are owned
	// implicitly.
	DateFields  []string
	New         PageFactory
	Enrichments []Enrichment
}

// PageDefinition is the registered, immutable form of a PageSpec.
type PageDefinition struct {
	id          string
	taskID      string
	title       string
	fields      []string
	fieldSet    map[string]struct{}
	dateFields  []string
	factory     PageFactory
	enrichments []Enrichment
}

// DefinePage records a page's stable id and the fields it owns.
func DefinePage(spec PageSpec) (PageDefinition, error) {
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		return PageDefinition{}, fmt.Errorf("defining page: id is required")
	}
	if spec.New == nil {
		return PageDefinition{}, fmt.Errorf("defining page %s: factory is required", id)
	}

	def := PageDefinition{
		id:          id,
		title:       spec.Title,
		fieldSet:    make(map[string]struct{}),
		dateFields:  append([]string(nil), spec.DateFields...),
		factory:     spec.New,
		enrichments: append([]Enrichment(nil), spec.Enrichments...),
	}

	for _, f := range spec.Fields {
		if f == "" {
			return PageDefinition{}, fmt.Errorf("defining page %s: empty field name", id)
		}
		if _, exists := def.fieldSet[f]; exists {
			return PageDefinition{}, fmt.Errorf("defining page %s: field %s declared twice", id, f)
		}
		def.own(f)
	}
	for _, f := range spec.DateFields {
		for _, name := range append([]string{f}, datePartFields(f)...) {
			if _, exists := def.fieldSet[name]; !exists {
				def.own(name)
			}
		}
	}
	for _, e := range spec.Enrichments {
		if _, exists := def.fieldSet[e.Field]; !exists {
			return PageDefinition{}, fmt.Errorf("defining page %s: enrichment field %s is not declared", id, e.Field)
		}
		if e.Fetch == nil {
			return PageDefinition{}, fmt.Errorf("defining page %s: enrichment %s has no fetch", id, e.Field)
		}
	}

	return def, nil
}

// MustDefinePage panics if the page definition is invalid.
func MustDefinePage(spec PageSpec) PageDefinition {
	def, err := DefinePage(spec)
	if err != nil {
		panic(err)
	}
	return def
}

func (d *PageDefinition) own(field string) {
	d.fieldSet[field] = struct{}{}
	d.fields = append(d.fields, field)
}

// ID returns the page's stable id.
func (d PageDefinition) ID() string { return d.id }

// TaskID returns the id of the owning task, set when the page is added to a
// task.
func (d PageDefinition) TaskID() string { return d.taskID }

// Title returns the page's display title.
func (d PageDefinition) Title() string { return d.title }

// Fields returns the owned field names in declaration order.
func (d PageDefinition) Fields() []string {
	return append([]string(nil), d.fields...)
}

// Owns reports whether field is declared by the page.
func (d PageDefinition) Owns(field string) bool {
	_, ok := d.fieldSet[field]
	return ok
}

// New constructs a page instance with the given body.
func (d PageDefinition) New(body Body, app *Application) (Page, error) {
	if body == nil {
		body = Body{}
	}
	return d.factory(body, app)
}

// Filter returns a copy of body holding only the fields the page owns.
func (d PageDefinition) Filter(body Body) Body {
	out := make(Body, len(d.fields))
	for k, v := range body {
		if d.Owns(k) {
			out[k] = v
		}
	}
	return out
}
