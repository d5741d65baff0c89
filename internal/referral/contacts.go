package referral

import (
	"fmt"
	"strings"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

// contactConfig parameterises the shared contact page.
type contactConfig struct {
	id       string
	title    string
	previous string
	next     string
	question string
}

var contactFields = []string{"name", "email", "phone"}

// contactSpec builds a single-contact page. Each contact page differs only
// in its title, navigation and review heading.
func contactSpec(cfg contactConfig) form.PageSpec {
	return form.PageSpec{
		ID:     cfg.id,
		Title:  cfg.title,
		Fields: contactFields,
		New: func(body form.Body, _ *form.Application) (form.Page, error) {
			return &contactPage{body: body, cfg: cfg}, nil
		},
	}
}

type contactPage struct {
	body form.Body
	cfg  contactConfig
}

func (p *contactPage) Body() form.Body { return p.body }

func (p *contactPage) Errors() map[string]string { return contactErrors(p.body) }

func (p *contactPage) Previous() string { return p.cfg.previous }

func (p *contactPage) Next() string { return p.cfg.next }

func (p *contactPage) Response() (form.Response, error) {
	var r form.Response
	r.Set(p.cfg.question, contactSummary(p.body))
	return r, nil
}

// contactErrors validates a contact block.
func contactErrors(body form.Body) map[string]string {
	errs := form.CheckRules(body, form.Rules{
		"name":  "required",
		"phone": "required",
		"email": "required",
	}, map[string]string{
		"name":  "Enter a name",
		"phone": "Enter a phone number",
		"email": "Enter an email address",
	})
	if _, ok := errs["email"]; ok {
		return errs
	}
	return form.Merge(errs, form.CheckRules(body, form.Rules{"email": "email"}, map[string]string{
		"email": "Enter an email address in the correct format, like name@example.com",
	}))
}

// contactSummary renders a contact block as one line.
func contactSummary(body form.Body) string {
	parts := make([]string, 0, len(contactFields))
	for _, f := range contactFields {
		if v := strings.TrimSpace(body.String(f)); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

type otherContacts struct {
	body form.Body
}

func otherContactsSpec() form.PageSpec {
	return form.PageSpec{
		ID:     PageOtherContacts,
		Title:  "Other contacts",
		Fields: []string{"contacts"},
		New: func(body form.Body, _ *form.Application) (form.Page, error) {
			return &otherContacts{body: body}, nil
		},
	}
}

func (p *otherContacts) Body() form.Body { return p.body }

func (p *otherContacts) Errors() map[string]string {
	errs := map[string]string{}
	if !p.body.IsRecordList("contacts") {
		errs["contacts"] = "Enter the other contacts as a list"
		return errs
	}
	for i, c := range p.body.Records("contacts") {
		if strings.TrimSpace(c.String("name")) == "" || strings.TrimSpace(c.String("phone")) == "" {
			errs["contacts"] = fmt.Sprintf("Enter a name and phone number for contact %d", i+1)
			break
		}
	}
	return errs
}

func (p *otherContacts) Previous() string { return PageBackupContact }

func (p *otherContacts) Next() string { return "" }

func (p *otherContacts) Response() (form.Response, error) {
	var r form.Response
	r.Records("Other contacts", p.body.Records("contacts"), func(c form.Body) form.Response {
		var sub form.Response
		sub.Text("Name", c, "name")
		sub.Text("Relationship", c, "relationship")
		sub.Text("Phone number", c, "phone")
		return sub
	})
	return r, nil
}
