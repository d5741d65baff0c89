package form

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate runs a page's error check. An empty map means the page is valid.
// The page's body and the application are never modified.
func Validate(p Page) map[string]string {
	errs := p.Errors()
	if errs == nil {
		return map[string]string{}
	}
	return errs
}

// Rules maps scalar body fields to go-playground/validator tags, for
// example "required,oneof=yes no".
type Rules map[string]string

var rulesValidator = validator.New()

// CheckRules validates body against rules and returns field -> message for
// every failing field, using messages[field] as the message. String values
// are trimmed first, so a blank answer fails "required". A ruled field
// holding a list or record is reported as invalid.
func CheckRules(body Body, rules Rules, messages map[string]string) map[string]string {
	errs := make(map[string]string)
	data := make(map[string]any, len(rules))
	tags := make(map[string]any, len(rules))

	for field, tag := range rules {
		switch v := body[field].(type) {
		case nil:
			data[field] = v
		case string:
			data[field] = strings.TrimSpace(v)
		case float64, int, bool:
			data[field] = fmt.Sprint(v)
		default:
			errs[field] = message(messages, field)
			continue
		}
		tags[field] = tag
	}

	for field := range rulesValidator.ValidateMap(data, tags) {
		errs[field] = message(messages, field)
	}
	return errs
}

func message(messages map[string]string, field string) string {
	if m, ok := messages[field]; ok {
		return m
	}
	return fmt.Sprintf("Enter a valid value for %s", field)
}

// Merge folds several error maps into one. Earlier maps win on conflicts.
func Merge(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}
	return out
}
