// internal/restaurant/errors.go
//
// Validation error taxonomy.
//
// Context
// -------
// Validate fails fast: the first broken invariant aborts the whole load,
// and the resulting *ValidationError carries both a machine-checkable kind
// and the offending field path so the fallback page can show operators
// exactly what to fix.  Messages are customer-market French, matching the
// rest of the product copy.

package restaurant

import "fmt"

// ErrorKind discriminates validation failures.
type ErrorKind string

const (
	KindMissingField    ErrorKind = "missing_field"
	KindInvalidMenu     ErrorKind = "invalid_menu"
	KindInvalidCategory ErrorKind = "invalid_category"
	KindInvalidItem     ErrorKind = "invalid_item"
	KindUnknownTemplate ErrorKind = "unknown_template"
)

// ValidationError is returned by Validate.  Field is a dotted path into the
// source document ("contact.whatsapp", "menu.categories[2].items[0].price").
type ValidationError struct {
	Kind   ErrorKind
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Detail)
}

//
// constructors (kept package-private; Validate is the only producer)
//

func missingField(path string) *ValidationError {
	return &ValidationError{
		Kind:   KindMissingField,
		Field:  path,
		Detail: "champ obligatoire manquant",
	}
}

func invalidMenu(detail string) *ValidationError {
	return &ValidationError{Kind: KindInvalidMenu, Field: "menu.categories", Detail: detail}
}

func invalidCategory(index int, detail string) *ValidationError {
	return &ValidationError{
		Kind:   KindInvalidCategory,
		Field:  fmt.Sprintf("menu.categories[%d]", index),
		Detail: detail,
	}
}

func invalidItem(category string, index int, detail string) *ValidationError {
	return &ValidationError{
		Kind:   KindInvalidItem,
		Field:  fmt.Sprintf("menu.categories[%q].items[%d]", category, index),
		Detail: detail,
	}
}

func unknownTemplate(name string) *ValidationError {
	return &ValidationError{
		Kind:   KindUnknownTemplate,
		Field:  "appearance.template",
		Detail: fmt.Sprintf("template %q introuvable", name),
	}
}
