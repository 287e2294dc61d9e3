package reflectdesc

import (
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/schemakit/schemakit/descriptor"
)

// parseMemberTag parses the `schema` struct tag into an annotation set.
// Supported items, comma-separated:
//
//	description=TEXT
//	title=TEXT
//	order=N
//	format=TYPE or format=TYPE:FORMAT
//	hide
//	multiselect
//	unique=BOOL   (multi-select parameter, defaults true)
//	create=BOOL   (multi-select parameter, defaults true)
//
// Malformed values degrade to "no override present" rather than failing;
// the skipped item is logged so type authors can spot the typo.
// TODO description/title cannot contain a comma; needs a quoted-value parser.
func parseMemberTag(owner reflect.Type, field reflect.StructField) descriptor.AnnotationSet {
	tag := field.Tag.Get("schema")
	if tag == "" {
		return nil
	}

	var set descriptor.AnnotationSet
	multiSelect := descriptor.NewMultiSelect()
	hasMultiSelect := false

	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		key = strings.TrimSpace(key)

		switch {
		case key == "hide" && !hasValue:
			set = set.Merge(descriptor.Hide{})
		case key == "multiselect" && !hasValue:
			hasMultiSelect = true
		case key == "description" && hasValue:
			set = set.Merge(descriptor.Description{Text: value})
		case key == "title" && hasValue:
			set = set.Merge(descriptor.Title{Text: value})
		case key == "order" && hasValue:
			rank, err := strconv.Atoi(value)
			if err != nil {
				logTagError(owner, field, item, err)
				continue
			}
			set = set.Merge(descriptor.Order{Rank: rank})
		case key == "format" && hasValue:
			schemaType, format, _ := strings.Cut(value, ":")
			if schemaType == "" {
				logTagError(owner, field, item, strconv.ErrSyntax)
				continue
			}
			set = set.Merge(descriptor.FormatAs{Type: schemaType, Format: format})
		case key == "unique" && hasValue:
			unique, err := strconv.ParseBool(value)
			if err != nil {
				logTagError(owner, field, item, err)
				continue
			}
			hasMultiSelect = true
			multiSelect.UniqueItems = unique
		case key == "create" && hasValue:
			create, err := strconv.ParseBool(value)
			if err != nil {
				logTagError(owner, field, item, err)
				continue
			}
			hasMultiSelect = true
			multiSelect.CreateIfNoneMatches = create
		default:
			slog.Warn("unknown schema tag item",
				"type", owner.String(), "field", field.Name, "item", item)
		}
	}

	if hasMultiSelect {
		set = set.Merge(multiSelect)
	}
	return set
}

func logTagError(owner reflect.Type, field reflect.StructField, item string, err error) {
	slog.Warn("malformed schema tag item, ignoring",
		"type", owner.String(), "field", field.Name, "item", item, "error", err)
}
