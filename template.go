package actlog

// Shape selects which message template is used for a record.
type Shape int

const (
	// ShapeEntry is the template for the start of an activity.
	ShapeEntry Shape = iota
	// ShapeExit is the template for the end of an activity with a
	// computed duration.
	ShapeExit
	// ShapeExitNoDur is the template for the end of an activity where
	// timing was not tracked.
	ShapeExitNoDur
	// ShapeEvent is the template for a standalone event.
	ShapeEvent
)

// DefaultSectionSeparator sits between the templated message prefix and
// the encoded key=value fragment.
const DefaultSectionSeparator = " ; "

// TemplateSet holds the four message templates, one per Shape. Templates
// may contain the named placeholders {timestamp}, {func_name}, {dur},
// {kvp}, and {status}. The default sets omit {status}; it is available
// to custom templates and expands to the record's status code.
type TemplateSet struct {
	Entry     string
	Exit      string
	ExitNoDur string
	Event     string
}

// For returns the template for shape.
func (s TemplateSet) For(shape Shape) string {
	switch shape {
	case ShapeEntry:
		return s.Entry
	case ShapeExit:
		return s.Exit
	case ShapeExitNoDur:
		return s.ExitNoDur
	default:
		return s.Event
	}
}

// DefaultTemplates returns the fixed template family for the given
// timestamp mode using the default section separator.
func DefaultTemplates(withTimestamp bool) TemplateSet {
	return TemplatesWithSeparator(withTimestamp, DefaultSectionSeparator)
}

// TemplatesWithSeparator builds a template family with a custom section
// separator between the message prefix and the key=value fragment.
func TemplatesWithSeparator(withTimestamp bool, sectionSep string) TemplateSet {
	if withTimestamp {
		return TemplateSet{
			Entry:     "{timestamp} {func_name}.begin" + sectionSep + "{kvp}",
			Exit:      "{timestamp} {func_name}.end ({dur})" + sectionSep + "{kvp}",
			ExitNoDur: "{timestamp} {func_name}.end" + sectionSep + "{kvp}",
			Event:     "{timestamp} {func_name}" + sectionSep + "{kvp}",
		}
	}
	return TemplateSet{
		Entry:     "{func_name}.begin" + sectionSep + "{kvp}",
		Exit:      "{func_name}.end ({dur})" + sectionSep + "{kvp}",
		ExitNoDur: "{func_name}.end" + sectionSep + "{kvp}",
		Event:     "{func_name}" + sectionSep + "{kvp}",
	}
}
