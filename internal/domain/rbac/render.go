package rbac

// RedactedPlaceholder replaces values the viewer may not read. It is
// visually distinct from EmptyPlaceholder so "no access" never looks
// like "empty".
const (
	RedactedPlaceholder = "••••••••"
	EmptyPlaceholder    = "-"
)

// MaskFunc transforms a readable value into its partially redacted form.
type MaskFunc func(string) string

// DisplayValue renders one field value under a capability. Unreadable
// values never escape: the placeholder comes back instead, regardless of
// the input. Masking applies only when the capability asks for it and a
// mask function is supplied.
func DisplayValue(value string, cap Capability, mask MaskFunc) string {
	if !cap.Read() {
		return RedactedPlaceholder
	}
	if value == "" {
		return EmptyPlaceholder
	}
	if cap.Masked() && mask != nil {
		return mask(value)
	}
	return value
}

// Editable reports whether a field should accept input. Both the write
// capability and an active editing mode are required.
func Editable(cap Capability, isEditing bool) bool {
	return cap.Write() && isEditing
}
