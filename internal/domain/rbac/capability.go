package rbac

import "encoding/json"

// Capability is the (read, write, masked) triple attached to one field.
// The fields are unexported so a writable-but-unreadable capability
// cannot be constructed: New drops write and masked when read is false,
// and Write reports true only when the field is also readable.
type Capability struct {
	read   bool
	write  bool
	masked bool
}

// New builds a capability, failing closed: without read there is no
// write and no mask.
func New(read, write, masked bool) Capability {
	if !read {
		return Capability{}
	}
	return Capability{read: read, write: write, masked: masked}
}

// Read reports whether the field value may be shown at all.
func (c Capability) Read() bool { return c.read }

// Write reports whether the field accepts edits. A field is never
// writable without being readable.
func (c Capability) Write() bool { return c.read && c.write }

// Masked reports whether the value must be partially redacted on display.
func (c Capability) Masked() bool { return c.read && c.masked }

func (c Capability) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Read   bool `json:"read"`
		Write  bool `json:"write"`
		Masked bool `json:"masked"`
	}{c.Read(), c.Write(), c.Masked()})
}

// The four capability levels the policy tables are built from.
var (
	fullAccess = New(true, true, false)
	readOnly   = New(true, false, false)
	maskedRead = New(true, false, true)
	noAccess   = Capability{}
)
