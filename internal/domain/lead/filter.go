package lead

import "encoding/json"

// Filter holds optional criteria for listing leads.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Stage      Stage
	AssignedTo string
}

// Reference collections returned next to the lead list. The board never looks
// inside them.
const (
	RefContacts   = "contacts"
	RefTags       = "tags"
	RefUsers      = "users"
	RefIndustries = "industries"
)

// Listing is one page of leads plus the auxiliary reference data that came
// with it.
type Listing struct {
	Leads     []Lead
	Reference map[string]json.RawMessage
}
