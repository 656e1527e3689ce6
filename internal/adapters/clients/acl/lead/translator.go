package lead

import (
	"encoding/json"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	domlead "github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// ToDomainLead converts a LeadDTO. ok is false when the record cannot sit on
// the board: no id, or a status outside the six pipeline stages.
func ToDomainLead(dto *LeadDTO) (domlead.Lead, bool) {
	stage, err := domlead.ParseStage(dto.Status)
	if err != nil || strings.TrimSpace(string(dto.ID)) == "" {
		return domlead.Lead{}, false
	}

	l := domlead.Lead{
		ID:          string(dto.ID),
		Stage:       stage,
		Amount:      dto.OpportunityAmount,
		Probability: dto.Probability,
		Display:     dto.Extra,
	}
	if dto.AssignedTo != nil && *dto.AssignedTo != "" {
		owner := string(*dto.AssignedTo)
		l.OwnerID = &owner
	}
	if l.Validate() != nil {
		return domlead.Lead{}, false
	}
	return l, true
}

// ToDomainListing converts a list response. Records that do not translate
// are dropped and counted in skipped.
func ToDomainListing(dto *ListResponseDTO) (listing domlead.Listing, skipped int) {
	listing.Leads = make([]domlead.Lead, 0, len(dto.Leads))
	for i := range dto.Leads {
		l, ok := ToDomainLead(&dto.Leads[i])
		if !ok {
			skipped++
			continue
		}
		listing.Leads = append(listing.Leads, l)
	}

	listing.Reference = make(map[string]json.RawMessage, 4)
	for name, raw := range map[string]json.RawMessage{
		domlead.RefContacts:   dto.Contacts,
		domlead.RefTags:       dto.Tags,
		domlead.RefUsers:      dto.Users,
		domlead.RefIndustries: dto.Industries,
	} {
		if len(raw) > 0 {
			listing.Reference[name] = raw
		}
	}
	return listing, skipped
}

// ToUpdateStatusRequest builds the body for a stage change.
func ToUpdateStatusRequest(stage domlead.Stage) UpdateStatusRequestDTO {
	return UpdateStatusRequestDTO{Status: stage.String()}
}

// ToDomainCaller converts a profile payload. Role matching is case-insensitive.
func ToDomainCaller(dto *ProfileDTO) caller.Caller {
	role := caller.Role(strings.ToUpper(strings.TrimSpace(dto.Role)))
	return caller.Caller{Role: role, ProfileID: string(dto.ID)}
}
