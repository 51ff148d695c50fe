// Package lead defines the Lead domain model and its static option lists.
package lead

import (
	"fmt"
	"strconv"
	"strings"
)

// Lead is a sales prospect record, the sole persisted entity.
// A Lead with ID 0 is a draft: it has not been assigned a server
// identifier yet. Multi-value fields (Tags, AssignedTo, ListName,
// PreferredType, Size, Purposes) are stored as comma-joined strings,
// matching the wire representation.
type Lead struct {
	ID                        int     `json:"id,omitempty"`
	Name                      string  `json:"name,omitempty"`
	Phone                     string  `json:"phone,omitempty"`
	AlternativeContactDetails string  `json:"alternative_contact_details,omitempty"`
	Address                   string  `json:"address,omitempty"`
	AboutHim                  string  `json:"about_him,omitempty"`
	RequirementDescription    string  `json:"requirement_description,omitempty"`
	Note                      string  `json:"note,omitempty"`
	Budget                    float64 `json:"budget,omitempty"`
	PreferredArea             string  `json:"preferred_area,omitempty"`
	PreferredType             string  `json:"preferred_type,omitempty"`
	Size                      string  `json:"size,omitempty"`
	Purposes                  string  `json:"purposes,omitempty"`
	Stage                     string  `json:"stage,omitempty"`
	Priority                  int     `json:"priority,omitempty"`
	NextAction                string  `json:"next_action,omitempty"`
	NextActionTime            string  `json:"next_action_time,omitempty"`
	NextActionNote            string  `json:"next_action_note,omitempty"`
	InterestedIn              string  `json:"interested_in,omitempty"`
	Intent                    int     `json:"intent,omitempty"`
	NotInterestedIn           string  `json:"not_interested_in,omitempty"`
	AssignedTo                string  `json:"assigned_to,omitempty"`
	Source                    string  `json:"source,omitempty"`
	Medium                    string  `json:"medium,omitempty"`
	Placement                 string  `json:"placement,omitempty"`
	ListName                  string  `json:"list_name,omitempty"`
	Tags                      string  `json:"tags,omitempty"`
	Data1                     string  `json:"data_1,omitempty"`
	Data2                     string  `json:"data_2,omitempty"`
	Data3                     string  `json:"data_3,omitempty"`
	Segment                   string  `json:"segment,omitempty"`
	CreatedAt                 string  `json:"created_at,omitempty"`
	UpdatedAt                 string  `json:"updated_at,omitempty"`
	Hidden                    bool    `json:"hidden,omitempty"`
}

// Field names as they appear on the wire. Used for partial-update
// bookkeeping, sort keys, and the webhook tracked-field policy.
const (
	FieldID                        = "id"
	FieldName                      = "name"
	FieldPhone                     = "phone"
	FieldAlternativeContactDetails = "alternative_contact_details"
	FieldAddress                   = "address"
	FieldAboutHim                  = "about_him"
	FieldRequirementDescription    = "requirement_description"
	FieldNote                      = "note"
	FieldBudget                    = "budget"
	FieldPreferredArea             = "preferred_area"
	FieldPreferredType             = "preferred_type"
	FieldSize                      = "size"
	FieldPurposes                  = "purposes"
	FieldStage                     = "stage"
	FieldPriority                  = "priority"
	FieldNextAction                = "next_action"
	FieldNextActionTime            = "next_action_time"
	FieldNextActionNote            = "next_action_note"
	FieldInterestedIn              = "interested_in"
	FieldIntent                    = "intent"
	FieldNotInterestedIn           = "not_interested_in"
	FieldAssignedTo                = "assigned_to"
	FieldSource                    = "source"
	FieldMedium                    = "medium"
	FieldPlacement                 = "placement"
	FieldListName                  = "list_name"
	FieldTags                      = "tags"
	FieldData1                     = "data_1"
	FieldData2                     = "data_2"
	FieldData3                     = "data_3"
	FieldSegment                   = "segment"
	FieldCreatedAt                 = "created_at"
	FieldUpdatedAt                 = "updated_at"
)

// IsDraft reports whether the lead has not been persisted yet.
func (l Lead) IsDraft() bool {
	return l.ID == 0
}

// Get returns the string rendering of a field for editing and display.
// Numeric fields render empty when zero, matching the original's
// null-as-absent behavior.
func (l Lead) Get(field string) string {
	switch field {
	case FieldID:
		if l.ID == 0 {
			return ""
		}
		return strconv.Itoa(l.ID)
	case FieldName:
		return l.Name
	case FieldPhone:
		return l.Phone
	case FieldAlternativeContactDetails:
		return l.AlternativeContactDetails
	case FieldAddress:
		return l.Address
	case FieldAboutHim:
		return l.AboutHim
	case FieldRequirementDescription:
		return l.RequirementDescription
	case FieldNote:
		return l.Note
	case FieldBudget:
		if l.Budget == 0 {
			return ""
		}
		return strconv.FormatFloat(l.Budget, 'f', -1, 64)
	case FieldPreferredArea:
		return l.PreferredArea
	case FieldPreferredType:
		return l.PreferredType
	case FieldSize:
		return l.Size
	case FieldPurposes:
		return l.Purposes
	case FieldStage:
		return l.Stage
	case FieldPriority:
		if l.Priority == 0 {
			return ""
		}
		return strconv.Itoa(l.Priority)
	case FieldNextAction:
		return l.NextAction
	case FieldNextActionTime:
		return l.NextActionTime
	case FieldNextActionNote:
		return l.NextActionNote
	case FieldInterestedIn:
		return l.InterestedIn
	case FieldIntent:
		if l.Intent == 0 {
			return ""
		}
		return strconv.Itoa(l.Intent)
	case FieldNotInterestedIn:
		return l.NotInterestedIn
	case FieldAssignedTo:
		return l.AssignedTo
	case FieldSource:
		return l.Source
	case FieldMedium:
		return l.Medium
	case FieldPlacement:
		return l.Placement
	case FieldListName:
		return l.ListName
	case FieldTags:
		return l.Tags
	case FieldData1:
		return l.Data1
	case FieldData2:
		return l.Data2
	case FieldData3:
		return l.Data3
	case FieldSegment:
		return l.Segment
	case FieldCreatedAt:
		return l.CreatedAt
	case FieldUpdatedAt:
		return l.UpdatedAt
	default:
		return ""
	}
}

// Set assigns a field from its string rendering. Numeric fields are
// parsed; an empty string clears them.
func (l *Lead) Set(field, value string) error {
	switch field {
	case FieldName:
		l.Name = value
	case FieldPhone:
		l.Phone = value
	case FieldAlternativeContactDetails:
		l.AlternativeContactDetails = value
	case FieldAddress:
		l.Address = value
	case FieldAboutHim:
		l.AboutHim = value
	case FieldRequirementDescription:
		l.RequirementDescription = value
	case FieldNote:
		l.Note = value
	case FieldBudget:
		if value == "" {
			l.Budget = 0
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("parsing budget: %w", err)
		}
		l.Budget = f
	case FieldPreferredArea:
		l.PreferredArea = value
	case FieldPreferredType:
		l.PreferredType = value
	case FieldSize:
		l.Size = value
	case FieldPurposes:
		l.Purposes = value
	case FieldStage:
		l.Stage = value
	case FieldPriority:
		if value == "" {
			l.Priority = 0
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing priority: %w", err)
		}
		l.Priority = n
	case FieldNextAction:
		l.NextAction = value
	case FieldNextActionTime:
		l.NextActionTime = value
	case FieldNextActionNote:
		l.NextActionNote = value
	case FieldInterestedIn:
		l.InterestedIn = value
	case FieldIntent:
		if value == "" {
			l.Intent = 0
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing intent: %w", err)
		}
		l.Intent = n
	case FieldNotInterestedIn:
		l.NotInterestedIn = value
	case FieldAssignedTo:
		l.AssignedTo = value
	case FieldSource:
		l.Source = value
	case FieldMedium:
		l.Medium = value
	case FieldPlacement:
		l.Placement = value
	case FieldListName:
		l.ListName = value
	case FieldTags:
		l.Tags = value
	case FieldData1:
		l.Data1 = value
	case FieldData2:
		l.Data2 = value
	case FieldData3:
		l.Data3 = value
	case FieldSegment:
		l.Segment = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// SplitList splits a comma-joined multi-value field into its parts,
// trimming whitespace and dropping empties.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList joins values into the comma-joined wire representation.
func JoinList(values []string) string {
	return strings.Join(values, ",")
}
