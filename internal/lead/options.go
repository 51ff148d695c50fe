package lead

// Priority pairs a numeric priority with its display label.
type Priority struct {
	Value int
	Label string
}

// Static dropdown option lists. These mirror the operational vocabulary
// of the sales team and are not fetched from the server.
var (
	Stages = []string{
		"Fresh",
		"Not Connected Yet",
		"General Enquiry",
		"Engaged",
		"High Engagement",
		"Waiting for Match",
		"Match Found",
		"Visit Planned",
		"Visit Completed",
		"Awaiting Decision",
		"Exploring Other Options",
		"In Negotiation",
		"Deal Finalized",
		"Token Received",
		"Registry Pending",
		"Deal Closed",
		"Low Bids",
		"Unrealstic Requirement",
		"Other",
		"Requirement Closed",
		"Invalid",
		"Lost",
	}

	NextActions = []string{
		"Take All Details",
		"Find Match",
		"Follow-up",
		"Schedule Meeting",
		"Exercise Visit",
		"Finalize",
		"Get Meeting Feedback",
		"Take Token",
		"Share Details to Partner",
		"Send Details",
		"Get Status from Partner",
		"Nothing",
		"-",
	}

	PropertyTypes = []string{
		"Plot Residential",
		"House",
		"House or Plot",
		"Shop",
		"Colony",
		"Flats",
		"Agriculture Land",
		"Free Zone Land",
		"Godown",
		"Factory",
		"Big Commercial",
		"Plot Industrial",
		"Other",
		"Any",
		"Multiple",
	}

	Sizes = []string{
		"Below 50 Gaj",
		"50 to 70 Gaj",
		"70 to 90 Gaj",
		"90 to 110 Gaj",
		"110 to 140 Gaj",
		"140 to 180 Gaj",
		"180 to 210 Gaj",
		"210 to 250 Gaj",
		"250 to 300 Gaj",
		"300 Gaj+",
	}

	Purposes = []string{
		"Living",
		"Investment",
		"Rental Income",
		"Farming",
		"Business",
		"Development",
		"Other",
	}

	// NextActionTimes are the relative-window presets the list API
	// understands for the next_action_time filter. A concrete date
	// (yyyy-mm-dd) is also accepted in place of a preset.
	NextActionTimes = []string{
		"set",
		"not_set",
		"today",
		"upcoming_3_days",
		"upcoming_7_days",
		"this_month",
	}

	// IntentScores is the 1..10 engagement scale.
	IntentScores = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

	Priorities = []Priority{
		{Value: 1, Label: "Low"},
		{Value: 2, Label: "Medium"},
		{Value: 3, Label: "High"},
	}

	Segments = []string{"Panipat", "Panipat Premium", "Other", "Rohtak"}

	SuggestedTags = []string{
		"Meeting Done",
		"Hot Lead",
		"VIP",
		"Urgent",
		"Follow Up",
		"Premium",
		"Budget Sensitive",
		"Ready to Move",
		"Investment",
		"End User",
	}

	Sources = []string{
		"M3M Website Ads",
		"M3M Website Organic",
		"Instagram Ads",
		"Instagram Organic",
		"Facebook",
		"ManyChats",
		"Youtube",
		"Other Internet",
		"Personal Network",
		"Random Person",
		"Broker Network",
		"Other",
	}

	Mediums = []string{
		"Call",
		"Whatsapp",
		"Instagram Dm",
		"Website Lead",
		"Facebook DM",
		"In Market",
		"Other",
	}

	ListNames = []string{
		"Primary",
		"Secondary",
		"Premium",
		"VIP",
		"General",
		"Follow Up",
		"Cold",
		"Archive",
	}

	Placements = []string{
		"Homepage",
		"Landing Page",
		"Search Results",
		"Property Page",
		"Blog Post",
		"Social Media Ad",
		"Google Ad",
		"Email Campaign",
	}

	Assignees = []string{
		"Ygs",
		"Rinku Modal Town",
		"Sharvan",
		"Narender",
		"Parmod",
		"Yogesh",
		"Mohit",
		"Uptown Team",
		"Deepak",
		"Komal",
	}
)

// PriorityLabel returns the display label for a numeric priority,
// or "-" when unset or out of range.
func PriorityLabel(value int) string {
	for _, p := range Priorities {
		if p.Value == value {
			return p.Label
		}
	}
	return "-"
}

// NewDraft returns a draft lead pre-filled with the team's default
// values for a fresh enquiry.
func NewDraft() Lead {
	return Lead{
		Stage:      "General Enquiry",
		Priority:   1,
		NextAction: "Take All Details",
		Intent:     5,
		Segment:    "Panipat",
		Source:     "Instagram Organic",
		Medium:     "Call",
	}
}
