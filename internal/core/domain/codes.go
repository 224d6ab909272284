package domain

// NavigationStatusLabels maps the AIS navigation status field to its label.
// Code 13 is reserved and intentionally absent.
var NavigationStatusLabels = map[int]string{
	0:  "Under way using engine",
	1:  "At anchor",
	2:  "Not under command",
	3:  "Restricted maneuverability",
	4:  "Constrained by draft",
	5:  "Moored",
	6:  "Aground",
	7:  "Engaged in fishing",
	8:  "Under way sailing",
	9:  "Reserved for future use",
	10: "Reserved for future use",
	11: "Power-driven vessel towing astern",
	12: "Power-driven vessel pushing ahead/towing alongside",
	14: "AIS-SART, MOB-AIS, EPIRB-AIS",
	15: "Undefined",
}

// MessageTypeLabels maps the AIS message type to its ITU-R M.1371 name.
var MessageTypeLabels = map[int]string{
	1:  "Position Report (Class A)",
	2:  "Position Report (Class A, Assigned Schedule)",
	3:  "Position Report (Class A, Special)",
	4:  "Base Station Report",
	5:  "Static and Voyage Related Data",
	6:  "Binary Addressed Message",
	7:  "Binary Acknowledge",
	8:  "Binary Broadcast Message",
	9:  "Standard SAR Aircraft Position Report",
	10: "UTC and Date Inquiry",
	11: "UTC and Date Response",
	12: "Addressed Safety-Related Message",
	13: "Safety-Related Acknowledge",
	14: "Safety-Related Broadcast Message",
	15: "Interrogation",
	16: "Assignment Mode Command",
	17: "DGNSS Binary Broadcast Message",
	18: "Standard Class B CS Position Report",
	19: "Extended Class B Equipment Position Report",
	20: "Data Link Management Message",
	21: "Aid-to-Navigation Report",
	22: "Channel Management",
	23: "Group Assignment Command",
	24: "Static Data Report",
	25: "Single Slot Binary Message",
	26: "Multiple Slot Binary Message with Communication State",
	27: "Long Range AIS Broadcast Message",
}

// NavigationStatusLabel returns "" for codes outside the table.
func NavigationStatusLabel(code int) string {
	return NavigationStatusLabels[code]
}

// MessageTypeLabel returns "" for codes outside the table.
func MessageTypeLabel(code int) string {
	return MessageTypeLabels[code]
}
