package model

// SlotSource tells whether a slot came from the current utterance or session memory.
type SlotSource string

const (
	SlotSourceExtracted  SlotSource = "extracted"
	SlotSourceRemembered SlotSource = "remembered"
)

// SlotType tags the kind of entity a slot holds.
type SlotType string

const (
	SlotTypeMedication SlotType = "medication"
	SlotTypeNumber     SlotType = "number"
	SlotTypePharmacy   SlotType = "pharmacy"
	SlotTypeClaimID    SlotType = "claim_id"
	SlotTypeDate       SlotType = "date"
	SlotTypeProvider   SlotType = "provider"
	SlotTypeSpecialty  SlotType = "specialty"
	SlotTypeLocation   SlotType = "location"
	SlotTypePlanType   SlotType = "plan_type"
	SlotTypeYear       SlotType = "year"
	SlotTypeMemberType SlotType = "member_type"
	SlotTypeCardType   SlotType = "card_type"
	SlotTypeAction     SlotType = "action"
	SlotTypeCurrency   SlotType = "currency"
	SlotTypeAppealType SlotType = "appeal_type"
	SlotTypeTrimester  SlotType = "trimester"
	SlotTypeService    SlotType = "service"
	SlotTypeMemberID   SlotType = "member_id"
	SlotTypePhone      SlotType = "phone"
)

// SlotValue is one extracted or remembered entity.
type SlotValue struct {
	Value      string     `json:"value"`
	Type       SlotType   `json:"type"`
	Confidence float64    `json:"confidence"`
	Source     SlotSource `json:"source"`
}

// SlotMap is keyed by slot name.
type SlotMap map[string]SlotValue

// Clone returns an independent copy. A nil map clones to an empty map.
func (m SlotMap) Clone() SlotMap {
	out := make(SlotMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MissingSlot is a required slot not yet filled, with the question to ask for it.
type MissingSlot struct {
	Name   string   `json:"slot_name"`
	Type   SlotType `json:"type"`
	Prompt string   `json:"prompt"`
}
