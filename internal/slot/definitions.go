package slot

import "intent-router/internal/model"

const months = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

// intentDefinitions lists slots per intent in extraction order. Patterns are
// case-insensitive.
var intentDefinitions = map[string][]Definition{
	"pharmacy": {
		def("medication_name", model.SlotTypeMedication,
			`(?i)(?:for|refill|get|need)\s+(\w+(?:\s+\w+)?)`,
			`(?i)(\w+)\s+(?:prescription|medication|drug)`),
		def("quantity", model.SlotTypeNumber,
			`(?i)(\d+)\s*(?:day|days|month|months)\s+supply`,
			`(?i)(\d+)\s+(?:pills|tablets|capsules)`),
		def("pharmacy_name", model.SlotTypePharmacy,
			`(?i)(?:at|from|nearest)\s+(CVS|Walgreens|Rite Aid|Costco|Walmart)`,
			`(?i)(CVS|Walgreens|Rite Aid)`),
	},
	"claims": {
		def("claim_number", model.SlotTypeClaimID,
			`(?i)claim\s*(?:#|number|id)?\s*[:\s]?\s*(\w{8,15})`,
			`(?i)(\d{10,15})`),
		def("date_of_service", model.SlotTypeDate,
			`(?i)(?:from|on|dated?)\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
			`(?i)(`+months+`\w*\s+\d{1,2}(?:,?\s+\d{4})?)`),
		def("provider_name", model.SlotTypeProvider,
			`(?i)(?:from|at|with)\s+(?:Dr\.?\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`,
			`(?i)(?:doctor|physician|provider)\s+([A-Z][a-z]+)`),
	},
	"specialist": {
		def("specialty_type", model.SlotTypeSpecialty,
			`(?i)(cardiologist|dermatologist|orthopedic|neurologist|gastroenterologist|oncologist|ENT|urologist|pulmonologist|rheumatologist|endocrinologist)`),
		def("location", model.SlotTypeLocation,
			`(?i)(?:near|in|around)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?(?:,\s*[A-Z]{2})?)`,
			`(?i)(?:zip|zipcode|zip code)\s*[:\s]?\s*(\d{5})`),
	},
	"primaryCareProvider": {
		def("doctor_name", model.SlotTypeProvider,
			`(?i)(?:Dr\.?\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`,
			`(?i)(?:doctor|physician)\s+([A-Z][a-z]+)`),
		def("location", model.SlotTypeLocation,
			`(?i)(?:near|in|around)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`,
			`(?i)(\d{5})`),
	},
	"deductible": {
		def("plan_type", model.SlotTypePlanType,
			`(?i)(individual|family)\s+(?:deductible|plan)`,
			`(?i)(in[- ]?network|out[- ]?of[- ]?network)`),
		def("year", model.SlotTypeYear,
			`(?i)(?:for|in)\s+(20\d{2})`,
			`(?i)(this year|last year|next year)`),
	},
	"eligibility": {
		def("member_type", model.SlotTypeMemberType,
			`(?i)(?:for\s+)?(?:my\s+)?(spouse|child|dependent|self)`,
			`(?i)(family|individual)\s+coverage`),
		def("date", model.SlotTypeDate,
			`(?i)(?:as of|on|starting)\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	},
	"idCard": {
		def("card_type", model.SlotTypeCardType,
			`(?i)(digital|physical|paper|temporary)\s+(?:ID\s+)?card`,
			`(?i)(replacement|new)\s+card`),
		def("member_type", model.SlotTypeMemberType,
			`(?i)(?:for\s+)?(?:my\s+)?(spouse|child|dependent)`),
	},
	"hsa": {
		def("action", model.SlotTypeAction,
			`(?i)(balance|contribution|withdrawal|transfer|investment)`,
			`(?i)(contribute|withdraw|transfer)\s+`),
		def("amount", model.SlotTypeCurrency,
			`(?i)\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`,
			`(?i)(\d+)\s+dollars`),
	},
	"appeals": {
		def("claim_number", model.SlotTypeClaimID,
			`(?i)claim\s*(?:#|number)?\s*[:\s]?\s*(\w{8,15})`),
		def("appeal_type", model.SlotTypeAppealType,
			`(?i)(first level|second level|external|expedited|urgent)\s+(?:appeal|review)`),
	},
	"maternity": {
		def("trimester", model.SlotTypeTrimester,
			`(?i)(first|second|third|1st|2nd|3rd)\s+trimester`,
			`(?i)(\d+)\s+weeks?\s+pregnant`),
		def("service_type", model.SlotTypeService,
			`(?i)(prenatal|delivery|postpartum|ultrasound|c-section|cesarean)`),
	},
}

// commonDefinitions run for every intent after the intent-specific pass.
var commonDefinitions = []Definition{
	defWithConfidence("member_id", model.SlotTypeMemberID, 0.95,
		`(?i)(?:member\s*(?:id|#|number)?|id)[:\s]*([A-Z0-9]{8,12})`),
	defWithConfidence("phone", model.SlotTypePhone, 0.9,
		`(\d{3}[-.]?\d{3}[-.]?\d{4})`),
	defWithConfidence("date", model.SlotTypeDate, 0.8,
		`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	defWithConfidence("amount", model.SlotTypeCurrency, 0.9,
		`\$\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	defWithConfidence("zip_code", model.SlotTypeLocation, 0.85,
		`\b(\d{5})(?:-\d{4})?\b`),
}
