package catalog

// Describe returns the user-facing phrase for an intent, or the raw name when
// the intent has no curated description.
func Describe(intent string) string {
	switch intent {
	case "pharmacy":
		return "prescription or medication refills"
	case "precert":
		return "prior authorization for a procedure"
	case "claims":
		return "claim status or submission"
	case "benefits":
		return "coverage and benefit information"
	case "eligibility":
		return "enrollment or coverage status"
	case "deductible":
		return "deductible amount or status"
	case "copay":
		return "copay amounts"
	case "coinsurance":
		return "coinsurance percentages"
	case "outOfPocketMax":
		return "out-of-pocket maximum"
	case "idCard":
		return "insurance ID card"
	case "primaryCareProvider":
		return "primary care doctor (PCP)"
	case "specialist":
		return "specialist referral or search"
	case "urgentCare":
		return "urgent care locations"
	case "emergencyRoom":
		return "emergency room coverage"
	case "telemedicine":
		return "virtual or telehealth visits"
	case "behavioralHealth":
		return "mental health services"
	case "behavioralEmergency":
		return "mental health crisis support"
	case "dental":
		return "dental coverage"
	case "vision":
		return "vision coverage"
	case "hsa":
		return "Health Savings Account (HSA)"
	case "fsa":
		return "Flexible Spending Account (FSA)"
	case "hra":
		return "Health Reimbursement Arrangement (HRA)"
	case "appeals":
		return "appeal a claim denial"
	case "maternity":
		return "pregnancy and maternity coverage"
	case "24HourNurseLine":
		return "24-hour nurse advice line"
	default:
		return intent
	}
}
