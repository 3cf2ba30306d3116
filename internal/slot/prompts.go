package slot

import (
	"fmt"
	"strings"
)

var slotPrompts = map[string]string{
	"medication_name": "What medication do you need help with?",
	"claim_number":    "Can you provide the claim number?",
	"date_of_service": "What was the date of service?",
	"provider_name":   "What is the provider or doctor's name?",
	"specialty_type":  "What type of specialist are you looking for?",
	"location":        "What is your location or zip code?",
	"doctor_name":     "What is the doctor's name?",
	"plan_type":       "Is this for individual or family coverage?",
	"member_type":     "Is this for yourself or a dependent?",
	"amount":          "What amount would you like to contribute/withdraw?",
}

// Prompt returns the question to ask for a missing slot.
func Prompt(name string) string {
	if p, ok := slotPrompts[name]; ok {
		return p
	}
	return fmt.Sprintf("Please provide the %s.", strings.ReplaceAll(name, "_", " "))
}
