// Package slot extracts typed parameters from an utterance with per-intent
// pattern tables plus a pass of intent-agnostic common entities.
package slot

import "intent-router/internal/model"

// Extractor is stateless and safe for concurrent use.
type Extractor struct {
	intents map[string][]Definition
	common  []Definition
}

func New() *Extractor {
	return &Extractor{
		intents: intentDefinitions,
		common:  commonDefinitions,
	}
}

// Extract fills each slot of the intent at most once, then the common slots.
// A common slot never replaces an intent-specific slot of the same name.
func (x *Extractor) Extract(utterance, intent string) model.SlotMap {
	slots := make(model.SlotMap)

	for _, d := range x.intents[intent] {
		x.fill(slots, d, utterance)
	}
	for _, d := range x.common {
		x.fill(slots, d, utterance)
	}

	return slots
}

func (x *Extractor) fill(slots model.SlotMap, d Definition, utterance string) {
	if _, done := slots[d.Name]; done {
		return
	}
	value, ok := d.match(utterance)
	if !ok {
		return
	}
	slots[d.Name] = model.SlotValue{
		Value:      value,
		Type:       d.Type,
		Confidence: d.Confidence,
		Source:     model.SlotSourceExtracted,
	}
}

// MissingRequired lists, in definition order, every slot of the intent absent from filled.
func (x *Extractor) MissingRequired(intent string, filled model.SlotMap) []model.MissingSlot {
	missing := []model.MissingSlot{}
	for _, d := range x.intents[intent] {
		if _, ok := filled[d.Name]; ok {
			continue
		}
		missing = append(missing, model.MissingSlot{
			Name:   d.Name,
			Type:   d.Type,
			Prompt: Prompt(d.Name),
		})
	}
	return missing
}

// Definitions returns the slots defined for intent; nil when it has none.
func (x *Extractor) Definitions(intent string) []Definition {
	defs := x.intents[intent]
	if len(defs) == 0 {
		return nil
	}
	return append([]Definition(nil), defs...)
}

// Merge overlays fresh extractions on remembered slots. Values carried over
// from memory are tagged SlotSourceRemembered; nothing is deleted.
func Merge(remembered, fresh model.SlotMap) model.SlotMap {
	out := make(model.SlotMap, len(remembered)+len(fresh))
	for k, v := range remembered {
		v.Source = model.SlotSourceRemembered
		out[k] = v
	}
	for k, v := range fresh {
		out[k] = v
	}
	return out
}
