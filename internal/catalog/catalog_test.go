package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-router/internal/model"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 47, c.Len())
	assert.Equal(t, 680, c.PhraseCount())
	assert.Equal(t, []string{"healthcare", "benefits", "financial", "claims", "wellness", "services"}, c.Categories())

	pharmacy, ok := c.ByName("pharmacy")
	require.True(t, ok)
	assert.Equal(t, "INT-PHR-0001", pharmacy.ID)
	assert.Equal(t, "PharmacyAgent", pharmacy.Agent)
	assert.Equal(t, 2, pharmacy.Priority)
	assert.Equal(t, "I need to refill my prescription", pharmacy.TrainingPhrases[0])

	nurse, ok := c.ByName("24HourNurseLine")
	require.True(t, ok)
	assert.Equal(t, "NurseLineAgent", nurse.Agent)

	_, ok = c.ByName("unknown")
	assert.False(t, ok)

	all := c.All()
	assert.Equal(t, "pharmacy", all[0].Name)
	assert.Equal(t, "complaint", all[len(all)-1].Name)
	assert.Len(t, c.ByCategory()["claims"], 4)
}

func TestAll_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	all := c.All()
	all[0].Name = "mutated"

	first := c.All()[0]
	assert.Equal(t, "pharmacy", first.Name)
}

func TestNew_Validation(t *testing.T) {
	ok := model.Intent{ID: "A", Name: "a", Agent: "AAgent", TrainingPhrases: []string{"hello there"}}

	tests := []struct {
		name    string
		intents []model.Intent
		wantErr error
	}{
		{name: "empty", intents: nil, wantErr: ErrEmptyCatalog},
		{name: "missing agent", intents: []model.Intent{{ID: "A", Name: "a", TrainingPhrases: []string{"x"}}}, wantErr: ErrMissingField},
		{name: "no phrases", intents: []model.Intent{{ID: "A", Name: "a", Agent: "X"}}, wantErr: ErrNoTrainingPhrases},
		{name: "duplicate id", intents: []model.Intent{ok, {ID: "A", Name: "b", Agent: "X", TrainingPhrases: []string{"x"}}}, wantErr: ErrDuplicateID},
		{name: "duplicate name", intents: []model.Intent{ok, {ID: "B", Name: "a", Agent: "X", TrainingPhrases: []string{"x"}}}, wantErr: ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.intents)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.yaml")
	doc := `intents:
  - intent_id: INT-T-1
    intent_name: greeting
    category: chat
    agent_routing: ChatAgent
    priority: 3
    training_utterances: ["hello there", "good morning"]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	greeting, ok := c.ByName("greeting")
	require.True(t, ok)
	assert.Equal(t, []string{"hello there", "good morning"}, greeting.TrainingPhrases)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	def, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 47, def.Len())
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("intents: [this is: not valid"))
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "prescription or medication refills", Describe("pharmacy"))
	assert.Equal(t, "24-hour nurse advice line", Describe("24HourNurseLine"))
	assert.Equal(t, "gymFitness", Describe("gymFitness"))
	assert.Equal(t, "", Describe(""))
}
