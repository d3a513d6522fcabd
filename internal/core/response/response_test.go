package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewType_ValidatesInput tests Type creation against the enum
func TestNewType_ValidatesInput(t *testing.T) {
	valid := []string{"snippet", "memory", "context", "help", "orchestration", "campaign"}
	for _, v := range valid {
		t.Run(v, func(t *testing.T) {
			typ, err := NewType(v)
			require.NoError(t, err)
			assert.Equal(t, v, typ.String())
			assert.True(t, typ.IsValid())
		})
	}

	invalid := []string{"", "unknown", "Memory", "snippets"}
	for _, v := range invalid {
		t.Run("invalid_"+v, func(t *testing.T) {
			_, err := NewType(v)
			assert.Error(t, err)
		})
	}
}

// TestResponse_JSONShape verifies optional fields disappear from the wire
// form when unset
func TestResponse_JSONShape(t *testing.T) {
	minimal := New("hello", TypeHelp)

	data, err := json.Marshal(minimal)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hello","type":"help"}`, string(data))

	full := &Response{
		Message:      "launch drafted",
		Type:         TypeCampaign,
		Workflow:     []string{"draft", "review"},
		Agents:       []string{"copywriter"},
		DashboardURL: "https://example.test/c/1",
	}
	data, err = json.Marshal(full)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "campaign", decoded["type"])
	assert.Len(t, decoded["workflow"], 2)
	assert.NotContains(t, decoded, "code")
	assert.NotContains(t, decoded, "clipboard")
}
