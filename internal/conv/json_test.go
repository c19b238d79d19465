package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type arguments struct {
	WorkflowID string                 `json:"workflow_id"`
	Active     *bool                  `json:"active,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

func TestConvert(t *testing.T) {
	var testCases = []struct {
		description string
		in          any
		expect      arguments
		expectErr   bool
	}{
		{
			description: "map arguments",
			in:          map[string]interface{}{"workflow_id": "wf_1", "active": true, "data": map[string]interface{}{"k": "v"}},
			expect:      arguments{WorkflowID: "wf_1", Active: Pointer(true), Data: map[string]interface{}{"k": "v"}},
		},
		{
			description: "assignable value",
			in:          arguments{WorkflowID: "wf_2"},
			expect:      arguments{WorkflowID: "wf_2"},
		},
		{
			description: "nil input",
			expect:      arguments{},
		},
		{
			description: "type mismatch",
			in:          map[string]interface{}{"workflow_id": 7},
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		var actual arguments
		err := Convert(testCase.in, &actual)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestConvert_InvalidDestination(t *testing.T) {
	assert.Error(t, Convert(map[string]interface{}{}, nil))
	assert.Error(t, Convert(map[string]interface{}{}, arguments{}))
}

func TestClone(t *testing.T) {
	src := &arguments{WorkflowID: "wf_1", Data: map[string]interface{}{"nested": map[string]interface{}{"k": "v"}}}
	clone := Clone(src)
	require.NotNil(t, clone)
	clone.Data["nested"].(map[string]interface{})["k"] = "changed"
	assert.Equal(t, "v", src.Data["nested"].(map[string]interface{})["k"])
	assert.Nil(t, Clone[arguments](nil))
}

func TestPointer(t *testing.T) {
	assert.Equal(t, "x", Dereference(Pointer("x")))
	assert.Equal(t, 0, Dereference[int](nil))
}
