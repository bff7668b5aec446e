package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func decisionSchema() *Schema {
	return &Schema{
		Name:        "test-decision",
		Description: "A test path decision",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"shouldTakeMasteryPath": map[string]any{"type": "boolean"},
				"confidence":            map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"reasoning":             map[string]any{"type": "string"},
			},
			"required": []any{"shouldTakeMasteryPath"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"shouldTakeMasteryPath":true,"confidence":0.8,"reasoning":"solid"}`)
	if err := validateResponse(decisionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"shouldTakeMasteryPath":false}`)
	if err := validateResponse(decisionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"confidence":0.8}`)
	err := validateResponse(decisionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"shouldTakeMasteryPath":"yes"}`)
	err := validateResponse(decisionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"shouldTakeMasteryPath":true,"confidence":1.5}`)
	if err := validateResponse(decisionSchema(), raw); err == nil {
		t.Fatal("expected error for confidence above maximum")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(decisionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedArray(t *testing.T) {
	schema := &Schema{
		Name:        "test-quiz",
		Description: "Nested quiz test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id": map[string]any{"type": "string"},
						},
						"required": []any{"id"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}

	valid := json.RawMessage(`{"questions":[{"id":"q1"},{"id":"q2"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"questions":[{"question":"no id"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for missing item id")
	}
}
