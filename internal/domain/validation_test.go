package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTaskInput(t *testing.T) {
	tests := []struct {
		name       string
		raw        any
		want       TaskInput
		wantErr    bool
		errFields  []string
		errMessage string
	}{
		{
			name: "defaults_applied",
			raw:  map[string]any{"title": "Write docs"},
			want: TaskInput{
				Title:       "Write docs",
				Description: "",
				Priority:    PriorityMedium,
				Status:      StatusTodo,
			},
		},
		{
			name: "all_fields",
			raw: map[string]any{
				"title":       "Fix login",
				"description": "Users cannot log in",
				"priority":    "high",
				"status":      "progress",
			},
			want: TaskInput{
				Title:       "Fix login",
				Description: "Users cannot log in",
				Priority:    PriorityHigh,
				Status:      StatusProgress,
			},
		},
		{
			name: "null_description_coerces_to_empty",
			raw:  map[string]any{"title": "t", "description": nil},
			want: TaskInput{Title: "t", Priority: PriorityMedium, Status: StatusTodo},
		},
		{
			name: "title_is_trimmed",
			raw:  map[string]any{"title": "  padded  "},
			want: TaskInput{Title: "padded", Priority: PriorityMedium, Status: StatusTodo},
		},
		{
			name:       "missing_title",
			raw:        map[string]any{"description": "x"},
			wantErr:    true,
			errFields:  []string{"title"},
			errMessage: `"title" is required`,
		},
		{
			name:       "blank_title",
			raw:        map[string]any{"title": "   "},
			wantErr:    true,
			errFields:  []string{"title"},
			errMessage: `"title" is not allowed to be empty`,
		},
		{
			name:       "non_string_title",
			raw:        map[string]any{"title": 42.0},
			wantErr:    true,
			errFields:  []string{"title"},
			errMessage: `"title" must be a string`,
		},
		{
			name:       "non_string_description",
			raw:        map[string]any{"title": "t", "description": true},
			wantErr:    true,
			errFields:  []string{"description"},
			errMessage: `"description" must be a string`,
		},
		{
			name:       "nul_in_title",
			raw:        map[string]any{"title": "a\x00b"},
			wantErr:    true,
			errFields:  []string{"title"},
			errMessage: `"title" must not contain NUL characters`,
		},
		{
			name:       "nul_in_description",
			raw:        map[string]any{"title": "t", "description": "line\u0000break"},
			wantErr:    true,
			errFields:  []string{"description"},
			errMessage: `"description" must not contain NUL characters`,
		},
		{
			name:       "invalid_priority",
			raw:        map[string]any{"title": "t", "priority": "urgent"},
			wantErr:    true,
			errFields:  []string{"priority"},
			errMessage: `"priority" must be one of [high, medium, low]`,
		},
		{
			name:       "invalid_status",
			raw:        map[string]any{"title": "t", "status": "blocked"},
			wantErr:    true,
			errFields:  []string{"status"},
			errMessage: `"status" must be one of [todo, progress, done]`,
		},
		{
			name:       "null_priority",
			raw:        map[string]any{"title": "t", "priority": nil},
			wantErr:    true,
			errFields:  []string{"priority"},
			errMessage: `"priority" must be one of [high, medium, low]`,
		},
		{
			name:      "aggregates_all_violations",
			raw:       map[string]any{"priority": "urgent", "status": "blocked"},
			wantErr:   true,
			errFields: []string{"title", "priority", "status"},
			errMessage: `"title" is required, "priority" must be one of [high, medium, low], ` +
				`"status" must be one of [todo, progress, done]`,
		},
		{
			name:       "unknown_keys_rejected",
			raw:        map[string]any{"title": "t", "owner": "me", "id": "x"},
			wantErr:    true,
			errFields:  []string{"id", "owner"},
			errMessage: `"id" is not allowed, "owner" is not allowed`,
		},
		{
			name:       "non_object_body",
			raw:        []any{"title"},
			wantErr:    true,
			errFields:  []string{"value"},
			errMessage: `"value" must be of type object`,
		},
		{
			name:       "nil_body",
			raw:        nil,
			wantErr:    true,
			errFields:  []string{"value"},
			errMessage: `"value" must be of type object`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateTaskInput(tc.raw)

			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "error should wrap ErrValidation")

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			for _, f := range tc.errFields {
				assert.True(t, verr.HasField(f), "expected violation on %q", f)
			}
			assert.Len(t, verr.Fields, len(tc.errFields))
			assert.Equal(t, tc.errMessage, err.Error())
			assert.Equal(t, TaskInput{}, got)
		})
	}
}

func TestValidateClassifyRequest(t *testing.T) {
	tests := []struct {
		name       string
		raw        any
		want       string
		errMessage string
	}{
		{
			name: "valid",
			raw:  map[string]any{"description": "This is urgent and critical"},
			want: "This is urgent and critical",
		},
		{
			name: "exactly_minimum_length",
			raw:  map[string]any{"description": "abcde"},
			want: "abcde",
		},
		{
			name: "length_counts_characters_not_bytes",
			raw:  map[string]any{"description": "héllo"},
			want: "héllo",
		},
		{
			name:       "too_short",
			raw:        map[string]any{"description": "abcd"},
			errMessage: `"description" length must be at least 5 characters long`,
		},
		{
			name:       "missing",
			raw:        map[string]any{},
			errMessage: `"description" is required`,
		},
		{
			name:       "empty",
			raw:        map[string]any{"description": ""},
			errMessage: `"description" is not allowed to be empty`,
		},
		{
			name:       "not_a_string",
			raw:        map[string]any{"description": 12345.0},
			errMessage: `"description" must be a string`,
		},
		{
			name:       "unknown_key",
			raw:        map[string]any{"description": "long enough", "title": "x"},
			errMessage: `"title" is not allowed`,
		},
		{
			name:       "not_an_object",
			raw:        "urgent outage",
			errMessage: `"value" must be of type object`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateClassifyRequest(tc.raw)
			if tc.errMessage == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got.Description)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tc.errMessage, err.Error())
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("empty_error_uses_sentinel_message", func(t *testing.T) {
		verr := &ValidationError{}
		assert.True(t, verr.Empty())
		assert.Equal(t, ErrValidation.Error(), verr.Error())
	})

	t.Run("single_field", func(t *testing.T) {
		verr := NewValidationError("title", `"title" is required`)
		assert.False(t, verr.Empty())
		assert.True(t, verr.HasField("title"))
		assert.False(t, verr.HasField("status"))
		assert.Equal(t, `"title" is required`, verr.Error())
	})
}
