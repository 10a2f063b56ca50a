package conversation_test

import (
	"strings"
	"testing"

	"aura-server/internal/domain/conversation"
)

func TestConversationValidatorTitle(t *testing.T) {
	validator := conversation.NewConversationValidator(nil)

	long := strings.Repeat("x", 256)
	exact := strings.Repeat("x", 255)
	nullByte := "bad\x00title"
	ok := "ML study notes"

	cases := []struct {
		name    string
		title   *string
		wantErr bool
	}{
		{"nil title", nil, false},
		{"normal title", &ok, false},
		{"exactly max length", &exact, false},
		{"one over max length", &long, true},
		{"null byte", &nullByte, true},
	}

	for _, tc := range cases {
		err := validator.ValidateTitle(tc.title)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: ValidateTitle() error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestConversationValidatorTitleCountsRunes(t *testing.T) {
	validator := conversation.NewConversationValidator(nil)

	// 255 multi-byte runes are within the limit even though the byte
	// length exceeds it.
	title := strings.Repeat("ひ", 255)
	if err := validator.ValidateTitle(&title); err != nil {
		t.Errorf("ValidateTitle() error = %v for 255 runes", err)
	}
}

func TestConversationValidatorConversationID(t *testing.T) {
	validator := conversation.NewConversationValidator(nil)

	cases := []struct {
		id      string
		wantErr bool
	}{
		{"conv_0123456789abcdef", false},
		{"", true},
		{"garbage", true},
		{"user_0123456789abcdef", true},
		{"conv_", true},
		{"conv_UPPERCASE", true},
	}

	for _, tc := range cases {
		err := validator.ValidateConversationID(tc.id)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateConversationID(%q) error = %v, wantErr %v", tc.id, err, tc.wantErr)
		}
	}
}

func TestConversationValidatorContent(t *testing.T) {
	validator := conversation.NewConversationValidator(nil)

	if err := validator.ValidateContent("hello"); err != nil {
		t.Errorf("ValidateContent() error = %v for valid content", err)
	}
	if err := validator.ValidateContent(""); err == nil {
		t.Error("ValidateContent() expected error for empty content")
	}
	if err := validator.ValidateContent("a\x00b"); err == nil {
		t.Error("ValidateContent() expected error for null byte")
	}
}

func TestConversationValidatorRole(t *testing.T) {
	validator := conversation.NewConversationValidator(nil)

	for _, role := range []conversation.MessageRole{
		conversation.RoleUser,
		conversation.RoleAssistant,
		conversation.RoleSystem,
	} {
		if err := validator.ValidateRole(role); err != nil {
			t.Errorf("ValidateRole(%q) error = %v", role, err)
		}
	}

	if err := validator.ValidateRole(conversation.MessageRole("robot")); err == nil {
		t.Error("ValidateRole() expected error for unknown role")
	}
}
