package conversationhandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"aura-server/internal/domain/account"
	"aura-server/internal/domain/conversation"
	"aura-server/internal/infrastructure/auth"
	"aura-server/internal/interfaces/httpserver/handlers/conversationhandler"
	"aura-server/internal/interfaces/httpserver/middlewares"
	"aura-server/internal/utils/platformerrors"
)

type seededAccountRepo struct {
	byEmail map[string]*account.Account
}

func (r *seededAccountRepo) Create(ctx context.Context, acct *account.Account) error { return nil }

func (r *seededAccountRepo) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	if acct, ok := r.byEmail[email]; ok {
		return acct, nil
	}
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound, "account not found", nil, "test-not-found")
}

func (r *seededAccountRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return nil
}

type memoryConversationRepo struct {
	mu     sync.Mutex
	nextID uint
	convs  []*conversation.Conversation
}

func (r *memoryConversationRepo) Create(ctx context.Context, conv *conversation.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	conv.ID = r.nextID
	stored := *conv
	r.convs = append(r.convs, &stored)
	return nil
}

func (r *memoryConversationRepo) FindByPublicID(ctx context.Context, publicID string) (*conversation.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, conv := range r.convs {
		if conv.PublicID == publicID {
			found := *conv
			return &found, nil
		}
	}
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound, "conversation not found", nil, "test-not-found")
}

func (r *memoryConversationRepo) ListByUserID(ctx context.Context, userID uint) ([]*conversation.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first, like the updated_at DESC ordering of the real store.
	var out []*conversation.Conversation
	for i := len(r.convs) - 1; i >= 0; i-- {
		if r.convs[i].UserID == userID {
			found := *r.convs[i]
			out = append(out, &found)
		}
	}
	return out, nil
}

type memoryMessageRepo struct {
	mu     sync.Mutex
	nextID uint
	msgs   []*conversation.Message
}

func (r *memoryMessageRepo) Create(ctx context.Context, msg *conversation.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	msg.ID = r.nextID
	stored := *msg
	r.msgs = append(r.msgs, &stored)
	return nil
}

func (r *memoryMessageRepo) ListByConversationID(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*conversation.Message
	for _, msg := range r.msgs {
		if msg.ConversationID == conversationID {
			found := *msg
			out = append(out, &found)
		}
	}
	return out, nil
}

type conversationFixture struct {
	router *gin.Engine
	tokens *auth.TokenService
}

func newConversationFixture() *conversationFixture {
	gin.SetMode(gin.TestMode)

	accountRepo := &seededAccountRepo{byEmail: map[string]*account.Account{
		"alice@iitbhilai.ac.in": {
			ID:       1,
			PublicID: "user_alice0000000000",
			Email:    "alice@iitbhilai.ac.in",
			IsActive: true,
		},
		"bob@iitbhilai.ac.in": {
			ID:       2,
			PublicID: "user_bob000000000000",
			Email:    "bob@iitbhilai.ac.in",
			IsActive: true,
		},
	}}

	tokens := auth.NewTokenService("conversation-test-secret", time.Minute)
	accounts := account.NewAccountService(accountRepo, auth.NewPasswordHasher(4), tokens, nil, zerolog.Nop())
	conversations := conversation.NewConversationService(&memoryConversationRepo{}, &memoryMessageRepo{})
	handler := conversationhandler.NewConversationHandler(conversations)
	gate := middlewares.AuthMiddleware(tokens, accounts, zerolog.Nop())

	r := gin.New()
	group := r.Group("/api/conversations", gate)
	group.POST("", handler.CreateConversation)
	group.GET("", handler.ListConversations)
	group.GET("/:conversation_id", handler.GetConversation)
	group.POST("/:conversation_id/messages", handler.CreateMessage)
	group.GET("/:conversation_id/messages", handler.ListMessages)

	return &conversationFixture{router: r, tokens: tokens}
}

func (f *conversationFixture) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := f.tokens.Issue(email)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return token.Token
}

func (f *conversationFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func parseObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
	return body
}

func parseArray(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var body []interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
	return body
}

func (f *conversationFixture) createConversation(t *testing.T, token, body string) string {
	t.Helper()
	w := f.do("POST", "/api/conversations", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create conversation: expected status 201, got %d (body %s)", w.Code, w.Body.String())
	}
	resp := parseObject(t, w)
	id, _ := resp["id"].(string)
	if id == "" {
		t.Fatal("create conversation: expected a non-empty id")
	}
	return id
}

func TestCreateConversationEndpoint(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")

	w := f.do("POST", "/api/conversations", `{"title":"ML study notes"}`, token)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (body %s)", w.Code, w.Body.String())
	}

	resp := parseObject(t, w)
	if id, _ := resp["id"].(string); !strings.HasPrefix(id, "conv_") {
		t.Errorf("Expected public ID with conv_ prefix, got %v", resp["id"])
	}
	if resp["title"] != "ML study notes" {
		t.Errorf("Unexpected title: %v", resp["title"])
	}
	if resp["userId"] != "user_alice0000000000" {
		t.Errorf("Expected owner public ID, got %v", resp["userId"])
	}
}

func TestCreateConversationEndpointNoTitle(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")

	w := f.do("POST", "/api/conversations", `{}`, token)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (body %s)", w.Code, w.Body.String())
	}

	resp := parseObject(t, w)
	if resp["title"] != nil {
		t.Errorf("Expected null title, got %v", resp["title"])
	}
}

func TestCreateConversationEndpointTitleTooLong(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")

	w := f.do("POST", "/api/conversations", `{"title":"`+strings.Repeat("x", 300)+`"}`, token)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d (body %s)", w.Code, w.Body.String())
	}
}

func TestCreateConversationEndpointRequiresAuth(t *testing.T) {
	f := newConversationFixture()

	w := f.do("POST", "/api/conversations", `{"title":"nope"}`, "")

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}
}

func TestListConversationsEndpoint(t *testing.T) {
	f := newConversationFixture()
	alice := f.tokenFor(t, "alice@iitbhilai.ac.in")
	bob := f.tokenFor(t, "bob@iitbhilai.ac.in")

	first := f.createConversation(t, alice, `{"title":"first"}`)
	second := f.createConversation(t, alice, `{"title":"second"}`)
	f.createConversation(t, bob, `{"title":"bob's own"}`)

	w := f.do("GET", "/api/conversations", "", alice)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", w.Code, w.Body.String())
	}

	list := parseArray(t, w)
	if len(list) != 2 {
		t.Fatalf("Expected 2 conversations, got %d", len(list))
	}

	newest, _ := list[0].(map[string]interface{})
	oldest, _ := list[1].(map[string]interface{})
	if newest["id"] != second || oldest["id"] != first {
		t.Errorf("Expected newest-first ordering, got %v then %v", newest["id"], oldest["id"])
	}
}

func TestListConversationsEndpointEmpty(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")

	w := f.do("GET", "/api/conversations", "", token)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("Expected an empty JSON array, got %s", body)
	}
}

func TestGetConversationEndpoint(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")
	id := f.createConversation(t, token, `{"title":"mine"}`)

	w := f.do("GET", "/api/conversations/"+id, "", token)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", w.Code, w.Body.String())
	}

	resp := parseObject(t, w)
	if resp["id"] != id {
		t.Errorf("Expected id %q, got %v", id, resp["id"])
	}
}

func TestGetConversationEndpointConflatesAllFailures(t *testing.T) {
	f := newConversationFixture()
	alice := f.tokenFor(t, "alice@iitbhilai.ac.in")
	bob := f.tokenFor(t, "bob@iitbhilai.ac.in")
	id := f.createConversation(t, alice, `{"title":"alice's"}`)

	// Malformed ID, well-formed but absent ID, and someone else's ID must be
	// indistinguishable on the wire.
	paths := []string{
		"/api/conversations/garbage",
		"/api/conversations/conv_ffffffffffffffff",
		"/api/conversations/" + id,
	}

	for _, path := range paths {
		w := f.do("GET", path, "", bob)

		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, w.Code)
			continue
		}

		resp := parseObject(t, w)
		if resp["error"] != "Conversation not found" {
			t.Errorf("%s: expected 'Conversation not found', got %v", path, resp["error"])
		}
	}
}

func TestCreateMessageEndpoint(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")
	id := f.createConversation(t, token, `{"title":"chat"}`)

	w := f.do("POST", "/api/conversations/"+id+"/messages",
		`{"content":"What is backpropagation?","role":"user"}`, token)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (body %s)", w.Code, w.Body.String())
	}

	resp := parseObject(t, w)
	if mid, _ := resp["id"].(string); !strings.HasPrefix(mid, "msg_") {
		t.Errorf("Expected public ID with msg_ prefix, got %v", resp["id"])
	}
	if resp["content"] != "What is backpropagation?" {
		t.Errorf("Unexpected content: %v", resp["content"])
	}
	if resp["role"] != "user" {
		t.Errorf("Unexpected role: %v", resp["role"])
	}
	if resp["conversationId"] != id {
		t.Errorf("Expected conversationId %q, got %v", id, resp["conversationId"])
	}
	if resp["userId"] != "user_alice0000000000" {
		t.Errorf("Expected author public ID, got %v", resp["userId"])
	}
}

func TestCreateMessageEndpointDefaultsRole(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")
	id := f.createConversation(t, token, `{}`)

	w := f.do("POST", "/api/conversations/"+id+"/messages", `{"content":"hi"}`, token)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (body %s)", w.Code, w.Body.String())
	}

	resp := parseObject(t, w)
	if resp["role"] != "user" {
		t.Errorf("Expected role to default to 'user', got %v", resp["role"])
	}
}

func TestCreateMessageEndpointInvalidRole(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")
	id := f.createConversation(t, token, `{}`)

	w := f.do("POST", "/api/conversations/"+id+"/messages", `{"content":"hi","role":"robot"}`, token)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d (body %s)", w.Code, w.Body.String())
	}
}

func TestCreateMessageEndpointEmptyContent(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")
	id := f.createConversation(t, token, `{}`)

	w := f.do("POST", "/api/conversations/"+id+"/messages", `{"content":""}`, token)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d (body %s)", w.Code, w.Body.String())
	}
}

func TestCreateMessageEndpointForeignConversation(t *testing.T) {
	f := newConversationFixture()
	alice := f.tokenFor(t, "alice@iitbhilai.ac.in")
	bob := f.tokenFor(t, "bob@iitbhilai.ac.in")
	id := f.createConversation(t, alice, `{"title":"alice's"}`)

	w := f.do("POST", "/api/conversations/"+id+"/messages", `{"content":"let me in"}`, bob)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d (body %s)", w.Code, w.Body.String())
	}

	resp := parseObject(t, w)
	if resp["error"] != "Conversation not found" {
		t.Errorf("Expected 'Conversation not found', got %v", resp["error"])
	}
}

func TestListMessagesEndpoint(t *testing.T) {
	f := newConversationFixture()
	token := f.tokenFor(t, "alice@iitbhilai.ac.in")
	id := f.createConversation(t, token, `{}`)

	for _, body := range []string{
		`{"content":"first question","role":"user"}`,
		`{"content":"first answer","role":"assistant"}`,
	} {
		w := f.do("POST", "/api/conversations/"+id+"/messages", body, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("create message: expected status 201, got %d (body %s)", w.Code, w.Body.String())
		}
	}

	w := f.do("GET", "/api/conversations/"+id+"/messages", "", token)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", w.Code, w.Body.String())
	}

	list := parseArray(t, w)
	if len(list) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(list))
	}

	first, _ := list[0].(map[string]interface{})
	second, _ := list[1].(map[string]interface{})
	if first["content"] != "first question" || second["content"] != "first answer" {
		t.Errorf("Expected oldest-first ordering, got %v then %v", first["content"], second["content"])
	}
	if first["role"] != "user" || second["role"] != "assistant" {
		t.Errorf("Unexpected roles: %v, %v", first["role"], second["role"])
	}
}

func TestListMessagesEndpointForeignConversation(t *testing.T) {
	f := newConversationFixture()
	alice := f.tokenFor(t, "alice@iitbhilai.ac.in")
	bob := f.tokenFor(t, "bob@iitbhilai.ac.in")
	id := f.createConversation(t, alice, `{}`)

	w := f.do("GET", "/api/conversations/"+id+"/messages", "", bob)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
