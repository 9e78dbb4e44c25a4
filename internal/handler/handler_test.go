package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"seller-workspace/internal/layout"
	"seller-workspace/internal/model"
	"seller-workspace/internal/preference"
	"seller-workspace/internal/resource"
	"seller-workspace/internal/service"
	"seller-workspace/internal/settings"
	"seller-workspace/internal/store"
	"seller-workspace/internal/translation"
	"seller-workspace/pkg/response"
)

type testServer struct {
	router  *gin.Engine
	store   *store.Store
	layouts []model.PaneLayout
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.WithDelays(time.Hour, time.Hour))
	t.Cleanup(st.Stop)

	prefs := preference.NewMemoryStore()
	workspace := service.NewWorkspaceService(st)
	ts := &testServer{router: gin.New(), store: st}

	RegisterRoutes(ts.router, &Handlers{
		Buyer:       NewBuyerHandler(workspace),
		Message:     NewMessageHandler(workspace),
		Suggestion:  NewSuggestionHandler(workspace),
		Settings:    NewSettingsHandler(st, settings.NewService(prefs)),
		Translation: NewTranslationHandler(translation.NewService(0, 0)),
		Layout: NewLayoutHandler(layout.NewManager(layout.DefaultConfig(), prefs), func(l model.PaneLayout) {
			ts.layouts = append(ts.layouts, l)
		}),
		Resource: NewResourceHandler(resource.NewLibrary()),
	})
	return ts
}

// do 发送 JSON 请求，data 解码到 out（可以为 nil）
func (ts *testServer) do(t *testing.T, method, path string, body interface{}, out interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	return w, decode(t, w, out)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) response.Response {
	t.Helper()
	var env struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env.Response
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w, resp := ts.do(t, http.MethodGet, "/health", nil, nil)
	if w.Code != http.StatusOK || resp.Code != response.CodeSuccess {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}
}

func TestListBuyersFilters(t *testing.T) {
	ts := newTestServer(t)

	var all []service.BuyerView
	ts.do(t, http.MethodGet, "/api/v1/buyers", nil, &all)
	if len(all) != 5 {
		t.Fatalf("buyers = %d, want 5", len(all))
	}
	if !all[0].Selected || all[0].Flag != "🇲🇽" {
		t.Fatalf("first buyer = %+v", all[0])
	}

	var found []service.BuyerView
	ts.do(t, http.MethodGet, "/api/v1/buyers?search=japan", nil, &found)
	if len(found) != 1 || found[0].ID != "2" {
		t.Fatalf("search japan = %+v", found)
	}

	var important []service.BuyerView
	ts.do(t, http.MethodGet, "/api/v1/buyers?level=important", nil, &important)
	if len(important) != 2 {
		t.Fatalf("important = %d, want 2", len(important))
	}

	w, resp := ts.do(t, http.MethodGet, "/api/v1/buyers?level=vip", nil, nil)
	if w.Code != http.StatusBadRequest || resp.Code != response.CodeBadRequest {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}
}

func TestGetBuyerNotFound(t *testing.T) {
	ts := newTestServer(t)
	w, resp := ts.do(t, http.MethodGet, "/api/v1/buyers/99", nil, nil)
	if w.Code != http.StatusNotFound || resp.Code != response.CodeBuyerNotFound {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}
}

func TestSelectBuyerAndSendMessage(t *testing.T) {
	ts := newTestServer(t)

	var snap service.Snapshot
	w, _ := ts.do(t, http.MethodPost, "/api/v1/buyers/3/select", nil, &snap)
	if w.Code != http.StatusAccepted {
		t.Fatalf("select status = %d", w.Code)
	}
	if snap.SelectedBuyerID != "3" || snap.Buyer == nil || snap.Buyer.UnreadCount != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}

	w, _ = ts.do(t, http.MethodPost, "/api/v1/messages", SendMessageRequest{Content: "Hello"}, &snap)
	if w.Code != http.StatusAccepted {
		t.Fatalf("send status = %d", w.Code)
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(snap.Messages))
	}
	m := snap.Messages[0]
	if m.Content != "Hello" || m.Align != model.AlignRight || m.Label != "You" {
		t.Fatalf("message = %+v", m)
	}

	var msgs []service.MessageView
	ts.do(t, http.MethodGet, "/api/v1/messages?buyer_id=3", nil, &msgs)
	if len(msgs) != 1 {
		t.Fatalf("conversation = %d, want 1", len(msgs))
	}
}

func TestSendBlankMessageIsAccepted(t *testing.T) {
	ts := newTestServer(t)

	var snap service.Snapshot
	w, _ := ts.do(t, http.MethodPost, "/api/v1/messages", SendMessageRequest{Content: "   "}, &snap)
	if w.Code != http.StatusAccepted || len(snap.Messages) != 0 {
		t.Fatalf("status = %d, messages = %d", w.Code, len(snap.Messages))
	}
}

func TestSendProduct(t *testing.T) {
	ts := newTestServer(t)

	var snap service.Snapshot
	w, _ := ts.do(t, http.MethodPost, "/api/v1/products/p004/send", nil, &snap)
	if w.Code != http.StatusAccepted || len(snap.Messages) != 1 {
		t.Fatalf("status = %d, snapshot = %+v", w.Code, snap)
	}
	if len(snap.Messages[0].Attachments) != 1 {
		t.Fatalf("attachments = %+v", snap.Messages[0].Attachments)
	}

	var after service.Snapshot
	w, resp := ts.do(t, http.MethodPost, "/api/v1/products/p999/send", nil, &after)
	if w.Code != http.StatusAccepted || resp.Code != response.CodeSuccess {
		t.Fatalf("unknown product status = %d, code = %d", w.Code, resp.Code)
	}
	if len(after.Messages) != 1 {
		t.Fatalf("messages = %d, want 1 after unknown product", len(after.Messages))
	}
}

func TestGetProduct(t *testing.T) {
	ts := newTestServer(t)

	var p model.ProductInfo
	w, _ := ts.do(t, http.MethodGet, "/api/v1/products/p004", nil, &p)
	if w.Code != http.StatusOK || p.ID != "p004" {
		t.Fatalf("status = %d, product = %+v", w.Code, p)
	}

	w, resp := ts.do(t, http.MethodGet, "/api/v1/products/p999", nil, nil)
	if w.Code != http.StatusNotFound || resp.Code != response.CodeProductNotFound {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}
}

func TestClearUnread(t *testing.T) {
	ts := newTestServer(t)

	var buyer service.BuyerView
	w, _ := ts.do(t, http.MethodPost, "/api/v1/buyers/1/clear-unread", nil, &buyer)
	if w.Code != http.StatusAccepted || buyer.ID != "1" || buyer.UnreadCount != 0 {
		t.Fatalf("status = %d, buyer = %+v", w.Code, buyer)
	}

	w, resp := ts.do(t, http.MethodPost, "/api/v1/buyers/99/clear-unread", nil, nil)
	if w.Code != http.StatusAccepted || resp.Code != response.CodeSuccess {
		t.Fatalf("unknown buyer status = %d, code = %d", w.Code, resp.Code)
	}
}

func TestProducts(t *testing.T) {
	ts := newTestServer(t)

	var all, recommended []model.ProductInfo
	ts.do(t, http.MethodGet, "/api/v1/products", nil, &all)
	ts.do(t, http.MethodGet, "/api/v1/products/recommended", nil, &recommended)
	if len(all) != 10 || len(recommended) != 3 {
		t.Fatalf("products = %d, recommended = %d", len(all), len(recommended))
	}
}

func TestSuggestions(t *testing.T) {
	ts := newTestServer(t)

	var generated []model.ReplySuggestion
	ts.do(t, http.MethodPost, "/api/v1/suggestions/generate", nil, &generated)
	if len(generated) == 0 {
		t.Fatal("expected suggestions for the selected buyer")
	}

	var listed []model.ReplySuggestion
	ts.do(t, http.MethodGet, "/api/v1/suggestions", nil, &listed)
	if len(listed) != len(generated) || listed[0].ID != generated[0].ID {
		t.Fatalf("listed = %+v", listed)
	}

	var snap service.Snapshot
	w, _ := ts.do(t, http.MethodPost, "/api/v1/suggestions/"+generated[0].ID+"/send", nil, &snap)
	if w.Code != http.StatusAccepted || len(snap.Messages) != 1 {
		t.Fatalf("status = %d, snapshot = %+v", w.Code, snap)
	}
	if snap.Messages[0].Content != generated[0].Content {
		t.Fatalf("content = %q, want %q", snap.Messages[0].Content, generated[0].Content)
	}
}

func TestUserSettingsPatch(t *testing.T) {
	ts := newTestServer(t)

	var user model.UserSettings
	ts.do(t, http.MethodPatch, "/api/v1/settings/user", map[string]interface{}{"theme": "dark"}, &user)
	if user.Theme != model.ThemeDark || user.Language != "en" {
		t.Fatalf("user settings = %+v", user)
	}

	var ai model.AISettings
	ts.do(t, http.MethodPatch, "/api/v1/settings/ai", map[string]interface{}{"auto_reply": true}, &ai)
	if !ai.AutoReply || !ai.Enabled {
		t.Fatalf("ai settings = %+v", ai)
	}
}

func TestAgentSettingsLifecycle(t *testing.T) {
	ts := newTestServer(t)

	var s model.AgentSettings
	ts.do(t, http.MethodGet, "/api/v1/settings/agent", nil, &s)
	if s.ResponseDelay != 10 || len(s.DefaultQuestions) != 7 {
		t.Fatalf("defaults = %+v", s)
	}

	ts.do(t, http.MethodPost, "/api/v1/settings/agent/questions", AddQuestionRequest{Text: "  Do you ship to Canada?  "}, &s)
	last := s.DefaultQuestions[len(s.DefaultQuestions)-1]
	if last.ID != "q8" || last.Text != "Do you ship to Canada?" || !last.Enabled {
		t.Fatalf("added question = %+v", last)
	}

	ts.do(t, http.MethodPost, "/api/v1/settings/agent/questions/q1/toggle", nil, &s)
	if s.DefaultQuestions[0].Enabled {
		t.Fatal("q1 should be disabled")
	}

	ts.do(t, http.MethodPost, "/api/v1/settings/agent/auto-replies/question-5/toggle", nil, &s)
	if !s.AutoReplyQuestions[4].Enabled {
		t.Fatal("question-5 should be enabled")
	}

	var loaded model.AgentSettings
	ts.do(t, http.MethodGet, "/api/v1/settings/agent", nil, &loaded)
	if len(loaded.DefaultQuestions) != 8 || loaded.DefaultQuestions[0].Enabled {
		t.Fatalf("loaded = %+v", loaded)
	}

	w, _ := ts.do(t, http.MethodDelete, "/api/v1/settings/agent", nil, &loaded)
	if w.Code != http.StatusOK || len(loaded.DefaultQuestions) != 7 {
		t.Fatalf("reset status = %d, settings = %+v", w.Code, loaded)
	}
}

func TestAgentSettingsValidation(t *testing.T) {
	ts := newTestServer(t)

	bad := settings.Defaults()
	bad.ResponseDelay = 61
	w, resp := ts.do(t, http.MethodPut, "/api/v1/settings/agent", bad, nil)
	if w.Code != http.StatusBadRequest || resp.Code != response.CodeSettingsInvalid {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}

	w, resp = ts.do(t, http.MethodPost, "/api/v1/settings/agent/questions", AddQuestionRequest{Text: "  "}, nil)
	if w.Code != http.StatusBadRequest || resp.Code != response.CodeBadRequest {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}
}

func TestTranslation(t *testing.T) {
	ts := newTestServer(t)

	var tr translation.Response
	ts.do(t, http.MethodPost, "/api/v1/translate", translation.Request{
		Text: "Hello there", SourceLanguage: "en", TargetLanguage: "fr",
	}, &tr)
	if tr.TranslatedText != "Bonjour there" {
		t.Fatalf("translated = %q", tr.TranslatedText)
	}

	var detected map[string]string
	ts.do(t, http.MethodPost, "/api/v1/detect-language", DetectRequest{Text: "¿Dónde está?"}, &detected)
	if detected["language"] != "es" {
		t.Fatalf("detected = %v", detected)
	}

	var code map[string]string
	ts.do(t, http.MethodGet, "/api/v1/languages/Japanese", nil, &code)
	if code["code"] != "ja" {
		t.Fatalf("code = %v", code)
	}

	w, _ := ts.do(t, http.MethodPost, "/api/v1/translate", map[string]string{"text": "Hello"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing target status = %d", w.Code)
	}
}

func TestLayoutEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var l model.PaneLayout
	ts.do(t, http.MethodPost, "/api/v1/layout/resize", ResizeRequest{Pane: layout.PaneBuyerList, Delta: 500}, &l)
	if l.BuyerListWidth != 400 {
		t.Fatalf("buyer list width = %d, want 400", l.BuyerListWidth)
	}

	ts.do(t, http.MethodPost, "/api/v1/layout/resize", ResizeRequest{Pane: layout.PaneBuyerInfo, Delta: 20}, &l)
	if l.BuyerInfoWidth != 300 {
		t.Fatalf("buyer info width = %d, want 300", l.BuyerInfoWidth)
	}

	ts.do(t, http.MethodPost, "/api/v1/layout/viewport", ViewportRequest{Width: 1000}, &l)
	if !l.ShowBuyerList || l.ShowBuyerInfo {
		t.Fatalf("tablet layout = %+v", l)
	}

	ts.do(t, http.MethodPost, "/api/v1/layout/toggle/buyer-info", nil, &l)
	if !l.ShowBuyerInfo {
		t.Fatalf("toggled layout = %+v", l)
	}

	w, _ := ts.do(t, http.MethodPost, "/api/v1/layout/toggle/chat", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown pane status = %d", w.Code)
	}

	if len(ts.layouts) != 4 {
		t.Fatalf("notified %d layouts, want 4", len(ts.layouts))
	}

	var current model.PaneLayout
	ts.do(t, http.MethodGet, "/api/v1/layout", nil, &current)
	if current != l {
		t.Fatalf("current = %+v, want %+v", current, l)
	}
}

func TestResourceCategories(t *testing.T) {
	ts := newTestServer(t)

	var cat model.ResourceCategory
	ts.do(t, http.MethodPost, "/api/v1/resources/categories", AddCategoryRequest{Name: " Certificates "}, &cat)
	if cat.Name != "Certificates" || !strings.HasPrefix(cat.ID, "category-") {
		t.Fatalf("category = %+v", cat)
	}

	var cats []model.ResourceCategory
	ts.do(t, http.MethodGet, "/api/v1/resources/categories", nil, &cats)
	if len(cats) != 6 {
		t.Fatalf("categories = %d, want 6", len(cats))
	}

	w, _ := ts.do(t, http.MethodPost, "/api/v1/resources/categories", AddCategoryRequest{Name: ""}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty name status = %d", w.Code)
	}
}

type uploadFile struct {
	name, mimeType string
	content        []byte
}

func (ts *testServer) upload(t *testing.T, path string, files ...uploadFile) (*httptest.ResponseRecorder, response.Response, UploadResult) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.mimeType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(f.content)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var result UploadResult
	resp := decode(t, w, &result)
	return w, resp, result
}

func TestUploadResources(t *testing.T) {
	ts := newTestServer(t)
	path := "/api/v1/resources/categories/faq/upload"

	w, _, result := ts.upload(t, path,
		uploadFile{name: "returns.pdf", mimeType: "application/pdf", content: []byte("%PDF")},
		uploadFile{name: "script.sh", mimeType: "application/x-sh", content: []byte("echo")},
	)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(result.Items) != 1 || result.Items[0].Title != "returns" {
		t.Fatalf("items = %+v", result.Items)
	}
	if len(result.Rejected) != 1 || result.Rejected[0].Reason != resource.ReasonUnsupported {
		t.Fatalf("rejected = %+v", result.Rejected)
	}

	w, resp, result := ts.upload(t, path,
		uploadFile{name: "returns.pdf", mimeType: "application/pdf", content: []byte("%PDF")},
	)
	if w.Code != http.StatusUnprocessableEntity || resp.Code != response.CodeUploadRejected {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}
	if result.Rejected[0].Reason != resource.ReasonDuplicate {
		t.Fatalf("rejected = %+v", result.Rejected)
	}

	var items []model.ResourceItem
	ts.do(t, http.MethodGet, "/api/v1/resources?category=faq", nil, &items)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}

	w, resp, _ = ts.upload(t, "/api/v1/resources/categories/missing/upload",
		uploadFile{name: "a.pdf", mimeType: "application/pdf", content: []byte("x")},
	)
	if w.Code != http.StatusNotFound || resp.Code != response.CodeCategoryNotFound {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}
}

func TestUploadRequiresMultipart(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/v1/resources/categories/faq/upload", map[string]string{"name": "a.pdf"}, nil)
	if w.Code != http.StatusBadRequest || resp.Code != response.CodeBadRequest {
		t.Fatalf("status = %d, code = %d", w.Code, resp.Code)
	}
}
