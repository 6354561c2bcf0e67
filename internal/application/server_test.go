package application

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

	"github.com/labstack/echo/v4"

	"todo-api/configs"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/gateway/storage"
	"todo-api/internal/domain/usecase/attachment"
	"todo-api/internal/domain/usecase/category"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	gormdb "todo-api/internal/infra/database/gorm"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	env := &configs.EnvConfig{
		ApplicationName: "todo-api",
		Server:          configs.ServerConfig{Port: 8080, PublicDir: t.TempDir(), ShutdownTimeout: time.Second},
		CORSOrigins:     []string{"*"},
		DB:              configs.DBConfig{Driver: "sqlite", URL: t.TempDir(), Name: "todos"},
		Storage:         configs.StorageConfig{ImagesDir: t.TempDir(), PublicPath: "/images", MaxSize: "1MB"},
	}

	database, err := gormdb.Open(gormdb.Config{Driver: env.DB.Driver, URL: env.DB.URL, Name: env.DB.Name})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { gormdb.Close(database) })

	images, err := storage.NewLocalImageGateway(env.Storage.ImagesDir, env.Storage.PublicPath)
	if err != nil {
		t.Fatal(err)
	}

	publisher := queue.NewNoopEventPublisher()
	categoryUseCase := category.NewCategoryUseCase(db.NewGormCategoryGateway(database))
	if err := categoryUseCase.Seed(t.Context(), []string{"General", "Work"}); err != nil {
		t.Fatal(err)
	}

	return NewServer(env, UseCases{
		Todo:     todo.NewTodoUseCase(db.NewGormTodoGateway(database), attachment.NewAttachmentUseCase(images), publisher),
		Category: categoryUseCase,
		Health:   health.NewHealthUseCase(db.NewGormHealthDBGateway(database), publisher),
	})
}

func do(t *testing.T, e *echo.Echo, req *http.Request) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("%s %s: body is not JSON: %q", req.Method, req.URL, rec.Body.String())
	}
	return rec.Code, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}
	if field != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func createTodo(t *testing.T, e *echo.Echo, body string) map[string]any {
	t.Helper()
	status, response := do(t, e, jsonRequest(http.MethodPost, "/todos", body))
	if status != http.StatusCreated {
		t.Fatalf("create: status %d, body %v", status, response)
	}
	return response["created"].(map[string]any)
}

func TestWelcomeAndUnknownRoute(t *testing.T) {
	e := newTestServer(t)

	status, body := do(t, e, httptest.NewRequest(http.MethodGet, "/", nil))
	if status != http.StatusOK || body["message"] != "Welcome to server endpoint" {
		t.Errorf("welcome: %d %v", status, body)
	}

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/nope", nil),
		httptest.NewRequest(http.MethodPatch, "/todos", nil),
		httptest.NewRequest(http.MethodGet, "/images/missing.png", nil),
	} {
		status, body := do(t, e, req)
		if status != http.StatusNotFound || body["message"] != "404 - Page not found" {
			t.Errorf("%s %s: %d %v", req.Method, req.URL, status, body)
		}
	}
}

func TestHealth(t *testing.T) {
	status, body := do(t, newTestServer(t), httptest.NewRequest(http.MethodGet, "/health", nil))
	if status != http.StatusOK || body["status"] != "UP" {
		t.Errorf("health: %d %v", status, body)
	}
	if events := body["events"].(map[string]any); events["status"] != "UNKNOWN" {
		t.Errorf("events: %v", events)
	}
}

func TestCreateAndGet(t *testing.T) {
	e := newTestServer(t)

	created := createTodo(t, e, `{"title":"Buy milk"}`)
	if created["category"] != "General" || created["done"] != false || created["image"] != "" {
		t.Errorf("defaults: %v", created)
	}

	id := created["id"].(string)
	status, body := do(t, e, httptest.NewRequest(http.MethodGet, "/todos/"+id, nil))
	if status != http.StatusOK || body["message"] != "Get todo with id: "+id {
		t.Fatalf("get: %d %v", status, body)
	}
	if body["todo"].(map[string]any)["title"] != "Buy milk" {
		t.Errorf("get: %v", body)
	}

	padded := createTodo(t, e, `{"title":"  Buy milk  "}`)["id"].(string)
	_, body = do(t, e, httptest.NewRequest(http.MethodGet, "/todos/"+padded, nil))
	if title := body["todo"].(map[string]any)["title"]; title != "  Buy milk  " {
		t.Errorf("title must be stored as sent, got %q", title)
	}
}

func TestCreateValidation(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "missing title", req: jsonRequest(http.MethodPost, "/todos", `{"description":"x"}`)},
		{name: "blank title", req: jsonRequest(http.MethodPost, "/todos", `{"title":"   "}`)},
		{name: "malformed json", req: jsonRequest(http.MethodPost, "/todos", `{"title":`)},
		{name: "empty body", req: httptest.NewRequest(http.MethodPost, "/todos", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, e, tt.req)
			if status != http.StatusBadRequest {
				t.Errorf("status: got %d, body %v", status, body)
			}
			if message, _ := body["message"].(string); !strings.HasPrefix(message, "ERROR: ") {
				t.Errorf("message: got %q", message)
			}
			if created, ok := body["created"]; !ok || created != nil {
				t.Errorf("created must be null, got %v", body)
			}
		})
	}

	_, body := do(t, e, httptest.NewRequest(http.MethodGet, "/todos", nil))
	if todos := body["todos"].([]any); len(todos) != 0 {
		t.Errorf("nothing must be persisted, got %v", todos)
	}
}

func TestCreateWithImage(t *testing.T) {
	e := newTestServer(t)

	req := multipartRequest(t, http.MethodPost, "/todos", map[string]string{"title": "Cat", "done": "true"}, "image", "cat.png", "image/png", pngHeader)
	status, body := do(t, e, req)
	if status != http.StatusCreated {
		t.Fatalf("create: %d %v", status, body)
	}

	created := body["created"].(map[string]any)
	image := created["image"].(string)
	if !strings.HasPrefix(image, "/images/") || !strings.HasSuffix(image, "-cat.png") {
		t.Errorf("image reference: got %q", image)
	}
	if created["done"] != true {
		t.Errorf("done from form: got %v", created["done"])
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, image, nil))
	if rec.Code != http.StatusOK || !bytes.Equal(rec.Body.Bytes(), pngHeader) {
		t.Errorf("static image: %d", rec.Code)
	}
}

func TestCreateRejectsAttachment(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{
			name: "text file",
			req:  multipartRequest(t, http.MethodPost, "/todos", map[string]string{"title": "Notes"}, "image", "notes.txt", "text/plain", []byte("hello")),
		},
		{
			name: "unexpected field",
			req:  multipartRequest(t, http.MethodPost, "/todos", map[string]string{"title": "Avatar"}, "avatar", "a.png", "image/png", pngHeader),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, e, tt.req)
			if status != http.StatusBadRequest || body["created"] != nil {
				t.Errorf("got %d %v", status, body)
			}
		})
	}
}

func TestListFilters(t *testing.T) {
	e := newTestServer(t)

	createTodo(t, e, `{"title":"a","category":"Work","done":true}`)
	createTodo(t, e, `{"title":"b","category":"Work"}`)
	createTodo(t, e, `{"title":"c","done":true}`)

	tests := []struct {
		query   string
		message string
		want    int
	}{
		{query: "", message: "Get all todos", want: 3},
		{query: "?done=true", message: "Get all todos marked Completed", want: 2},
		{query: "?done=false", message: "Get all todos marked Uncompleted", want: 1},
		{query: "?done=yes", message: "Get all todos marked Uncompleted", want: 1},
		{query: "?category=Work", message: "Get all todos in category Work", want: 2},
		{query: "?done=true&category=Work", message: "Get all todos marked Completed and in category Work", want: 1},
		{query: "?category=Nope", message: "Get all todos in category Nope", want: 0},
		{query: "?done=TRUE", message: "Get all todos marked Uncompleted", want: 1},
		{query: "?done=false&category=Nope", message: "Get all todos marked Uncompleted and in category Nope", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			status, body := do(t, e, httptest.NewRequest(http.MethodGet, "/todos"+tt.query, nil))
			if status != http.StatusOK {
				t.Fatalf("status: got %d", status)
			}
			if body["message"] != tt.message {
				t.Errorf("message: got %q, want %q", body["message"], tt.message)
			}
			todos, ok := body["todos"].([]any)
			if !ok || len(todos) != tt.want {
				t.Errorf("todos: got %v, want %d", body["todos"], tt.want)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	e := newTestServer(t)
	id := createTodo(t, e, `{"title":"Paint","category":"Home"}`)["id"].(string)

	status, body := do(t, e, jsonRequest(http.MethodPut, "/todos/"+id, `{"done":true}`))
	if status != http.StatusOK || body["message"] != "Updated todo with id: "+id {
		t.Fatalf("update: %d %v", status, body)
	}
	updated := body["updated"].(map[string]any)
	if updated["done"] != true || updated["title"] != "Paint" || updated["category"] != "Home" {
		t.Errorf("partial update: %v", updated)
	}

	req := httptest.NewRequest(http.MethodPut, "/todos/"+id, strings.NewReader("title=Repaint"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	status, body = do(t, e, req)
	if status != http.StatusOK || body["updated"].(map[string]any)["title"] != "Repaint" {
		t.Errorf("form update: %d %v", status, body)
	}

	tests := []struct {
		name   string
		id     string
		body   string
		status int
	}{
		{name: "blank title", id: id, body: `{"title":""}`, status: http.StatusBadRequest},
		{name: "unknown id", id: "0b7e5b2c-1f3e-4c1e-9c55-9f1c8f7c2a11", body: `{"done":true}`, status: http.StatusNotFound},
		{name: "malformed id", id: "abc", body: `{"done":true}`, status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, e, jsonRequest(http.MethodPut, "/todos/"+tt.id, tt.body))
			if status != tt.status || body["updated"] != nil {
				t.Errorf("got %d %v, want %d", status, body, tt.status)
			}
		})
	}
}

func TestImageStaysWithItsTodo(t *testing.T) {
	e := newTestServer(t)

	_, body := do(t, e, multipartRequest(t, http.MethodPost, "/todos", map[string]string{"title": "Owner"}, "image", "cat.png", "image/png", pngHeader))
	image := body["created"].(map[string]any)["image"].(string)
	other := createTodo(t, e, `{"title":"Other"}`)["id"].(string)

	for _, reference := range []string{image, "/images/.", "/images/.."} {
		t.Run(reference, func(t *testing.T) {
			status, body := do(t, e, jsonRequest(http.MethodPut, "/todos/"+other, `{"image":"`+reference+`"}`))
			if status != http.StatusBadRequest || body["updated"] != nil {
				t.Errorf("got %d %v, want 400", status, body)
			}
		})
	}

	if status, body := do(t, e, httptest.NewRequest(http.MethodDelete, "/todos/"+other, nil)); status != http.StatusOK {
		t.Fatalf("delete other: %d %v", status, body)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, image, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("owner image must still be served, got %d", rec.Code)
	}

	req := multipartRequest(t, http.MethodPost, "/todos", map[string]string{"title": "Dog"}, "image", "dog.png", "image/png", pngHeader)
	if status, body := do(t, e, req); status != http.StatusCreated {
		t.Errorf("later uploads must keep working, got %d %v", status, body)
	}
}

func TestDeleteTwice(t *testing.T) {
	e := newTestServer(t)
	id := createTodo(t, e, `{"title":"Clean"}`)["id"].(string)

	status, body := do(t, e, httptest.NewRequest(http.MethodDelete, "/todos/"+id, nil))
	if status != http.StatusOK || body["message"] != "Deleted todo" || body["deleted"].(map[string]any)["id"] != id {
		t.Fatalf("first delete: %d %v", status, body)
	}

	status, body = do(t, e, httptest.NewRequest(http.MethodDelete, "/todos/"+id, nil))
	if status != http.StatusNotFound || body["message"] != "ERROR: Todo with id: "+id+" not found" || body["deleted"] != nil {
		t.Errorf("second delete: %d %v", status, body)
	}

	status, _ = do(t, e, httptest.NewRequest(http.MethodGet, "/todos/"+id, nil))
	if status != http.StatusNotFound {
		t.Errorf("get after delete: %d", status)
	}

	status, _ = do(t, e, httptest.NewRequest(http.MethodDelete, "/todos/abc", nil))
	if status != http.StatusBadRequest {
		t.Errorf("malformed id: %d", status)
	}
}

func TestCategories(t *testing.T) {
	e := newTestServer(t)

	status, body := do(t, e, httptest.NewRequest(http.MethodGet, "/categories", nil))
	if status != http.StatusOK || body["message"] != "Get all categories" {
		t.Fatalf("list: %d %v", status, body)
	}
	categories := body["categories"].([]any)
	if len(categories) != 2 {
		t.Fatalf("categories: %v", categories)
	}

	id := categories[0].(map[string]any)["id"].(string)
	status, body = do(t, e, httptest.NewRequest(http.MethodGet, "/categories/"+id, nil))
	if status != http.StatusOK || body["category"].(map[string]any)["name"] != "General" {
		t.Errorf("get: %d %v", status, body)
	}

	status, body = do(t, e, httptest.NewRequest(http.MethodGet, "/categories/0b7e5b2c-1f3e-4c1e-9c55-9f1c8f7c2a11", nil))
	if status != http.StatusNotFound || body["category"] != nil {
		t.Errorf("unknown: %d %v", status, body)
	}

	status, _ = do(t, e, httptest.NewRequest(http.MethodPost, "/categories", nil))
	if status != http.StatusNotFound {
		t.Errorf("write routes must not be mounted, got %d", status)
	}
}
