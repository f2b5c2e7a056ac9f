package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func getShare(t *testing.T, noteID string) *httptest.ResponseRecorder {
	t.Helper()

	h := newTestHandler(new(MockNotifierService))

	req, _ := http.NewRequest("GET", "/share/"+noteID, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = []gin.Param{{Key: "noteId", Value: noteID}}

	h.ShareNoteHandler(c)
	return w
}

// TestShareNoteHandler_Success проверяет страницу шаринга заметки
func TestShareNoteHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := getShare(t, "abc123")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, `href="flutter-note-app://note/abc123"`)
	assert.Contains(t, body, "play.google.com/store/apps/details")
	assert.Contains(t, body, "1500")
	assert.Contains(t, body, "setTimeout")
}

// TestShareNoteHandler_EmptyNoteID проверяет, что пустой id заметки не является ошибкой
func TestShareNoteHandler_EmptyNoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := getShare(t, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "flutter-note-app://note/")
}

// TestShareNoteHandler_SpecialCharacters проверяет, что id заметки
// попадает в страницу только в экранированном виде
func TestShareNoteHandler_SpecialCharacters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := getShare(t, `"><script>alert(1)</script>`)

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "flutter-note-app://note/%22%3E%3Cscript%3E")
}

// TestShareNoteHandler_NoteIDWithSpaces проверяет экранирование пробелов в id
func TestShareNoteHandler_NoteIDWithSpaces(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := getShare(t, "note with spaces")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "flutter-note-app://note/note%20with%20spaces")
}
