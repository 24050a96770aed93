package handlers

import (
	"html/template"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jwrfree/jatinotes-sub000/internal/comments"
)

func testTemplate(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.New("page").Parse(`{{.Title}} {{.CurrentPath}}`)
	if err != nil {
		t.Fatal(err)
	}
	return tmpl
}

func TestWithFlashDoesNotMutateCachedData(t *testing.T) {
	cached := gin.H{"Title": "Hello World", "CommentCount": 2}

	out := withFlash(cached, comments.PendingModerationMessage)

	if out["Flash"] != comments.PendingModerationMessage {
		t.Errorf("Expected flash on the copy, got %v", out["Flash"])
	}
	if _, ok := cached["Flash"]; ok {
		t.Error("Flash must not be written into the cached map")
	}
	if out["Title"] != "Hello World" || out["CommentCount"] != 2 {
		t.Errorf("Copy should carry the cached entries, got %v", out)
	}
}

func TestFlashMessageFollowsRedirectFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/p/hello-world?submitted=1", nil)
	if got := flashMessage(c); got != comments.PendingModerationMessage {
		t.Errorf("Expected the moderation notice, got %q", got)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/p/hello-world", nil)
	if got := flashMessage(c); got != "" {
		t.Errorf("Expected no flash without the redirect flag, got %q", got)
	}
}

func TestRenderLeavesCallerMapUntouched(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(testTemplate(t))
	c.Request = httptest.NewRequest("GET", "/p/hello-world", nil)

	cached := gin.H{"Title": "Hello World"}
	Render(c, 200, "page", cached)

	if len(cached) != 1 {
		t.Errorf("Render must not write into the caller's map, got %v", cached)
	}
}
