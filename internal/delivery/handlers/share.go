package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/zlog"
)

// Страница открывает заметку по deep link; если приложение не
// перехватило переход, через 1.5 секунды уводит в магазин приложений.
const sharePageHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Shared Note</title>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: sans-serif; text-align: center; padding: 20px; }
        .btn { display: inline-block; padding: 10px 20px; background-color: #6200ea; color: white; text-decoration: none; border-radius: 5px; margin-top: 20px; }
    </style>
</head>
<body>
    <h2>Opening Note...</h2>
    <p>If the app doesn't open automatically, click the button below.</p>
    <a href="{{.AppURL}}" class="btn">Open in App</a>
    <p><small>Don't have the app? <a href="{{.StoreURL}}">Download it here</a>.</small></p>

<script>
    window.location.href = "{{.AppURL}}";

    // Таймер вместо настоящей проверки установки приложения:
    // браузеры не дают надежного способа узнать, открылся ли deep link
    setTimeout(function() {
        window.location.href = "{{.StoreURL}}";
    }, 1500);
</script>
</body>
</html>
`

var sharePage = template.Must(template.New("share").Parse(sharePageHTML))

type sharePageData struct {
	AppURL   template.URL
	StoreURL template.URL
}

// ShareNoteHandler отдает HTML страницу с переходом в приложение.
// Любой noteId принимается без проверки, включая пустой; в URL он
// попадает в экранированном виде.
func (h *Handler) ShareNoteHandler(c *gin.Context) {
	noteID := c.Param("noteId")
	appURL := fmt.Sprintf("%s://note/%s", h.share.AppScheme, url.PathEscape(noteID))

	data := sharePageData{
		AppURL:   template.URL(appURL),
		StoreURL: template.URL(h.share.StoreURL),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := sharePage.Execute(c.Writer, data); err != nil {
		zlog.Logger.Error().Msgf("ShareNote: failed to render page: %v", err)
	}
}
