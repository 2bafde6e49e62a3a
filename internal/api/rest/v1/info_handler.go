package v1

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MGTheTrain/specfem-web/internal/infrastructure/rendering"

	"github.com/gin-gonic/gin"
)

// PageRenderer writes the server-rendered HTML pages
type PageRenderer interface {
	RenderInfo(w io.Writer, topic string) error
	RenderLogin(w io.Writer, page *rendering.LoginPage) error
}

// InfoHandler defines the interface for the static help pages
type InfoHandler interface {
	Show(ctx *gin.Context)
}

type infoHandler struct {
	pages PageRenderer
}

// NewInfoHandler creates a new InfoHandler
func NewInfoHandler(pages PageRenderer) InfoHandler {
	return &infoHandler{pages: pages}
}

// Show renders the help page of a topic
func (handler *infoHandler) Show(ctx *gin.Context) {
	topic := ctx.Param("topic")

	var buf bytes.Buffer
	if err := handler.pages.RenderInfo(&buf, topic); err != nil {
		if errors.Is(err, rendering.ErrUnknownTopic) {
			ctx.JSON(http.StatusNotFound, newErrorResponse("no info page for %s", topic))
			return
		}
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("%v", err))
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
