package utils

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type cachedPage struct {
	status      int
	contentType string
	body        []byte
	deadline    time.Time
}

// Process-wide store, keyed by request URI. Entries expire lazily.
var pageStore = cmap.New[cachedPage]()

// PageCache serves a previously rendered response for CacheTime, so a
// burst of identical requests renders the page once. Attach per-route;
// it must not change what the underlying handler would compute, only
// how stale the served copy may be.
type PageCache struct {
	CacheTime time.Duration
}

func (pc *PageCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.RequestURI
		if entry, ok := pageStore.Get(key); ok && time.Now().Before(entry.deadline) {
			c.Data(entry.status, entry.contentType, entry.body)
			c.Abort()
			return
		}
		writer := &bufferedWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		if writer.Status() != http.StatusOK {
			return
		}
		pageStore.Set(key, cachedPage{
			status:      writer.Status(),
			contentType: writer.Header().Get("Content-Type"),
			body:        writer.buf.Bytes(),
			deadline:    time.Now().Add(pc.CacheTime),
		})
	}
}

// ClearPageCache drops every cached page. The next request per key
// recomputes and re-renders.
func ClearPageCache() {
	pageStore.Clear()
}

type bufferedWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
