package httpserver

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "nutricoach/pkg/errors"
	"nutricoach/pkg/response"
)

// registerStatic serves the built front-end for every unmatched GET. Unknown
// paths get index.html so client-side routes resolve. API paths never fall
// through to the site.
func (srv HTTPServer) registerStatic() {
	ctx := context.Background()
	if srv.staticDir == "" {
		srv.gin.NoRoute(notFound)
		srv.l.Infof(ctx, "Static site disabled")
		return
	}

	files := http.Dir(srv.staticDir)
	srv.gin.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix+"/") ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			notFound(c)
			return
		}
		c.FileFromFS(sitePath(files, c.Request.URL.Path), files)
	})
	srv.l.Infof(ctx, "Static site served from %s", srv.staticDir)
}

// sitePath returns name when it is a regular file under files and "/"
// (index.html) otherwise.
func sitePath(files http.FileSystem, name string) string {
	name = path.Clean("/" + name)
	f, err := files.Open(name)
	if err != nil {
		return "/"
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return "/"
	}
	return name
}

func notFound(c *gin.Context) {
	response.Error(c, pkgErrors.ErrNotFound, nil)
}
