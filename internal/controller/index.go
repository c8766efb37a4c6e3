package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"webserver/internal/http/response"
	"webserver/internal/registry"
	"webserver/internal/version"
)

// Index serves the landing page from <viewsDir>/index/index.html.
type Index struct {
	viewsDir string
	now      func() time.Time
}

func NewIndex(viewsDir string) *Index {
	return &Index{
		viewsDir: viewsDir,
		now:      time.Now,
	}
}

func (c *Index) Register(routes registry.Registry) error {
	return routes.Register("/", c.ActionIndex)
}

func (c *Index) ActionIndex() (*response.Response, error) {
	body, err := os.ReadFile(filepath.Join(c.viewsDir, "index", "index.html"))
	if err != nil {
		return nil, fmt.Errorf("read index view: %w", err)
	}

	return response.NewBuilder().
		StatusLine(response.NewStatusLine(response.Version11, 200, "OK")).
		Header(response.HeaderDate, response.Date(c.now())).
		Header(response.HeaderContentLength, strconv.Itoa(len(body))).
		Header(response.HeaderContentType, "text/html").
		Header("Server", "webserver/"+version.GetShortVersion()).
		Body(string(body)).
		Build()
}
