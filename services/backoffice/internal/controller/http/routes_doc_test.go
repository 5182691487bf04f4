package http

import (
	"encoding/json"
	"go/parser"
	"go/token"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"lv33global/services/backoffice/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

// annotatedRoutes collects "METHOD /path" from the @Router lines of the
// package's handler doc comments.
func annotatedRoutes(t *testing.T) map[string]bool {
	t.Helper()

	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	routes := map[string]bool{}
	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
		require.NoError(t, err)
		for _, group := range file.Comments {
			for _, m := range routerAnnotation.FindAllStringSubmatch(group.Text(), -1) {
				routes[strings.ToUpper(m[2])+" "+m[1]] = true
			}
		}
	}
	return routes
}

// registeredRoutes lists the /api routes in swagger path syntax.
func registeredRoutes(t *testing.T) []string {
	t.Helper()

	param := regexp.MustCompile(`:(\w+)`)
	var routes []string
	for _, r := range setupContentServer(t).router.Routes() {
		path, ok := strings.CutPrefix(r.Path, "/api")
		if !ok {
			continue
		}
		routes = append(routes, r.Method+" "+param.ReplaceAllString(path, "{$1}"))
	}
	return routes
}

func TestRoutes_AllAnnotated(t *testing.T) {
	annotated := annotatedRoutes(t)
	registered := registeredRoutes(t)
	require.Len(t, registered, 32)

	for _, route := range registered {
		assert.True(t, annotated[route], "missing @Router annotation for %s", route)
	}
	assert.Len(t, annotated, len(registered))
}

func TestRoutes_AllDocumented(t *testing.T) {
	var spec struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &spec))

	for _, route := range registeredRoutes(t) {
		method, path, _ := strings.Cut(route, " ")
		_, ok := spec.Paths[path][strings.ToLower(method)]
		assert.True(t, ok, "swagger doc is missing %s", route)
	}
}
