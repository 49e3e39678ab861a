package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/util"
)

var testPrincipal = &pdp_model.Principal{SubjectID: "u1", Role: model.RoleUser, Issuer: pdp_model.IssuerExternalIDP}

var testAdmin = &pdp_model.Principal{SubjectID: "a1", Role: model.RoleAdmin, Issuer: pdp_model.IssuerLocalAdmin}

// setupRouter returns a router whose requests all carry p.
func setupRouter(p *pdp_model.Principal) (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/", func(c *gin.Context) {
		util.SetPrincipal(c, p)
		c.Next()
	})
	return r, api
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
