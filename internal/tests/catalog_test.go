// internal/tests/catalog_test.go
package tests

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/javajoker/wholesale-catalog/internal/models"
)

func (suite *APITestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("healthy", suite.decode(w)["status"])
}

func (suite *APITestSuite) TestResolveLiveSlug() {
	suite.seedProduct("Canvas Tote", "canvas-tote")

	w := suite.request(http.MethodGet, "/v1/catalog/product/canvas-tote", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	data := suite.data(w)
	suite.Equal("product", data["entity_type"])
	suite.Equal("canvas-tote", data["product"].(map[string]interface{})["slug"])
}

func (suite *APITestSuite) TestResolveRedirectHint() {
	suite.seedProduct("Canvas Tote", "canvas-tote")
	suite.Require().NoError(suite.store.CreateRedirect(suite.ctx, &models.Redirect{
		FromSlug:   "tote-bag",
		ToSlug:     "canvas-tote",
		EntityType: models.EntityTypeProduct,
		IsActive:   true,
	}))

	w := suite.request(http.MethodGet, "/v1/catalog/product/tote-bag", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	suite.Equal(true, response["success"])
	suite.Equal(true, response["redirect"])
	suite.Equal("canvas-tote", response["newSlug"])
}

func (suite *APITestSuite) TestResolveLegacyKey() {
	product := suite.seedProduct("Canvas Tote", "canvas-tote")

	w := suite.request(http.MethodGet, "/v1/catalog/product/"+product.ID, "", nil)
	suite.Equal(http.StatusMovedPermanently, w.Code)
	suite.Equal("/v1/catalog/product/canvas-tote", w.Header().Get("Location"))
}

func (suite *APITestSuite) TestResolveNotFound() {
	w := suite.request(http.MethodGet, "/v1/catalog/category/nowhere", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("NOT_FOUND", suite.errorCode(w))

	w = suite.request(http.MethodGet, "/v1/catalog/widget/anything", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestPublicProductsHideInactive() {
	suite.seedProduct("Canvas Tote", "canvas-tote")
	hidden := &models.Product{Name: "Retired Bag", Slug: "retired-bag"}
	suite.Require().NoError(suite.store.CreateProduct(suite.ctx, hidden))

	w := suite.request(http.MethodGet, "/v1/products", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("1", w.Header().Get("X-Total-Count"))

	items := suite.decode(w)["data"].([]interface{})
	suite.Require().Len(items, 1)
	suite.Equal("canvas-tote", items[0].(map[string]interface{})["slug"])
}

func (suite *APITestSuite) TestEditorRenamesProduct() {
	w := suite.request(http.MethodPost, "/v1/admin/products", suite.editorToken, map[string]interface{}{
		"name":         "Canvas Tote",
		"sample_price": 4.5,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	created := suite.data(w)["product"].(map[string]interface{})
	suite.Equal("canvas-tote", created["slug"])
	id := created["id"].(string)

	w = suite.request(http.MethodPut, "/v1/admin/products/"+id, suite.editorToken, map[string]interface{}{
		"name":            "Heavy Canvas Tote",
		"regenerate_slug": true,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("heavy-canvas-tote", suite.data(w)["product"].(map[string]interface{})["slug"])

	w = suite.request(http.MethodGet, "/v1/catalog/product/canvas-tote", "", nil)
	suite.Equal("heavy-canvas-tote", suite.decode(w)["newSlug"])

	w = suite.request(http.MethodGet, "/v1/admin/redirects?entity_type=product", suite.editorToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Len(suite.decode(w)["data"].([]interface{}), 1)
}

func (suite *APITestSuite) TestCreateProductRejectsTakenSlug() {
	suite.seedProduct("Canvas Tote", "canvas-tote")

	w := suite.request(http.MethodPost, "/v1/admin/products", suite.editorToken, map[string]interface{}{
		"name": "Another Tote",
		"slug": "canvas-tote",
	})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("CONFLICT", suite.errorCode(w))

	w = suite.request(http.MethodPost, "/v1/admin/products", suite.editorToken, map[string]interface{}{
		"name": "Another Tote",
		"slug": "Not A Slug",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", suite.errorCode(w))
}

func (suite *APITestSuite) TestRedirectCRUD() {
	w := suite.request(http.MethodPost, "/v1/admin/redirects", suite.editorToken, map[string]interface{}{
		"from_slug":   "old-bags",
		"to_slug":     "bags",
		"entity_type": "category",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	id := suite.data(w)["redirect"].(map[string]interface{})["id"].(string)

	w = suite.request(http.MethodPut, "/v1/admin/redirects/"+id, suite.editorToken, map[string]interface{}{"is_active": false})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal(false, suite.data(w)["redirect"].(map[string]interface{})["is_active"])

	w = suite.request(http.MethodGet, "/v1/catalog/category/old-bags", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodDelete, "/v1/admin/redirects/"+id, suite.editorToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/v1/admin/redirects/"+id, suite.editorToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodPost, "/v1/admin/redirects", suite.editorToken, map[string]interface{}{
		"from_slug":   "loop",
		"to_slug":     "loop",
		"entity_type": "product",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestAdminRunsSlugMigration() {
	missing := &models.Product{Name: "Linen Apron", IsActive: true}
	suite.Require().NoError(suite.store.CreateProduct(suite.ctx, missing))

	w := suite.request(http.MethodGet, "/v1/admin/migrations/slugs", suite.adminToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.request(http.MethodPost, "/v1/admin/migrations/slugs?type=product", suite.adminToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	totals := suite.data(w)["totals"].(map[string]interface{})
	suite.EqualValues(1, totals["found"])
	suite.EqualValues(1, totals["updated"])
	suite.EqualValues(0, totals["errored"])

	w = suite.request(http.MethodGet, "/v1/catalog/product/linen-apron", "", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodPost, "/v1/admin/migrations/slugs?type=widgets", suite.adminToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestPublicInquiry() {
	w := suite.request(http.MethodPost, "/v1/inquiries", "", map[string]interface{}{
		"name":    "Mei",
		"email":   "not-an-email",
		"message": "short",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", suite.errorCode(w))

	w = suite.request(http.MethodPost, "/v1/inquiries", "", map[string]interface{}{
		"name":    "Mei Chen",
		"email":   "Mei@Example.com",
		"message": "Looking for 500 totes with a printed logo.",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.request(http.MethodGet, "/v1/admin/inquiries", suite.editorToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("1", w.Header().Get("X-Total-Count"))
}

func (suite *APITestSuite) TestPublicMeetingRequiresFutureTime() {
	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)

	w := suite.request(http.MethodPost, "/v1/meetings", "", map[string]interface{}{
		"name":           "Mei Chen",
		"email":          "mei@example.com",
		"preferred_time": past,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestUploadImage() {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "tote.png")
	suite.Require().NoError(err)
	_, err = part.Write(png)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.WriteField("folder", "products"))
	suite.Require().NoError(writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/v1/admin/uploads", body)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.editorToken)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	data := suite.data(w)
	suite.Equal("image/png", data["mime_type"])
	suite.Contains(data["url"], "/uploads/products/")
}

func (suite *APITestSuite) TestDashboard() {
	suite.seedProduct("Canvas Tote", "canvas-tote")

	w := suite.request(http.MethodGet, "/v1/admin/dashboard", suite.editorToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.EqualValues(1, suite.data(w)["active_products"])
}
