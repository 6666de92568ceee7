// internal/tests/auth_test.go
package tests

import (
	"net/http"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

func (suite *APITestSuite) TestLogin() {
	w := suite.request(http.MethodPost, "/v1/auth/login", "", map[string]interface{}{
		"email":    "Admin@Wholesale.example",
		"password": adminPassword,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	data := suite.data(w)
	token := data["token"].(string)
	suite.Equal("Bearer", data["token_type"])
	suite.NotContains(w.Body.String(), "password")

	claims, err := utils.ValidateJWT(token)
	suite.Require().NoError(err)
	suite.Equal(string(models.AdminRoleAdmin), claims.Role)

	w = suite.request(http.MethodGet, "/v1/auth/me", token, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(adminEmail, suite.data(w)["email"])
}

func (suite *APITestSuite) TestLoginWrongPassword() {
	w := suite.request(http.MethodPost, "/v1/auth/login", "", map[string]interface{}{
		"email":    adminEmail,
		"password": "not-it",
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("UNAUTHORIZED", suite.errorCode(w))

	w = suite.request(http.MethodPost, "/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@wholesale.example",
		"password": adminPassword,
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestLoginValidation() {
	w := suite.request(http.MethodPost, "/v1/auth/login", "", map[string]interface{}{"email": "not-an-email"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", suite.errorCode(w))
}

func (suite *APITestSuite) TestAdminRequiresToken() {
	w := suite.request(http.MethodGet, "/v1/admin/products", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("UNAUTHORIZED", suite.errorCode(w))

	w = suite.request(http.MethodGet, "/v1/admin/products", "not-a-jwt", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	expired, err := utils.GenerateJWT(models.NewID(), adminEmail, string(models.AdminRoleAdmin), -1)
	suite.Require().NoError(err)
	w = suite.request(http.MethodGet, "/v1/admin/products", expired, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestUnknownRoleForbidden() {
	token, err := utils.GenerateJWT(models.NewID(), "buyer@example.com", "buyer", 1)
	suite.Require().NoError(err)

	w := suite.request(http.MethodGet, "/v1/admin/products", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("FORBIDDEN", suite.errorCode(w))
}

func (suite *APITestSuite) TestEditorCannotRunMigrations() {
	w := suite.request(http.MethodPost, "/v1/admin/migrations/slugs?type=all", suite.editorToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodGet, "/v1/admin/migrations/slugs", suite.editorToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *APITestSuite) TestEditorCannotChangeOrderStatus() {
	id := models.NewID()
	body := map[string]interface{}{"status": "closed"}

	w := suite.request(http.MethodPut, "/v1/admin/inquiries/"+id+"/status", suite.editorToken, body)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodPut, "/v1/admin/sample-orders/"+id+"/status", suite.editorToken, map[string]interface{}{"status": "paid"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodPut, "/v1/admin/inquiries/"+id+"/status", suite.adminToken, body)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestAdminManagesEditors() {
	body := map[string]interface{}{
		"email":    "editor@wholesale.example",
		"name":     "Catalog Editor",
		"password": "editor-pass-1",
		"role":     "editor",
	}

	w := suite.request(http.MethodPost, "/v1/admin/users", suite.editorToken, body)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodPost, "/v1/admin/users", suite.adminToken, body)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.NotContains(w.Body.String(), "password")

	w = suite.request(http.MethodPost, "/v1/auth/login", "", map[string]interface{}{
		"email":    "editor@wholesale.example",
		"password": "editor-pass-1",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	token := suite.data(w)["token"].(string)

	w = suite.request(http.MethodPost, "/v1/admin/migrations/slugs", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodGet, "/v1/admin/users", suite.adminToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("2", w.Header().Get("X-Total-Count"))
}
