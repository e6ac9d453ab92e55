package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uk.co.dudmesh.contacts/internal/handlers"
	"uk.co.dudmesh.contacts/internal/model"
	"uk.co.dudmesh.contacts/internal/service/address"
	"uk.co.dudmesh.contacts/internal/service/contact"
	"uk.co.dudmesh.contacts/internal/service/user"
	"uk.co.dudmesh.contacts/internal/store"
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := store.Open(strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := user.New(db)
	contacts := contact.New(db)
	addresses := address.New(db, contacts)

	server := echo.New()
	server.HTTPErrorHandler = handlers.HTTPErrorHandler
	api := server.Group("/api", handlers.ResolvePrincipal(users))
	handlers.Routes(api, users, contacts, addresses)
	return server
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors string          `json:"errors"`
	Paging *model.Paging   `json:"paging"`
}

func do(t *testing.T, server *echo.Echo, method, path, token string, body interface{}) (int, *envelope) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(encoded))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	resp := &envelope{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), resp))
	return rec.Code, resp
}

func TestScenario(t *testing.T) {
	assert := assert.New(t)
	server := testServer(t)

	status, resp := do(t, server, http.MethodPost, "/api/users", "", map[string]string{
		"username": "u1", "password": "p1", "name": "User One",
	})
	assert.Equal(http.StatusOK, status)

	registered := model.UserResponse{}
	require.NoError(t, json.Unmarshal(resp.Data, &registered))
	assert.Equal("u1", registered.Username)
	assert.Equal("User One", registered.Name)

	t.Run("duplicate registration", func(t *testing.T) {
		status, resp := do(t, server, http.MethodPost, "/api/users", "", map[string]string{
			"username": "u1", "password": "p1", "name": "User One",
		})
		assert.Equal(http.StatusBadRequest, status)
		assert.Equal("username already exists", resp.Errors)
	})

	status, resp = do(t, server, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "u1", "password": "p1",
	})
	assert.Equal(http.StatusOK, status)

	loggedIn := model.UserResponse{}
	require.NoError(t, json.Unmarshal(resp.Data, &loggedIn))
	require.NotEmpty(t, loggedIn.Token)
	token := loggedIn.Token

	status, resp = do(t, server, http.MethodPost, "/api/contacts", token, map[string]string{
		"first_name": "Jane",
	})
	assert.Equal(http.StatusOK, status)

	createdContact := model.ContactResponse{}
	require.NoError(t, json.Unmarshal(resp.Data, &createdContact))
	require.NotZero(t, createdContact.ID)

	addressPath := fmt.Sprintf("/api/contacts/%d/addresses", createdContact.ID)
	status, resp = do(t, server, http.MethodPost, addressPath, token, map[string]string{
		"country": "ID", "postal_code": "12345",
	})
	assert.Equal(http.StatusOK, status)

	createdAddress := model.AddressResponse{}
	require.NoError(t, json.Unmarshal(resp.Data, &createdAddress))

	status, resp = do(t, server, http.MethodGet, addressPath, token, nil)
	assert.Equal(http.StatusOK, status)

	list := []model.AddressResponse{}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Len(list, 1)
	assert.Equal(createdAddress, list[0])
}

func TestGuard(t *testing.T) {
	assert := assert.New(t)
	server := testServer(t)

	t.Run("no token", func(t *testing.T) {
		status, resp := do(t, server, http.MethodGet, "/api/users/current", "", nil)
		assert.Equal(http.StatusUnauthorized, status)
		assert.NotEmpty(resp.Errors)
	})

	t.Run("stale token", func(t *testing.T) {
		status, _ := do(t, server, http.MethodGet, "/api/users/current", "no-such-token", nil)
		assert.Equal(http.StatusUnauthorized, status)
	})

	t.Run("bearer prefix accepted", func(t *testing.T) {
		_, _ = do(t, server, http.MethodPost, "/api/users", "", map[string]string{
			"username": "u1", "password": "p1", "name": "User One",
		})
		_, resp := do(t, server, http.MethodPost, "/api/users/login", "", map[string]string{
			"username": "u1", "password": "p1",
		})
		loggedIn := model.UserResponse{}
		require.NoError(t, json.Unmarshal(resp.Data, &loggedIn))

		status, _ := do(t, server, http.MethodGet, "/api/users/current", "Bearer "+loggedIn.Token, nil)
		assert.Equal(http.StatusOK, status)
	})
}

func TestPathValidation(t *testing.T) {
	assert := assert.New(t)
	server := testServer(t)

	_, _ = do(t, server, http.MethodPost, "/api/users", "", map[string]string{
		"username": "u1", "password": "p1", "name": "User One",
	})
	_, resp := do(t, server, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "u1", "password": "p1",
	})
	loggedIn := model.UserResponse{}
	require.NoError(t, json.Unmarshal(resp.Data, &loggedIn))

	status, resp := do(t, server, http.MethodGet, "/api/contacts/abc", loggedIn.Token, nil)
	assert.Equal(http.StatusBadRequest, status)
	assert.Contains(resp.Errors, "contactId")

	status, _ = do(t, server, http.MethodGet, "/api/contacts?page=abc", loggedIn.Token, nil)
	assert.Equal(http.StatusBadRequest, status)

	status, _ = do(t, server, http.MethodGet, "/api/contacts/999", loggedIn.Token, nil)
	assert.Equal(http.StatusNotFound, status)
}

func TestSearchPaging(t *testing.T) {
	assert := assert.New(t)
	server := testServer(t)

	_, _ = do(t, server, http.MethodPost, "/api/users", "", map[string]string{
		"username": "u1", "password": "p1", "name": "User One",
	})
	_, resp := do(t, server, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "u1", "password": "p1",
	})
	loggedIn := model.UserResponse{}
	require.NoError(t, json.Unmarshal(resp.Data, &loggedIn))

	for i := 0; i < 25; i++ {
		status, _ := do(t, server, http.MethodPost, "/api/contacts", loggedIn.Token, map[string]string{
			"first_name": fmt.Sprintf("Contact %02d", i),
		})
		require.Equal(t, http.StatusOK, status)
	}

	expectedLengths := []int{10, 10, 5}
	for page := 1; page <= 3; page++ {
		status, resp := do(t, server, http.MethodGet, fmt.Sprintf("/api/contacts?page=%d&size=10", page), loggedIn.Token, nil)
		assert.Equal(http.StatusOK, status)

		results := []model.ContactResponse{}
		require.NoError(t, json.Unmarshal(resp.Data, &results))
		assert.Len(results, expectedLengths[page-1])
		require.NotNil(t, resp.Paging)
		assert.Equal(3, resp.Paging.TotalPage)
	}
}
