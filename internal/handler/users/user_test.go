package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"account-service/internal/database"
	"account-service/internal/middleware"
	"account-service/internal/model"
	"account-service/internal/service"
	"account-service/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asUser(c echo.Context, id int) {
	c.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: id})
}

func TestListUsersHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		orig := listUsers
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return []model.User{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}}, nil
		}
		defer func() { listUsers = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodGet, "")
		require.NoError(t, ListUsersHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"username":"a"`)
		require.Contains(t, rec.Body.String(), `"username":"b"`)
	})

	t.Run("store failure", func(t *testing.T) {
		orig := listUsers
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return nil, errors.New("database down")
		}
		defer func() { listUsers = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodGet, "")
		require.NoError(t, ListUsersHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetMyUserHandler(t *testing.T) {
	t.Run("no claims", func(t *testing.T) {
		ctx, rec := newCtx(echo.New(), http.MethodGet, "")
		require.NoError(t, GetMyUserHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		orig := getUserByID
		getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 7, id)
			return &model.User{ID: 7, Username: "me", FirstName: "Me", LastName: "Myself"}, nil
		}
		defer func() { getUserByID = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodGet, "")
		asUser(ctx, 7)
		require.NoError(t, GetMyUserHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"full_name":"Me Myself"`)
	})

	t.Run("store failure", func(t *testing.T) {
		orig := getUserByID
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, errors.New("database down")
		}
		defer func() { getUserByID = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodGet, "")
		asUser(ctx, 7)
		require.NoError(t, GetMyUserHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUpdateMyProfileHandler(t *testing.T) {
	current := model.User{ID: 7, Username: "me", Email: "me@example.com", FirstName: "Old", LastName: "Name"}

	stubCurrent := func(t *testing.T) {
		t.Helper()
		orig := getUserByID
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			u := current
			return &u, nil
		}
		t.Cleanup(func() { getUserByID = orig })
	}

	t.Run("no claims", func(t *testing.T) {
		ctx, rec := newCtx(echo.New(), http.MethodPut, "username=me&email=me@example.com&first_name=A&last_name=B")
		require.NoError(t, UpdateMyProfileHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("structural validation failure", func(t *testing.T) {
		stubCurrent(t)
		ctx, rec := newCtx(echo.New(), http.MethodPut, "username=me&email=me@example.com&first_name=&last_name=B")
		asUser(ctx, 7)
		require.NoError(t, UpdateMyProfileHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "This field is required.")
	})

	t.Run("success with unchanged identity", func(t *testing.T) {
		stubCurrent(t)
		var saved *model.User
		orig := updateUser
		updateUser = func(_ context.Context, _ database.DB, u *model.User) error {
			saved = u
			return nil
		}
		defer func() { updateUser = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodPut, "username=me&email=me@example.com&first_name=New&last_name=Name")
		asUser(ctx, 7)
		require.NoError(t, UpdateMyProfileHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, saved)
		require.Equal(t, "New", saved.FirstName)
		require.Equal(t, 7, saved.ID)
	})

	t.Run("email lowercased before save", func(t *testing.T) {
		stubCurrent(t)
		var saved *model.User
		orig := updateUser
		updateUser = func(_ context.Context, _ database.DB, u *model.User) error {
			saved = u
			return nil
		}
		defer func() { updateUser = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodPut, "username=me&email=ME@Example.com&first_name=A&last_name=B")
		asUser(ctx, 7)
		require.NoError(t, UpdateMyProfileHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "me@example.com", saved.Email)
	})

	t.Run("duplicate slips past the form check", func(t *testing.T) {
		stubCurrent(t)
		orig := updateUser
		updateUser = func(context.Context, database.DB, *model.User) error {
			return store.ErrUsernameTaken
		}
		defer func() { updateUser = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodPut, "username=me&email=me@example.com&first_name=A&last_name=B")
		asUser(ctx, 7)
		require.NoError(t, UpdateMyProfileHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "Username already registered")
	})
}

func TestListMyRolesHandler(t *testing.T) {
	t.Run("no claims", func(t *testing.T) {
		ctx, rec := newCtx(echo.New(), http.MethodGet, "")
		require.NoError(t, ListMyRolesHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		userID := 7
		orig := listRolesByUserID
		listRolesByUserID = func(_ context.Context, _ database.DB, id int) ([]model.Role, error) {
			require.Equal(t, 7, id)
			return []model.Role{{ID: 1, Name: "editor", UserID: &userID}}, nil
		}
		defer func() { listRolesByUserID = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodGet, "")
		asUser(ctx, 7)
		require.NoError(t, ListMyRolesHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"name":"editor"`)
	})

	t.Run("empty list is a JSON array", func(t *testing.T) {
		orig := listRolesByUserID
		listRolesByUserID = func(context.Context, database.DB, int) ([]model.Role, error) {
			return nil, nil
		}
		defer func() { listRolesByUserID = orig }()

		ctx, rec := newCtx(echo.New(), http.MethodGet, "")
		asUser(ctx, 7)
		require.NoError(t, ListMyRolesHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})
}
