package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"account-service/internal/database"
	"account-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// newFormCtx builds an echo context carrying a urlencoded form body.
func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

// fakeUserRow implements pgx.Row for the store lookups behind the forms.
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Username
	*dest[2].(*string) = u.Email
	*dest[3].(**string) = u.PasswordHash
	*dest[4].(*string) = u.FirstName
	*dest[5].(*string) = u.LastName
	*dest[6].(*bool) = u.Active
	*dest[7].(*bool) = u.IsAdmin
	*dest[8].(*time.Time) = u.CreatedAt
	return nil
}

// emptyDB answers every lookup with no rows.
func emptyDB() *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeUserRow{scanErr: pgx.ErrNoRows}
		},
	}
}

// singleUserDB answers every lookup with the given user.
func singleUserDB(u *model.User) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeUserRow{user: u}
		},
	}
}
