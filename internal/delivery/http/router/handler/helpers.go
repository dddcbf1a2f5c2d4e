package handler

import (
	"mime/multipart"
	"net/http"
	"time"

	"elyukal/internal/delivery/http/middleware"
	"elyukal/internal/domain/entity"
	"elyukal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// setSessionCookie attaches an HTTP-only session cookie to the response.
func setSessionCookie(c echo.Context, name, token string, maxAge time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the named session cookie.
func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// actorFromContext returns the actor stored by the auth middleware.
func actorFromContext(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(middleware.ContextKeyActor).(entity.Actor)

	return actor, ok
}

// adminFromContext returns the admin identity stored by RequireAdmin.
func adminFromContext(c echo.Context) (*entity.AdminUser, bool) {
	admin, ok := c.Get(middleware.ContextKeyAdminUser).(*entity.AdminUser)

	return admin, ok
}

// storeUserFromContext returns the seller identity stored by RequireStoreUser.
func storeUserFromContext(c echo.Context) (*entity.StoreUser, bool) {
	user, ok := c.Get(middleware.ContextKeyStoreUser).(*entity.StoreUser)

	return user, ok
}

// formFile reads one uploaded file from the multipart form. It returns nil
// when the field is absent so optional files stay optional; the returned
// close function is non-nil whenever the upload is.
func formFile(c echo.Context, field string) (*usecase.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}

		return nil, nil, errors.Wrapf(err, "failed to read form file %q", field)
	}

	return openFormFile(header)
}

// formFiles reads every uploaded file under the given multipart field.
func formFiles(c echo.Context, field string) ([]*usecase.FileUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, nil
	}

	headers := form.File[field]
	uploads := make([]*usecase.FileUpload, 0, len(headers))
	closers := make([]func(), 0, len(headers))

	closeAll := func() {
		for _, closeFile := range closers {
			closeFile()
		}
	}

	for _, header := range headers {
		upload, closeFile, err := openFormFile(header)
		if err != nil {
			closeAll()

			return nil, nil, err
		}

		uploads = append(uploads, upload)
		closers = append(closers, closeFile)
	}

	return uploads, closeAll, nil
}

func openFormFile(header *multipart.FileHeader) (*usecase.FileUpload, func(), error) {
	src, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open uploaded file")
	}

	upload := &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     src,
	}

	return upload, func() { _ = src.Close() }, nil
}
