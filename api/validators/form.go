package validators

import (
	"mime"
	"net/http"
	"strings"

	"github.com/go-playground/form/v4"

	pkgerrors "github.com/washlane/washlane-backend/pkg/errors"
)

const maxFormMemory = 1 << 20

// IsFormRequest reports whether the request carries a browser form post
// rather than a JSON body.
func IsFormRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return true
	}
	return false
}

// WantsHTML reports whether the client is a browser expecting a redirect
// flow instead of a JSON envelope.
func WantsHTML(r *http.Request) bool {
	if IsFormRequest(r) {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("form")
	return d
}

// DecodeForm parses the form body into dest via `form` struct tags and runs
// the shared validator.
func DecodeForm(r *http.Request, dest any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body").WithDetails(map[string]any{"error": err.Error()})
		}
	} else if err := r.ParseForm(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body").WithDetails(map[string]any{"error": err.Error()})
	}

	if err := formDecoder.Decode(dest, r.PostForm); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body").WithDetails(map[string]any{"error": err.Error()})
	}

	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// DecodeRequest picks the decoder matching the request content type so the
// same handler serves both browser forms and JSON clients.
func DecodeRequest(r *http.Request, dest any) error {
	if IsFormRequest(r) {
		return DecodeForm(r, dest)
	}
	return DecodeJSONBody(r, dest)
}
