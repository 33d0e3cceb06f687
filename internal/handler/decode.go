package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jevelon/backend/internal/model"
)

const maxBodyBytes = 1 << 20

// decodeInput fills dst from a JSON, urlencoded or multipart body. Form
// values are matched to dst's json field names. Problems with the body
// itself come back as field errors under model.NonFieldErrors, or under a
// field when one value has the wrong JSON type.
func decodeInput(w http.ResponseWriter, r *http.Request, dst any) model.FieldErrors {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return bodyError("Unsupported media type in request.")
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		return decodeJSON(r.Body, dst)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r, dst)
	default:
		return bodyError(fmt.Sprintf("Unsupported media type %q in request.", mediaType))
	}
}

func decodeJSON(body io.Reader, dst any) model.FieldErrors {
	err := json.NewDecoder(body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fe := model.FieldErrors{}
		fe.Add(typeErr.Field, "Not a valid string.")
		return fe
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return bodyError("Request body too large.")
	}
	return bodyError("JSON parse error - " + err.Error())
}

func decodeForm(r *http.Request, dst any) model.FieldErrors {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		err = r.ParseMultipartForm(maxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return bodyError("Malformed form data.")
	}

	values := make(map[string]string, len(r.PostForm))
	for k, v := range r.PostForm {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return bodyError("Malformed form data.")
	}
	return decodeJSON(strings.NewReader(string(raw)), dst)
}

func bodyError(msg string) model.FieldErrors {
	fe := model.FieldErrors{}
	fe.Add(model.NonFieldErrors, msg)
	return fe
}
