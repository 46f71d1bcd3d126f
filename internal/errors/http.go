package errors

// Response is the JSON body written for a failed request.
type Response struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Kind    string                 `json:"kind,omitempty"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// ToHTTP converts any error to an HTTP status and a response body. Errors that
// are not *Error are reported as internal without leaking their text.
func ToHTTP(err error) (int, Response) {
	if err == nil {
		return CodeOK.HTTPStatus(), Response{Code: CodeOK}
	}

	var customErr *Error
	if !As(err, &customErr) {
		return CodeInternal.HTTPStatus(), Response{
			Code:    CodeInternal,
			Message: "internal error",
		}
	}

	meta := make(map[string]interface{}, len(customErr.Meta))
	for k, v := range customErr.Meta {
		if k == MetaKind {
			continue
		}
		meta[k] = v
	}
	if len(meta) == 0 {
		meta = nil
	}

	return customErr.Code.HTTPStatus(), Response{
		Code:    customErr.Code,
		Message: customErr.Message,
		Kind:    GetKind(err),
		Meta:    meta,
	}
}
