package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	textOk                = `ok`
	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeForbiddenError    = 403
	codeNotFound          = 404
	codeConflict          = 409
	codeValidationError   = 422
	codeDatabaseError     = 500
	codeTooManyRequests   = 429
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   int
	Message  string
	Data     interface{}
	Code     int // not the http code
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds the validator with English messages.
func NewHTTPHelper() *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	return &HTTPHelper{Validate: validate, Translator: trans}
}

type statusCoder interface {
	StatusCode() int
}

// GetStatusCode ...
// Map a domain error to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var coded statusCoder
	if errors.As(err, &coded) {
		return coded.StatusCode()
	}
	return http.StatusInternalServerError
}

// ValidationMessages ...
// Translate validation errors into messages keyed by snake_case field name.
func (u *HTTPHelper) ValidationMessages(validationErrors validator.ValidationErrors) map[string][]string {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}
	return errorResponse
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status int, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, status int, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, status, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendAppError ...
// Send a domain error with the status it maps to.
func (u *HTTPHelper) SendAppError(c *gin.Context, err error) error {
	status := u.GetStatusCode(err)
	switch status {
	case http.StatusNotFound:
		return u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusUnauthorized:
		return u.SendUnauthorizedError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusForbidden:
		return u.SendForbiddenError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusConflict:
		return u.SendError(c, status, err.Error(), u.EmptyJsonMap(), codeConflict, `conflict`)
	case http.StatusBadRequest:
		return u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
	default:
		return u.SendDatabaseError(c, err.Error(), u.EmptyJsonMap())
	}
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, http.StatusBadRequest, message, data, codeBadRequestError, `badRequest`)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    "validationError",
		"code_message": u.ValidationMessages(validationErrors),
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendDatabaseError ...
// Send database error response to consumers.
func (u *HTTPHelper) SendDatabaseError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, http.StatusInternalServerError, message, data, codeDatabaseError, `databaseError`)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, http.StatusUnauthorized, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, http.StatusForbidden, message, data, codeForbiddenError, `forbidden`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, http.StatusNotFound, message, data, codeNotFound, `notFound`)
}

// SendTooManyRequests ...
func (u *HTTPHelper) SendTooManyRequests(c *gin.Context, message string) error {
	return u.SendError(c, http.StatusTooManyRequests, message, u.EmptyJsonMap(), codeTooManyRequests, `tooManyRequests`)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, http.StatusOK, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendCreated ...
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, http.StatusCreated, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = textOk
	}
	if res.Status == 0 {
		res.Status = http.StatusOK
	}

	res.C.JSON(res.Status, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	currentURL := scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	return currentURL
}

// Set paginantion response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, limit, page, totalRecord int) map[string]interface{} {
	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if totalPages >= page && page > 1 {
		prevURL = u.GetPagingUrl(c, page-1, limit)
		firstURL = u.GetPagingUrl(c, 1, limit)
	}

	if totalPages > page {
		nextURL = u.GetPagingUrl(c, page+1, limit)
	}

	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages, limit)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}
}
