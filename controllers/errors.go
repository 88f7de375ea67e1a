package controllers

import (
	"errors"
	"net/http"

	"catdogeats/client"
	"catdogeats/dashboard"
	"catdogeats/utils"
	"catdogeats/validate"
)

// MsgBackendFailed is the fallback text when the backend fails without a usable message
const MsgBackendFailed = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// MsgInvalidInput heads a field validation response
const MsgInvalidInput = "입력값을 확인해주세요."

// writeBackendError passes auth and not-found statuses through and reports everything
// else as a bad gateway carrying msg
func writeBackendError(w http.ResponseWriter, err error, msg string) {
	if msg == "" {
		msg = MsgBackendFailed
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			if apiErr.Message != "" {
				msg = apiErr.Message
			}
			utils.WriteError(w, apiErr.Status, msg)
			return
		}
	}
	utils.WriteError(w, http.StatusBadGateway, msg)
}

type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// writeInvalid reports field errors, or a bare 400 for anything that is not a validate.Errors
func writeInvalid(w http.ResponseWriter, err error) {
	var fieldErrs validate.Errors
	if errors.As(err, &fieldErrs) {
		utils.WriteJSON(w, http.StatusBadRequest, validationResponse{
			Message: MsgInvalidInput,
			Errors:  fieldErrs,
		})
		return
	}
	utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
}

// pageQuery reads ?page=&size= for listing endpoints
func pageQuery(w http.ResponseWriter, r *http.Request) (client.PageQuery, bool) {
	q := r.URL.Query()
	page, size, err := dashboard.ParsePage(q.Get("page"), q.Get("size"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return client.PageQuery{}, false
	}
	return client.PageQuery{Page: page, Size: size}, true
}
