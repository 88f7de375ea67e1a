package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"catdogeats/client"
	"catdogeats/utils"
	"catdogeats/validate"
)

const multipartMemory = 32 << 20

// parseUpload reads a multipart form bounded by the policy and returns its files
func parseUpload(w http.ResponseWriter, r *http.Request, policy validate.UploadPolicy) ([]client.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, policy.MaxRequestBytes())
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, http.StatusRequestEntityTooLarge, "첨부 파일 용량이 너무 큽니다.")
			return nil, false
		}
		utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return nil, false
	}

	files, err := policy.Files(r.MultipartForm.File[policy.Field])
	if err != nil {
		writeInvalid(w, err)
		return nil, false
	}
	return files, true
}

// formInt parses an optional integer field. A malformed value becomes -1 so the
// form validators reject it.
func formInt(r *http.Request, key string) int64 {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(v, ",", ""), 10, 64)
	if err != nil {
		return -1
	}
	return n
}
