// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return mapConflict(resp.Body(), body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapConflict turns a 409 body into a [*ConflictError] when it carries a
// conflict payload with the server state.
func mapConflict(raw []byte, body string) error {
	var er models.ErrorResponse
	if err := json.Unmarshal(raw, &er); err != nil {
		return fmt.Errorf("%w: %s", ErrConflict, body)
	}

	info := er.ConflictInfo()
	if info == nil || info.ServerState == nil {
		return fmt.Errorf("%w: %s", ErrConflict, body)
	}

	msg := ""
	for _, e := range er.Errors {
		if e.Extensions != nil && e.Extensions.Exception != nil && e.Extensions.Exception.ConflictInfo != nil {
			msg = e.Message
			break
		}
	}

	return &ConflictError{Message: msg, Info: *info}
}
