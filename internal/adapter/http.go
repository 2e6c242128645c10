// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sync-conflicts/internal/config"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/utils"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

type httpMutationAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPMutationAdapter constructs the HTTP/REST [MutationAdapter]. The
// base URL is taken from cfg.HTTPAddress; a missing scheme defaults to http.
func NewHTTPMutationAdapter(cfg config.Adapter, log *logger.Logger) (MutationAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpMutationAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Mutate implements [MutationAdapter]. It POSTs the operation to
// /api/mutations/{returnType}.
func (h *httpMutationAdapter) Mutate(ctx context.Context, op models.Operation) (models.Record, error) {
	if op.ReturnType == "" {
		return nil, fmt.Errorf("%w: operation %q has no return type", ErrBadRequest, op.Name)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("type", op.ReturnType).
		SetBody(models.MutationRequest{
			OperationName: op.Name,
			ReturnType:    op.ReturnType,
			Variables:     op.Variables,
		}).
		Post("/api/mutations/{type}")
	if err != nil {
		return nil, fmt.Errorf("mutation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpMutationAdapter.Mutate").
			Str("operation", op.Name).
			Int("status", resp.StatusCode()).
			Msg("mutation rejected")
		return nil, err
	}

	var mr models.MutationResponse
	if err = json.Unmarshal(resp.Body(), &mr); err != nil {
		return nil, fmt.Errorf("%w: decode mutation response: %w", ErrUnexpectedResponse, err)
	}

	return mr.Data, nil
}

// GetRecord implements [MutationAdapter].
func (h *httpMutationAdapter) GetRecord(ctx context.Context, returnType, id string) (models.Record, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"type": returnType, "id": id}).
		Get("/api/records/{type}/{id}")
	if err != nil {
		return nil, fmt.Errorf("get record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var mr models.MutationResponse
	if err = json.Unmarshal(resp.Body(), &mr); err != nil {
		return nil, fmt.Errorf("%w: decode record response: %w", ErrUnexpectedResponse, err)
	}

	return mr.Data, nil
}
