// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/fit-tracker/internal/adapter"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		for _, msgs := range serverErr.FieldErrors {
			if len(msgs) > 0 && msgs[0] != "" {
				return msgs[0]
			}
		}
		if serverErr.Message != "" {
			return serverErr.Message
		}
	}

	if errors.Is(err, adapter.ErrNetwork) {
		return "Отсутствует сеть или Сервер недоступен"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
