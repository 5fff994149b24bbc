package openai

import (
	"errors"

	"github.com/annikahug/cadenza/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return &provider.UpstreamError{
			Status: apierr.StatusCode,
			Reason: apierr.Message,
		}
	}

	return err
}
