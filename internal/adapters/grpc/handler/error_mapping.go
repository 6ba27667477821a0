package handler

import (
	"errors"

	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/filing"
	"github.com/ogurasousui/formation-docs/internal/core/formation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, formation.ErrValidation),
		errors.Is(err, document.ErrUnrenderableText),
		errors.Is(err, filing.ErrInvalidID),
		errors.Is(err, filing.ErrInvalidPageSize),
		errors.Is(err, filing.ErrInvalidPageToken):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, document.ErrUnsupportedFormation):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, filing.ErrFilingNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
