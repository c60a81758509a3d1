package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dexboard/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("path", "is required")
	ve.AddFieldError("format", "must be csv or sqlite")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: format: must be csv or sqlite; path: is required",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("max_id", "must be positive").
		Fieldf("concurrency", "must be between %d and %d", 1, 16).
		RequiredField("Client")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Client: is required")
	s.Assert().Contains(err.Error(), "concurrency: must be between 1 and 16")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
	s.Assert().Nil(errors.NewValidationError().ToError())
}
