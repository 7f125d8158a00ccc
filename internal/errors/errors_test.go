package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CWSpear/stumpy/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "snapshot not found",
			expected: "NOT_FOUND: snapshot not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "level out of range",
			expected: "INVALID_ARGUMENT: level out of range",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load settings")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load settings", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.InvalidArgument("level out of range").WithMeta("item", "glove")
	wrapped := errors.Wrapf(baseErr, "failed to set %s", "glove")

	s.Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Equal("failed to set glove", wrapped.Message)
	s.Equal("glove", errors.GetMeta(wrapped)["item"])
	s.True(errors.Is(wrapped, errors.InvalidArgument("")))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestHelpers() {
	notFoundErr := errors.NotFoundf("snapshot %s not found", "snap_1")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.True(errors.IsNotFound(notFoundErr))
	s.True(errors.IsNotFound(wrappedErr))
	s.False(errors.IsInvalidArgument(wrappedErr))
	s.True(errors.IsInternal(fmt.Errorf("plain")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	s.Run("coded error keeps code and meta", func() {
		err := errors.InvalidArgument("level out of range").
			WithMeta("item", "glove").
			WithMeta("level", 3)

		grpcErr := errors.ToGRPCError(err)
		st, ok := status.FromError(grpcErr)
		s.Require().True(ok)
		s.Equal(codes.InvalidArgument, st.Code())
		s.Equal("level out of range", st.Message())

		back := errors.FromGRPCError(grpcErr)
		s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
		s.Equal("glove", errors.GetMeta(back)["item"])
		s.InDelta(3, errors.GetMeta(back)["level"], 0)
	})

	s.Run("plain error becomes internal", func() {
		st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
		s.Require().True(ok)
		s.Equal(codes.Internal, st.Code())
	})

	s.Run("status errors pass through", func() {
		in := status.Error(codes.NotFound, "gone")
		s.Equal(in, errors.ToGRPCError(in))
	})

	s.Run("nil stays nil", func() {
		s.NoError(errors.ToGRPCError(nil))
		s.NoError(errors.FromGRPCError(nil))
	})
}
