package test

import (
	"errors"
	"testing"

	"github.com/delegate-go/delegate"
	"github.com/delegate-go/delegate/log"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite
}

func (suite *LogTestSuite) TestInstrument() {
	suite.Run("PassesResultThrough", func() {
		conn := delegate.New(func(caller any, args ...any) (any, error) {
			return []string{"red", "green"}, nil
		}, delegate.Options{Label: "colors"})
		traced := log.Instrument(conn, testr.New(suite.T()), 0)
		result, err := traced.Invoke("host")
		suite.Nil(err)
		suite.Equal([]string{"red", "green"}, result)
	})

	suite.Run("PassesErrorThrough", func() {
		fault := errors.New("lookup failed")
		conn := delegate.New(func(caller any, args ...any) (any, error) {
			return nil, fault
		})
		traced := log.Instrument(conn, testr.New(suite.T()), 0)
		_, err := traced.Invoke("host")
		suite.True(errors.Is(err, fault))
	})

	suite.Run("KeepsLabel", func() {
		conn := delegate.New(func(caller any, args ...any) (any, error) {
			return nil, nil
		}, delegate.Options{Label: "colors"})
		traced := log.Instrument(conn, testr.New(suite.T()), 0)
		suite.Equal("colors", traced.Label())
	})

	suite.Run("StaysLazy", func() {
		executed := 0
		conn := delegate.New(func(caller any, args ...any) (any, error) {
			executed++
			return nil, nil
		})
		traced := log.Instrument(conn, testr.New(suite.T()), 0)
		suite.Equal(0, executed)
		_, err := traced.Invoke("host")
		suite.Nil(err)
		suite.Equal(1, executed)
	})

	suite.Run("Verbosity", func() {
		conn := delegate.New(func(caller any, args ...any) (any, error) {
			return "quiet", nil
		})
		logger := testr.NewWithOptions(suite.T(), testr.Options{Verbosity: 1})
		traced := log.Instrument(conn, logger, 1)
		result, err := traced.Invoke("host")
		suite.Nil(err)
		suite.Equal("quiet", result)
	})
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}
