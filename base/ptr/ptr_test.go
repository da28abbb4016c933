package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestPointer() {
	s.Equal("Full", *String("Full"))
	s.Equal(100, *Int(100))
	s.Equal(int64(1672531200), *Int64(1672531200))
	s.Equal(uint16(330), *Uint16(330))
	s.Equal(uint64(1500000000), *Uint64(1500000000))
	s.Equal(true, *Bool(true))
}

func (s *pointerSuite) TestValue() {
	s.Equal(uint64(0), Uint64Value(nil))
	s.Equal(uint64(5000), Uint64Value(Uint64(5000)))
	s.Equal("", StringValue(nil))
	s.Equal("abc", StringValue(String("abc")))
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}
